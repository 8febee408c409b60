package html

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/catalog"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/form"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/model"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/render"
	rendertemplate "github.com/jmereardon17/fsjs-techdegree-project-3/pkg/render/template"
)

// Option configures the renderer.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	inlineStyles     bool
}

// WithTemplatesFS supplies an alternate template bundle. It must provide
// form.tpl and partials/control.tpl.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithInlineStyles toggles embedding the default stylesheet when the theme
// does not resolve one. Enabled by default.
func WithInlineStyles(enabled bool) Option {
	return func(cfg *config) {
		cfg.inlineStyles = enabled
	}
}

// Renderer emits the registration form as an HTML fragment reflecting the
// current form state.
type Renderer struct {
	templates    rendertemplate.TemplateRenderer
	inlineStyles bool
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS(), inlineStyles: true}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := rendertemplate.New(rendertemplate.WithFS(cfg.templateFS))
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer, inlineStyles: cfg.inlineStyles}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, view form.View, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("html renderer: template renderer is nil")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	intro, err := renderIntro(view.Intro)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render intro: %w", err)
	}

	data := map[string]any{
		"view":          view,
		"intro":         intro,
		"introHeading":  catalog.IntroHasHeading(view.Intro),
		"sections":      buildSections(view),
		"panels":        buildPanels(view),
		"activities":    view.Activities,
		"totalText":     view.TotalText,
		"errors":        render.MapErrors(view, options.Result),
		"theme":         render.BuildThemeContext(options.Theme),
		"stylesheetURL": render.ResolveAsset(options.Theme, StylesheetAsset, ""),
	}
	if r.inlineStyles {
		data["inlineCSS"] = defaultStylesheet()
	}

	result, err := r.templates.RenderTemplate("form", data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

type section struct {
	Class    string             `json:"class"`
	Legend   string             `json:"legend,omitempty"`
	Controls []form.ControlView `json:"controls"`
}

type panel struct {
	ID       string             `json:"id"`
	Hidden   bool               `json:"hidden,omitempty"`
	Label    string             `json:"label"`
	Controls []form.ControlView `json:"controls,omitempty"`
}

var sectionLayout = []struct {
	class  string
	legend string
	fields []model.FieldID
}{
	{"basic-info", "Basic Info", []model.FieldID{model.FieldName, model.FieldEmail, model.FieldJobRole, model.FieldOtherJobRole}},
	{"shirt", "T-Shirt Info", []model.FieldID{model.FieldShirtSize, model.FieldShirtDesign, model.FieldShirtColor}},
	{"activities", "", []model.FieldID{model.FieldActivities}},
	{"payment-methods", "Payment Info", []model.FieldID{model.FieldPayment}},
}

func buildSections(view form.View) []section {
	sections := make([]section, 0, len(sectionLayout))
	for _, layout := range sectionLayout {
		s := section{Class: layout.class, Legend: layout.legend}
		for _, id := range layout.fields {
			if cv, ok := view.ControlView(id); ok {
				s.Controls = append(s.Controls, cv)
			}
		}
		sections = append(sections, s)
	}
	return sections
}

// buildPanels pairs each payment panel with the label of its payment option
// and the controls it holds.
func buildPanels(view form.View) []panel {
	labels := map[string]string{}
	if payment, ok := view.ControlView(model.FieldPayment); ok {
		for _, option := range payment.Options {
			labels[option.Value] = option.Label
		}
	}

	panels := make([]panel, 0, len(view.Panels))
	for _, pv := range view.Panels {
		p := panel{ID: pv.ID, Hidden: pv.Hidden, Label: labels[pv.ID]}
		for _, cv := range view.Controls {
			if cv.Panel == pv.ID {
				p.Controls = append(p.Controls, cv)
			}
		}
		panels = append(panels, p)
	}
	return panels
}
