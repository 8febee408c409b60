package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/catalog"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/form"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/model"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/render"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/renderers/html"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/renderers/summary"
)

const defaultRendererName = "text"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithCatalog replaces the embedded default catalog.
func WithCatalog(c model.Catalog) Option {
	return func(o *Orchestrator) {
		o.catalog = &c
	}
}

// WithCatalogFile loads the catalog from a YAML or JSON file when the
// orchestrator is constructed. An empty path keeps the default.
func WithCatalogFile(path string) Option {
	return func(o *Orchestrator) {
		o.catalogPath = path
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithLogger sets the logger handed to every form the orchestrator builds.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

// WithFormOptions appends options applied to every form built.
func WithFormOptions(options ...form.Option) Option {
	return func(o *Orchestrator) {
		o.formOptions = append(o.formOptions, options...)
	}
}

// Orchestrator coordinates the full pipeline from catalog to rendered output.
// It applies sensible defaults (embedded catalog, html/text/json renderers)
// while remaining open to dependency injection for advanced callers.
type Orchestrator struct {
	catalog         *model.Catalog
	catalogPath     string
	registry        *render.Registry
	defaultRenderer string
	logger          zerolog.Logger
	formOptions     []form.Option
	initialiseErr   error
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers can
// start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		logger:          zerolog.Nop(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes one pass through the pipeline.
type Request struct {
	// Values are replayed through the form handlers before rendering. Nil
	// renders the pristine form.
	Values *form.Values

	// Submit runs the submission controller after Values have been applied.
	Submit bool

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// RenderOptions carries the theme through to the renderer. Result is
	// filled by the orchestrator when Submit is set.
	RenderOptions render.RenderOptions
}

// Response carries the rendered bytes together with the state they were
// rendered from.
type Response struct {
	Output      []byte
	ContentType string
	View        form.View
	Result      *form.SubmitResult
	// ApplyErr joins the misuse errors raised while replaying Values, such as
	// a conflicting activity or an option that does not exist. They never stop
	// rendering.
	ApplyErr error
}

// Catalog returns the catalog forms are built from.
func (o *Orchestrator) Catalog() (model.Catalog, error) {
	if o.initialiseErr != nil {
		return model.Catalog{}, o.initialiseErr
	}
	return *o.catalog, nil
}

// Registry exposes the renderer registry.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

// NewForm builds a fresh form over the configured catalog.
func (o *Orchestrator) NewForm() (*form.Form, error) {
	if err := o.initialiseErr; err != nil {
		return nil, err
	}
	options := append([]form.Option{form.WithLogger(o.logger)}, o.formOptions...)
	f, err := form.New(*o.catalog, options...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: build form: %w", err)
	}
	return f, nil
}

// Generate executes the form → apply → submit → renderer sequence.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Response, error) {
	if ctx == nil {
		return Response{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Response{}, err
	}

	f, err := o.NewForm()
	if err != nil {
		return Response{}, err
	}

	var resp Response
	if req.Values != nil {
		resp.ApplyErr = f.Apply(*req.Values)
		if resp.ApplyErr != nil {
			o.logger.Debug().Err(resp.ApplyErr).Msg("apply values")
		}
	}
	if req.Submit {
		result := f.Submit()
		resp.Result = &result
		req.RenderOptions.Result = &result
	}
	resp.View = f.View()

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return Response{}, err
	}

	resp.Output, err = renderer.Render(ctx, resp.View, req.RenderOptions)
	if err != nil {
		return Response{}, fmt.Errorf("orchestrator: render output: %w", err)
	}
	resp.ContentType = renderer.ContentType()
	return resp, nil
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	names := o.registry.List()
	if len(names) == 0 {
		return nil, errors.New("orchestrator: no renderers registered")
	}

	renderer, err := o.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("orchestrator: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.catalog == nil {
		var (
			c   model.Catalog
			err error
		)
		if o.catalogPath != "" {
			c, err = catalog.LoadFile(o.catalogPath)
		} else {
			c, err = catalog.Default()
		}
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: load catalog: %w", err)
			return
		}
		o.catalog = &c
	}

	if o.registry == nil {
		registry, err := DefaultRegistry()
		if err != nil {
			o.initialiseErr = err
			return
		}
		o.registry = registry
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}
}

// DefaultRegistry registers the built-in html, text and json renderers. Text
// output uses plain styles unless textOptions say otherwise.
func DefaultRegistry(textOptions ...summary.TextOption) (*render.Registry, error) {
	registry := render.NewRegistry()
	htmlRenderer, err := html.New()
	if err != nil {
		return nil, fmt.Errorf("orchestrator: default renderer: %w", err)
	}
	registry.MustRegister(
		htmlRenderer,
		summary.NewText(textOptions...),
		summary.NewJSON("  "),
	)
	return registry, nil
}
