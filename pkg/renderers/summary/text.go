package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/catalog"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/form"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/render"
)

// Styles holds the lipgloss styles applied to report fragments.
type Styles struct {
	Title   lipgloss.Style
	Valid   lipgloss.Style
	Invalid lipgloss.Style
	Muted   lipgloss.Style
}

// PlainStyles renders without any terminal formatting.
func PlainStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle(),
		Valid:   lipgloss.NewStyle(),
		Invalid: lipgloss.NewStyle(),
		Muted:   lipgloss.NewStyle(),
	}
}

// ColorStyles is the palette used on interactive terminals.
func ColorStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7aa2f7")),
		Valid:   lipgloss.NewStyle().Foreground(lipgloss.Color("#9ece6a")),
		Invalid: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#f7768e")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89")),
	}
}

// TextOption configures the text renderer.
type TextOption func(*Text)

// WithStyles replaces the default plain styles.
func WithStyles(styles Styles) TextOption {
	return func(t *Text) {
		t.styles = styles
	}
}

// Text renders a line per visible control with its validity marker.
type Text struct {
	styles Styles
}

var _ render.Renderer = (*Text)(nil)

// NewText constructs the text renderer.
func NewText(options ...TextOption) *Text {
	t := &Text{styles: PlainStyles()}
	for _, opt := range options {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

func (t *Text) Name() string {
	return "text"
}

func (t *Text) ContentType() string {
	return "text/plain; charset=utf-8"
}

const (
	markValid   = "✓"
	markInvalid = "✗"
	markNone    = " "
	emptyValue  = "-"
)

func (t *Text) Render(ctx context.Context, view form.View, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hiddenPanels := make(map[string]bool, len(view.Panels))
	for _, panel := range view.Panels {
		hiddenPanels[panel.ID] = panel.Hidden
	}
	mapping := render.MapErrors(view, options.Result)

	var b strings.Builder
	title := catalog.PlainText(view.Title)
	b.WriteString(t.styles.Title.Render(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len([]rune(title))))
	b.WriteString("\n\n")

	for _, cv := range view.Controls {
		if cv.Hidden || hiddenPanels[cv.Panel] {
			continue
		}
		t.writeControl(&b, view, cv, mapping.Fields[cv.ID])
	}

	b.WriteString("\n")
	b.WriteString(view.TotalText)
	b.WriteString("\n")

	switch {
	case options.Result == nil:
	case options.Result.Prevented:
		b.WriteString("\n")
		for _, message := range mapping.Form {
			b.WriteString(t.styles.Invalid.Render(message))
			b.WriteString("\n")
		}
	default:
		b.WriteString("\n")
		b.WriteString(t.styles.Valid.Render("Registration submitted"))
		b.WriteString("\n")
	}
	return []byte(b.String()), nil
}

func (t *Text) writeControl(b *strings.Builder, view form.View, cv form.ControlView, messages []string) {
	mark := t.styles.Muted.Render(markNone)
	if cv.Valid != nil {
		if *cv.Valid {
			mark = t.styles.Valid.Render(markValid)
		} else {
			mark = t.styles.Invalid.Render(markInvalid)
		}
	}

	value := controlValue(view, cv)
	if value == "" {
		value = t.styles.Muted.Render(emptyValue)
	}
	fmt.Fprintf(b, "%s %s: %s\n", mark, catalog.PlainText(cv.Label), value)
	for _, message := range messages {
		fmt.Fprintf(b, "    %s\n", t.styles.Invalid.Render(catalog.PlainText(message)))
	}
}

func controlValue(view form.View, cv form.ControlView) string {
	switch cv.Kind {
	case form.KindCheckboxes:
		var chosen []string
		for _, activity := range view.Activities {
			if activity.Checked {
				chosen = append(chosen, catalog.PlainText(activity.Label))
			}
		}
		return strings.Join(chosen, ", ")
	case form.KindSelect:
		for _, option := range cv.Options {
			if option.Selected && !option.Placeholder {
				return catalog.PlainText(option.Label)
			}
		}
		return ""
	default:
		return cv.Value
	}
}
