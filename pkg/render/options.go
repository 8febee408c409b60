package render

import (
	theme "github.com/goliatone/go-theme"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/form"
)

// RenderOptions describe per-request data renderers can use to customise their
// output without touching the form state.
type RenderOptions struct {
	// Result is the outcome of the latest submit attempt, if any. Renderers
	// surface a blocked submission as a form-level message.
	Result *form.SubmitResult
	// Theme carries the resolved go-theme configuration. Renderers that emit
	// markup turn its CSS variables into a :root block and resolve asset URLs
	// through it.
	Theme *theme.RendererConfig
}
