package render

import (
	"context"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/form"
)

// Renderer converts a form view into a byte representation (HTML, text,
// JSON).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view form.View, options RenderOptions) ([]byte, error)
}
