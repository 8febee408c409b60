// Package regform is the entry point for the conference registration form
// engine: build a form from the catalog, replay answers through its
// handlers, submit, and render the result.
package regform

import (
	"context"
	"io/fs"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/contract"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/form"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/orchestrator"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/render"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/renderers/html"
)

// Values aliases form.Values so callers can describe answers without
// importing the form package.
type Values = form.Values

// SubmitResult aliases form.SubmitResult.
type SubmitResult = form.SubmitResult

// RenderOptions describes per-request renderer inputs such as the theme.
type RenderOptions = render.RenderOptions

// Response aliases orchestrator.Response.
type Response = orchestrator.Response

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Submit replays values through a fresh form, submits it, and renders the
// outcome with the named renderer ("html", "text" or "json").
func Submit(ctx context.Context, values Values, rendererName string, options ...orchestrator.Option) (Response, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Values:   &values,
		Submit:   true,
		Renderer: rendererName,
	})
}

// RenderPristine renders the form as it looks on page load.
func RenderPristine(ctx context.Context, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	resp, err := gen.Generate(ctx, orchestrator.Request{Renderer: rendererName})
	if err != nil {
		return nil, err
	}
	return resp.Output, nil
}

// Contract describes the registration submission as an OpenAPI document built
// from the orchestrator's catalog.
func Contract(ctx context.Context, options ...orchestrator.Option) (*openapi3.T, error) {
	c, err := orchestrator.New(options...).Catalog()
	if err != nil {
		return nil, err
	}
	return contract.Document(ctx, c)
}

// EmbeddedTemplates exposes the built-in HTML templates so callers can reuse
// or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}

// StylesheetFS exposes the default stylesheet so hosts can serve it next to
// the rendered markup.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(regform.StylesheetFS()),
//	  ),
//	)
func StylesheetFS() fs.FS {
	return html.AssetsFS()
}
