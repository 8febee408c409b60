package summary

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/form"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/render"
)

// Document is the payload emitted by the JSON renderer.
type Document struct {
	View   form.View           `json:"view"`
	Errors render.ErrorMapping `json:"errors"`
	Result *form.SubmitResult  `json:"result,omitempty"`
}

// JSON renders the view, its mapped errors and the submit result.
type JSON struct {
	indent string
}

var _ render.Renderer = (*JSON)(nil)

// NewJSON constructs the JSON renderer. An empty indent emits compact output.
func NewJSON(indent string) *JSON {
	return &JSON{indent: indent}
}

func (j *JSON) Name() string {
	return "json"
}

func (j *JSON) ContentType() string {
	return "application/json"
}

func (j *JSON) Render(ctx context.Context, view form.View, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc := Document{
		View:   view,
		Errors: render.MapErrors(view, options.Result),
		Result: options.Result,
	}

	var (
		out []byte
		err error
	)
	if j.indent == "" {
		out, err = json.Marshal(doc)
	} else {
		out, err = json.MarshalIndent(doc, "", j.indent)
	}
	if err != nil {
		return nil, fmt.Errorf("json renderer: encode: %w", err)
	}
	return append(out, '\n'), nil
}
