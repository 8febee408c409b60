package template_test

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/flosch/pongo2/v6"
	"github.com/google/go-cmp/cmp"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/render/template"
)

type card struct {
	Title string   `json:"title"`
	Cost  int      `json:"cost"`
	Tags  []string `json:"tags,omitempty"`
}

func newEngine(t *testing.T, opts ...template.Option) *template.Engine {
	t.Helper()
	files := fstest.MapFS{
		"card.tpl":  {Data: []byte(`<h1>{{ card.title|trim }}</h1><p>{{ card.cost|dollars }}</p>{% for tag in card.tags %}<i>{{ tag }}</i>{% endfor %}`)},
		"brand.tpl": {Data: []byte(`{{ brand }}|{{ card.title|shout }}`)},
		"raw.html":  {Data: []byte(`{{ markup|safe }}/{{ markup }}`)},
	}
	engine, err := template.New(append([]template.Option{template.WithFS(files)}, opts...)...)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RenderTemplateUsesJSONNames(t *testing.T) {
	engine := newEngine(t)

	var sink bytes.Buffer
	got, err := engine.RenderTemplate("card", map[string]any{
		"card": card{Title: "  Main Conference ", Cost: 200, Tags: []string{"a", "b"}},
	}, &sink)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "<h1>Main Conference</h1><p>$200</p><i>a</i><i>b</i>"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("output mismatch (-want +got):\n%s", diff)
	}
	if sink.String() != got {
		t.Fatalf("expected writer to receive the rendered output")
	}
}

func TestEngine_GlobalsAndFilters(t *testing.T) {
	engine := newEngine(t,
		template.WithGlobalData(map[string]any{"brand": "regform"}),
		template.WithFilter("shout", func(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
			return pongo2.AsValue(strings.ToUpper(in.String())), nil
		}),
	)

	got, err := engine.RenderTemplate("brand.tpl", map[string]any{"card": card{Title: "npm"}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "regform|NPM" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_EscapesByDefault(t *testing.T) {
	engine := newEngine(t, template.WithExtension("html"))

	got, err := engine.RenderTemplate("raw", map[string]any{"markup": "<b>x</b>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "<b>x</b>/&lt;b&gt;x&lt;/b&gt;" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_RenderStringAndStructData(t *testing.T) {
	engine := newEngine(t)

	got, err := engine.RenderString(`{{ title }} {{ cost }}`, card{Title: "npm", Cost: 100})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "npm 100" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_Errors(t *testing.T) {
	if _, err := template.New(); err == nil {
		t.Fatalf("expected error without templates")
	}

	engine := newEngine(t)
	if _, err := engine.RenderTemplate("missing", nil); err == nil {
		t.Fatalf("expected error for missing template")
	}
	if _, err := engine.RenderString(`{% if %}`, nil); err == nil {
		t.Fatalf("expected parse error")
	}
	if _, err := engine.RenderString(`x`, []string{"not", "an", "object"}); err == nil {
		t.Fatalf("expected error for non-object data")
	}
}
