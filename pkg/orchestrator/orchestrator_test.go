package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/catalog"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/form"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/model"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/render"
)

func completeValues() *form.Values {
	return &form.Values{
		Name:       "Ada",
		Email:      "ada@host.com",
		Activities: []string{"all", "npm"},
		Payment:    "credit-card",
		ExpMonth:   "1",
		ExpYear:    "2027",
		CardNumber: "4111111111111111",
		Zip:        "90210",
		CVV:        "999",
	}
}

func TestGenerate_DefaultsRenderPristineText(t *testing.T) {
	o := New()

	resp, err := o.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.Result != nil {
		t.Fatalf("expected no submit result, got %+v", resp.Result)
	}
	if resp.ContentType != "text/plain; charset=utf-8" {
		t.Fatalf("unexpected content type %q", resp.ContentType)
	}
	if !strings.Contains(string(resp.Output), "Total: $0") {
		t.Fatalf("expected pristine total in output:\n%s", resp.Output)
	}
}

func TestGenerate_SubmitsCompleteValues(t *testing.T) {
	o := New()

	resp, err := o.Generate(context.Background(), Request{
		Values: completeValues(),
		Submit: true,
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.ApplyErr != nil {
		t.Fatalf("unexpected apply error: %v", resp.ApplyErr)
	}
	if resp.Result == nil || resp.Result.Prevented {
		t.Fatalf("expected submission to go through, got %+v", resp.Result)
	}
	if resp.View.Total != 300 {
		t.Fatalf("expected total 300, got %d", resp.View.Total)
	}
	out := string(resp.Output)
	if !strings.Contains(out, "Registration submitted") {
		t.Fatalf("expected confirmation in output:\n%s", out)
	}
}

func TestGenerate_SubmitReportsFailures(t *testing.T) {
	o := New()

	resp, err := o.Generate(context.Background(), Request{
		Values:   &form.Values{Name: "Ada", Email: "ada@host"},
		Submit:   true,
		Renderer: "json",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if resp.Result == nil || !resp.Result.Prevented {
		t.Fatalf("expected submission to be prevented, got %+v", resp.Result)
	}
	want := []model.FieldID{
		model.FieldEmail,
		model.FieldActivities,
		model.FieldCardNumber,
		model.FieldZip,
		model.FieldCVV,
	}
	for _, id := range want {
		found := false
		for _, failed := range resp.Result.Failures {
			if failed == id {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected %s among failures %v", id, resp.Result.Failures)
		}
	}
	if resp.ContentType != "application/json" {
		t.Fatalf("unexpected content type %q", resp.ContentType)
	}
	if !strings.Contains(string(resp.Output), `"prevented": true`) {
		t.Fatalf("expected prevented flag in json output:\n%s", resp.Output)
	}
}

func TestGenerate_ApplyErrorsDoNotStopRendering(t *testing.T) {
	o := New()

	resp, err := o.Generate(context.Background(), Request{
		Values:   &form.Values{Activities: []string{"js-frameworks", "express"}},
		Renderer: "html",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !errors.Is(resp.ApplyErr, form.ErrDisabled) {
		t.Fatalf("expected conflicting activity to surface ErrDisabled, got %v", resp.ApplyErr)
	}
	if !strings.Contains(string(resp.Output), "<form") {
		t.Fatalf("expected html output:\n%s", resp.Output)
	}
}

func TestGenerate_UnknownRenderer(t *testing.T) {
	_, err := New().Generate(context.Background(), Request{Renderer: "pdf"})
	if err == nil || !strings.Contains(err.Error(), `renderer "pdf"`) {
		t.Fatalf("expected unknown renderer error, got %v", err)
	}
}

func TestGenerate_FallsBackToFirstRegistered(t *testing.T) {
	registry := render.NewRegistry()
	stub := &stubRenderer{name: "stub"}
	registry.MustRegister(stub)

	o := New(WithRegistry(registry), WithDefaultRenderer("missing"))
	resp, err := o.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(resp.Output) != "stub" || stub.calls != 1 {
		t.Fatalf("expected stub renderer to run once, got %q (%d calls)", resp.Output, stub.calls)
	}
}

func TestGenerate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestNew_CatalogFile(t *testing.T) {
	o := New(WithCatalogFile(filepath.Join(t.TempDir(), "missing.yaml")))
	if _, err := o.NewForm(); err == nil || !strings.Contains(err.Error(), "load catalog") {
		t.Fatalf("expected catalog load error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	custom := catalog.MustDefault()
	custom.Title = "Regional Meetup"
	data, err := json.Marshal(custom)
	if err != nil {
		t.Fatalf("encode catalog: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	o = New(WithCatalogFile(path))
	got, err := o.Catalog()
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	if diff := cmp.Diff(custom.Title, got.Title); diff != "" {
		t.Fatalf("title mismatch (-want +got):\n%s", diff)
	}
}

type stubRenderer struct {
	name  string
	calls int
}

func (s *stubRenderer) Name() string        { return s.name }
func (s *stubRenderer) ContentType() string { return "text/plain" }

func (s *stubRenderer) Render(context.Context, form.View, render.RenderOptions) ([]byte, error) {
	s.calls++
	return []byte(s.name), nil
}
