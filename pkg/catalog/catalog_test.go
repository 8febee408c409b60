package catalog

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/hay-kot/criterio"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/model"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default returned error: %v", err)
	}

	if c.Title == "" {
		t.Fatalf("expected a title")
	}
	if got := len(c.Activities); got != 7 {
		t.Fatalf("expected 7 activities, got %d", got)
	}

	var slots []string
	for _, activity := range c.Activities {
		if activity.TimeSlot == "Tuesday 9am-12pm" {
			slots = append(slots, activity.ID)
		}
	}
	if diff := cmp.Diff([]string{"js-frameworks", "express"}, slots); diff != "" {
		t.Fatalf("Tuesday morning activities mismatch (-want +got):\n%s", diff)
	}

	if idx := model.IndexOf(c.Payments, string(model.PaymentCreditCard)); idx != 1 {
		t.Fatalf("expected credit-card at index 1, got %d", idx)
	}
	if !c.ExpMonths[0].Placeholder || !c.ExpYears[0].Placeholder {
		t.Fatalf("expected expiry selects to start with a placeholder")
	}
	if got := c.Visibility[model.FieldOtherJobRole.String()]; got != `title == "other"` {
		t.Fatalf("unexpected other-job-role rule %q", got)
	}

	var puns []string
	for _, color := range c.Colors {
		if color.Theme == "js-puns" {
			puns = append(puns, color.Value)
		}
	}
	if diff := cmp.Diff([]string{"cornflowerblue", "darkslategrey", "gold"}, puns); diff != "" {
		t.Fatalf("js-puns colors mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSONDocument(t *testing.T) {
	doc := `{
  "title": "Mini Conf",
  "jobRoles": [{"value": "other", "label": "Other"}],
  "sizes": [{"value": "small", "label": "S"}],
  "designs": [{"value": "plain", "label": "Plain"}],
  "colors": [{"value": "black", "label": "Black", "theme": "plain"}],
  "activities": [{"id": "talk", "label": "Talk", "cost": 50}],
  "payments": [
    {"value": "select method", "label": "Select", "placeholder": true},
    {"value": "credit-card", "label": "Card"}
  ],
  "expMonths": [{"value": "", "label": "Month", "placeholder": true}, {"value": "1", "label": "Jan"}],
  "expYears": [{"value": "", "label": "Year", "placeholder": true}, {"value": "2030", "label": "2030"}]
}`

	c, err := Parse([]byte(doc), "mini.json")
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	want := []model.Activity{{ID: "talk", Label: "Talk", Cost: 50}}
	if diff := cmp.Diff(want, c.Activities); diff != "" {
		t.Fatalf("activities mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFS(t *testing.T) {
	fsys := fstest.MapFS{
		"forms/registration.yaml": &fstest.MapFile{Data: defaultDocument},
	}
	c, err := LoadFS(fsys, "forms/registration.yaml")
	if err != nil {
		t.Fatalf("LoadFS returned error: %v", err)
	}
	if len(c.Payments) != 4 {
		t.Fatalf("expected 4 payment options, got %d", len(c.Payments))
	}

	if _, err := LoadFS(fsys, "missing.yaml"); err == nil {
		t.Fatalf("expected error for missing document")
	}
}

func TestParseRejectsEmptyAndGarbage(t *testing.T) {
	if _, err := Parse([]byte("   \n"), "empty.yaml"); err == nil || !strings.Contains(err.Error(), "is empty") {
		t.Fatalf("expected empty document error, got %v", err)
	}
	if _, err := Parse([]byte("title: [unclosed"), "bad.yaml"); err == nil || !strings.Contains(err.Error(), "invalid JSON or YAML") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestValidateReportsFieldErrors(t *testing.T) {
	c := MustDefault()
	c.Activities = append(c.Activities,
		model.Activity{ID: "express", Label: "Express again", Cost: 100},
		model.Activity{ID: "refund", Label: "Refund", Cost: -10},
	)
	c.Colors = append(c.Colors, model.Option{Value: "pink", Label: "Pink", Theme: "unknown-theme"})
	c.Visibility = map[string]string{"other-job-role": `title ==`}

	err := Validate(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}

	var fieldErrs criterio.FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected criterio.FieldErrors, got %T", err)
	}

	got := map[string]bool{}
	for _, fe := range fieldErrs {
		got[fe.Field] = true
	}
	for _, field := range []string{
		"activities[7].id",
		"activities[8].cost",
		"colors[7].theme",
		`visibility["other-job-role"]`,
	} {
		if !got[field] {
			t.Fatalf("expected error for %s, got %v", field, fieldErrs)
		}
	}
}

func TestValidatePayments(t *testing.T) {
	c := MustDefault()
	c.Payments = []model.Option{
		{Value: "select method", Label: "Select", Placeholder: true},
		{Value: "paypal", Label: "PayPal"},
	}
	err := Validate(c)
	if err == nil || !strings.Contains(err.Error(), "credit-card") {
		t.Fatalf("expected missing credit-card error, got %v", err)
	}

	c = MustDefault()
	c.Payments = c.Payments[1:]
	if err := Validate(c); err == nil {
		t.Fatalf("expected placeholder error when index 0 is a real method")
	}
}

func TestValidateUnknownKeys(t *testing.T) {
	c := MustDefault()
	c.Hints = map[string]string{"fax": "Enter a fax number"}
	c.Visibility = map[string]string{"color": `pager == "yes"`}

	var fieldErrs criterio.FieldErrors
	if err := Validate(c); !errors.As(err, &fieldErrs) {
		t.Fatalf("expected field errors, got %v", err)
	}
	if len(fieldErrs) != 2 {
		t.Fatalf("expected two field errors, got %v", fieldErrs)
	}
}

func TestSanitize(t *testing.T) {
	c := model.Catalog{
		Title: "<h1>Conf</h1>",
		Activities: []model.Activity{
			{ID: " talk ", Label: `<strong>Keynote</strong><script>alert(1)</script>`, TimeSlot: " Tue "},
		},
		Hints: map[string]string{"name": `<em>Required</em> <a href="x">here</a>`},
	}

	got := Sanitize(c)

	want := model.Catalog{
		Title: "Conf",
		Activities: []model.Activity{
			{ID: "talk", Label: "<strong>Keynote</strong>", TimeSlot: "Tue"},
		},
		Hints: map[string]string{"name": "<em>Required</em> here"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("sanitize mismatch (-want +got):\n%s", diff)
	}
}

func TestPlainText(t *testing.T) {
	if got := PlainText("<b>I'm</b> going"); got != "I'm going" {
		t.Fatalf("PlainText = %q", got)
	}
	if got := PlainText("   "); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestIntroHasHeading(t *testing.T) {
	tests := []struct {
		intro string
		want  bool
	}{
		{intro: "# Register for **Full Stack Conf**\n\nPick workshops.", want: true},
		{intro: "\n  # Welcome", want: true},
		{intro: "## Schedule", want: false},
		{intro: "#hashtag", want: false},
		{intro: "Pick your workshops.", want: false},
		{intro: "", want: false},
	}
	for _, tt := range tests {
		if got := IntroHasHeading(tt.intro); got != tt.want {
			t.Fatalf("IntroHasHeading(%q) = %v, want %v", tt.intro, got, tt.want)
		}
	}
}
