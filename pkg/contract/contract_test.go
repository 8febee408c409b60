package contract_test

import (
	"context"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/catalog"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/contract"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/form"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/rules"
)

func TestDocument_RoundTrip(t *testing.T) {
	ctx := context.Background()
	doc, err := contract.Document(ctx, catalog.MustDefault())
	if err != nil {
		t.Fatalf("document: %v", err)
	}

	raw, err := contract.Marshal(doc, contract.FormatJSON)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	loader := openapi3.NewLoader()
	loaded, err := loader.LoadFromData(raw)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := loaded.Validate(ctx); err != nil {
		t.Fatalf("validate loaded document: %v", err)
	}

	item := loaded.Paths.Find(contract.Path)
	if item == nil || item.Post == nil {
		t.Fatalf("expected POST %s", contract.Path)
	}
	if item.Post.OperationID != contract.OperationID {
		t.Fatalf("unexpected operation id %q", item.Post.OperationID)
	}
	for _, status := range []int{201, 422} {
		if item.Post.Responses.Status(status) == nil {
			t.Fatalf("expected %d response", status)
		}
	}

	schema := item.Post.RequestBody.Value.Content.Get("application/json").Schema.Value
	if diff := cmp.Diff([]string{"name", "email", "activities", "payment"}, schema.Required); diff != "" {
		t.Fatalf("required mismatch (-want +got):\n%s", diff)
	}
	if got := schema.Properties["email"].Value.Pattern; got != rules.EmailPattern {
		t.Fatalf("unexpected email pattern %q", got)
	}
	if got := schema.Properties["payment"].Value.Enum; !cmp.Equal(got, []any{"credit-card", "paypal", "bitcoin"}) {
		t.Fatalf("unexpected payment enum %v", got)
	}
	if got := schema.Properties["payment"].Value.Title; got != "I'm going to pay with" {
		t.Fatalf("expected plain-text title, got %q", got)
	}
	activities := schema.Properties["activities"].Value
	if activities.MinItems != 1 || !activities.UniqueItems {
		t.Fatalf("unexpected activities constraints min=%d unique=%v", activities.MinItems, activities.UniqueItems)
	}
	if got := len(activities.Items.Value.Enum); got != 7 {
		t.Fatalf("expected 7 activity ids, got %d", got)
	}
	if got := schema.Properties["cvv"].Value.Extensions[contract.ExtensionRequiredWhen]; got != `payment == "credit-card"` {
		t.Fatalf("unexpected cvv condition %v", got)
	}
	if got := schema.Properties["otherJobRole"].Value.Extensions[contract.ExtensionVisibleWhen]; got != `title == "other"` {
		t.Fatalf("unexpected visibility rule %v", got)
	}
}

func TestMarshal_YAML(t *testing.T) {
	doc, err := contract.Document(context.Background(), catalog.MustDefault())
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	raw, err := contract.Marshal(doc, contract.FormatYAML)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	text := string(raw)
	for _, fragment := range []string{"openapi: 3.0.3\n", "/register:\n", "operationId: submitRegistration\n", `"201":`} {
		if !strings.Contains(text, fragment) {
			t.Errorf("expected yaml to contain %q", fragment)
		}
	}
	if strings.Contains(text, "\n  {") || strings.HasPrefix(text, "{") {
		t.Errorf("expected block style yaml")
	}

	loaded, err := openapi3.NewLoader().LoadFromData(raw)
	if err != nil {
		t.Fatalf("load yaml: %v", err)
	}
	if loaded.Info.Title != "Full Stack Conference Registration" {
		t.Fatalf("unexpected title %q", loaded.Info.Title)
	}

	if _, err := contract.Marshal(doc, "toml"); err == nil {
		t.Fatalf("expected unsupported format error")
	}
	if _, err := contract.Marshal(nil, contract.FormatJSON); err == nil {
		t.Fatalf("expected nil document error")
	}
}

func TestValidateValues(t *testing.T) {
	c := catalog.MustDefault()

	valid := form.Values{
		Name:       "Ada",
		Email:      "ada@example.com",
		Activities: []string{"all"},
		Payment:    "paypal",
	}
	if err := contract.ValidateValues(c, valid); err != nil {
		t.Fatalf("expected valid payload, got %v", err)
	}

	invalid := form.Values{
		Name:       "Ada",
		Email:      "ada@example",
		Design:     "dragons",
		Activities: []string{"all", "all"},
		Payment:    "paypal",
		CVV:        "12",
	}
	err := contract.ValidateValues(c, invalid)
	if err == nil {
		t.Fatalf("expected schema errors")
	}
	for _, field := range []string{"email", "design", "activities", "cvv"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("expected error to mention %s: %v", field, err)
		}
	}

	if err := contract.ValidateValues(c, form.Values{Name: "Ada"}); err == nil {
		t.Fatalf("expected missing required properties to fail")
	}
}

func TestDocument_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := contract.Document(ctx, catalog.MustDefault()); err == nil {
		t.Fatalf("expected error for cancelled context")
	}
}
