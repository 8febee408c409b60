// Package contract describes the registration submission as an OpenAPI 3
// document built from a catalog, so servers receiving the form can validate
// payloads with the same option sets and patterns the form enforces.
package contract

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/catalog"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/form"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/model"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/rules"
)

const (
	// Path is the submission endpoint.
	Path = "/register"
	// OperationID names the submission operation.
	OperationID = "submitRegistration"
	// Version is the document version.
	Version = "1.0.0"

	registrationSchema = "Registration"
	receiptSchema      = "RegistrationReceipt"
	rejectionSchema    = "RegistrationRejection"

	// ExtensionRequiredWhen marks properties required only under a condition
	// written in the visibility rule grammar.
	ExtensionRequiredWhen = "x-required-when"
	// ExtensionVisibleWhen carries the catalog visibility rule of a property.
	ExtensionVisibleWhen = "x-visible-when"
)

// Format selects the serialization of an exported document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Document builds and validates the OpenAPI document for c.
func Document(ctx context.Context, c model.Catalog) (*openapi3.T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	registration := RegistrationSchema(c)
	receipt := openapi3.NewObjectSchema().
		WithProperty("total", openapi3.NewIntegerSchema().WithMin(0)).
		WithProperty("activities", openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema()))
	receipt.Required = []string{"total", "activities"}

	rejection := openapi3.NewObjectSchema().
		WithProperty("prevented", openapi3.NewBoolSchema()).
		WithProperty("failures", openapi3.NewArraySchema().WithItems(
			openapi3.NewStringSchema().WithEnum(fieldIDs(form.RequiredFields())...),
		))
	rejection.Required = []string{"prevented", "failures"}

	registrationRef := openapi3.NewSchemaRef("#/components/schemas/"+registrationSchema, registration)
	receiptRef := openapi3.NewSchemaRef("#/components/schemas/"+receiptSchema, receipt)
	rejectionRef := openapi3.NewSchemaRef("#/components/schemas/"+rejectionSchema, rejection)

	operation := openapi3.NewOperation()
	operation.OperationID = OperationID
	operation.Summary = "Submit a conference registration"
	operation.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().
			WithRequired(true).
			WithDescription("Registration form answers").
			WithJSONSchemaRef(registrationRef),
	}
	operation.Responses = openapi3.NewResponses(
		openapi3.WithStatus(201, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Registration accepted").
				WithJSONSchemaRef(receiptRef),
		}),
		openapi3.WithStatus(422, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Registration blocked by failing fields").
				WithJSONSchemaRef(rejectionRef),
		}),
	)

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       catalog.PlainText(c.Title),
			Description: c.Intro,
			Version:     Version,
		},
		Paths: openapi3.NewPaths(openapi3.WithPath(Path, &openapi3.PathItem{Post: operation})),
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				registrationSchema: openapi3.NewSchemaRef("", registration),
				receiptSchema:      openapi3.NewSchemaRef("", receipt),
				rejectionSchema:    openapi3.NewSchemaRef("", rejection),
			},
		},
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("contract: validate: %w", err)
	}
	return doc, nil
}

// RegistrationSchema describes form.Values for c. Properties follow the json
// names of form.Values. Card fields carry an x-required-when condition since
// OpenAPI 3.0 cannot express the payment gate directly.
func RegistrationSchema(c model.Catalog) *openapi3.Schema {
	creditCard := fmt.Sprintf("payment == %q", model.PaymentCreditCard)

	schema := openapi3.NewObjectSchema().
		WithProperty("name", describe(c, model.FieldName, openapi3.NewStringSchema().WithMinLength(1).WithPattern(`\S`))).
		WithProperty("email", describe(c, model.FieldEmail, openapi3.NewStringSchema().WithPattern(rules.EmailPattern))).
		WithProperty("title", describe(c, model.FieldJobRole, enumSchema(c.JobRoles))).
		WithProperty("otherJobRole", describe(c, model.FieldOtherJobRole, openapi3.NewStringSchema())).
		WithProperty("size", describe(c, model.FieldShirtSize, enumSchema(c.Sizes))).
		WithProperty("design", describe(c, model.FieldShirtDesign, enumSchema(c.Designs))).
		WithProperty("color", describe(c, model.FieldShirtColor, enumSchema(c.Colors))).
		WithProperty("activities", describe(c, model.FieldActivities, openapi3.NewArraySchema().
			WithItems(openapi3.NewStringSchema().WithEnum(activityIDs(c.Activities)...)).
			WithMinItems(1).
			WithUniqueItems(true))).
		WithProperty("payment", describe(c, model.FieldPayment, enumSchema(c.Payments))).
		WithProperty("expMonth", requiredWhen(creditCard, describe(c, model.FieldExpMonth, enumSchema(c.ExpMonths)))).
		WithProperty("expYear", requiredWhen(creditCard, describe(c, model.FieldExpYear, enumSchema(c.ExpYears)))).
		WithProperty("ccNum", requiredWhen(creditCard, describe(c, model.FieldCardNumber, openapi3.NewStringSchema().WithPattern(rules.CardNumberPattern)))).
		WithProperty("zip", requiredWhen(creditCard, describe(c, model.FieldZip, openapi3.NewStringSchema().WithPattern(rules.ZipPattern)))).
		WithProperty("cvv", requiredWhen(creditCard, describe(c, model.FieldCVV, openapi3.NewStringSchema().WithPattern(rules.CVVPattern))))
	schema.Required = []string{"name", "email", "activities", "payment"}

	if rule, ok := c.Visibility[model.FieldOtherJobRole.String()]; ok {
		schema.Properties["otherJobRole"].Value.Extensions = map[string]any{ExtensionVisibleWhen: rule}
	}
	return schema
}

func describe(c model.Catalog, id model.FieldID, schema *openapi3.Schema) *openapi3.Schema {
	schema.Title = catalog.PlainText(c.Label(id))
	schema.Description = catalog.PlainText(c.Hint(id))
	return schema
}

func requiredWhen(condition string, schema *openapi3.Schema) *openapi3.Schema {
	if schema.Extensions == nil {
		schema.Extensions = map[string]any{}
	}
	schema.Extensions[ExtensionRequiredWhen] = condition
	return schema
}

// enumSchema lists the selectable values of options. Placeholders are not
// answers and are left out.
func enumSchema(options []model.Option) *openapi3.Schema {
	values := make([]any, 0, len(options))
	for _, option := range options {
		if option.Placeholder {
			continue
		}
		values = append(values, option.Value)
	}
	return openapi3.NewStringSchema().WithEnum(values...)
}

func activityIDs(activities []model.Activity) []any {
	out := make([]any, len(activities))
	for i, activity := range activities {
		out[i] = activity.ID
	}
	return out
}

func fieldIDs(ids []model.FieldID) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

// ValidateValues checks v against the registration schema. It reports every
// structural problem at once; conditional requirements are left to the form.
func ValidateValues(c model.Catalog, v form.Values) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("contract: encode values: %w", err)
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return fmt.Errorf("contract: decode values: %w", err)
	}
	if err := RegistrationSchema(c).VisitJSON(payload, openapi3.MultiErrors()); err != nil {
		return fmt.Errorf("contract: %w", err)
	}
	return nil
}

// Marshal serializes doc. YAML output keeps the key order of the JSON form.
func Marshal(doc *openapi3.T, format Format) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("contract: document is nil")
	}
	raw, err := doc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("contract: encode: %w", err)
	}

	switch format {
	case FormatJSON, "":
		var out bytes.Buffer
		if err := json.Indent(&out, raw, "", "  "); err != nil {
			return nil, fmt.Errorf("contract: indent: %w", err)
		}
		out.WriteByte('\n')
		return out.Bytes(), nil
	case FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(raw, &node); err != nil {
			return nil, fmt.Errorf("contract: convert to yaml: %w", err)
		}
		blockStyle(&node)
		out, err := yaml.Marshal(&node)
		if err != nil {
			return nil, fmt.Errorf("contract: encode yaml: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("contract: unsupported format %q", format)
	}
}

// blockStyle clears the flow and quoting styles yaml.v3 records when parsing
// JSON so the output reads as regular block YAML.
func blockStyle(node *yaml.Node) {
	node.Style = 0
	for _, child := range node.Content {
		blockStyle(child)
	}
}
