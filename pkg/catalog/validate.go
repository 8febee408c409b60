package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/model"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/visibility/expr"
)

// Validate checks the structural rules every catalog must satisfy. Issues are
// reported as criterio.FieldErrors keyed by document path.
func Validate(c model.Catalog) error {
	return criterio.ValidateStruct(
		criterio.Run("title", c.Title, notBlank),
		validateOptions("jobRoles", c.JobRoles, false),
		validateOptions("sizes", c.Sizes, false),
		validateOptions("designs", c.Designs, false),
		validateColors(c.Colors, c.Designs),
		validateActivities(c.Activities),
		validatePayments(c.Payments),
		validateOptions("expMonths", c.ExpMonths, true),
		validateOptions("expYears", c.ExpYears, true),
		validateKeys("labels", c.Labels),
		validateKeys("hints", c.Hints),
		validateVisibility(c.Visibility),
	)
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("cannot be empty")
	}
	return nil
}

// validateOptions requires a non-empty list with unique values. When
// placeholder is set the first option must be a placeholder, since index 0 of
// those selects is never a valid choice.
func validateOptions(field string, options []model.Option, placeholder bool) error {
	if len(options) == 0 {
		return criterio.NewFieldErrors(field, errors.New("at least one option is required"))
	}

	var errs criterio.FieldErrorsBuilder
	if placeholder && !options[0].Placeholder {
		errs = errs.Append(field+"[0]", errors.New("first option must be a placeholder"))
	}

	seen := make(map[string]int, len(options))
	for i, option := range options {
		path := fmt.Sprintf("%s[%d]", field, i)
		if option.Placeholder {
			if i != 0 {
				errs = errs.Append(path, errors.New("only the first option may be a placeholder"))
			}
			continue
		}
		if strings.TrimSpace(option.Value) == "" {
			errs = errs.Append(path+".value", errors.New("cannot be empty"))
			continue
		}
		if prev, ok := seen[option.Value]; ok {
			errs = errs.Append(path+".value", fmt.Errorf("duplicate value %q (also at index %d)", option.Value, prev))
			continue
		}
		seen[option.Value] = i
	}
	return errs.ToError()
}

func validateColors(colors, designs []model.Option) error {
	if err := validateOptions("colors", colors, false); err != nil {
		return err
	}

	themes := make(map[string]struct{}, len(designs))
	for _, design := range designs {
		if !design.Placeholder {
			themes[design.Value] = struct{}{}
		}
	}

	var errs criterio.FieldErrorsBuilder
	for i, color := range colors {
		if color.Placeholder {
			continue
		}
		path := fmt.Sprintf("colors[%d].theme", i)
		if color.Theme == "" {
			errs = errs.Append(path, errors.New("cannot be empty"))
			continue
		}
		if _, ok := themes[color.Theme]; !ok {
			errs = errs.Append(path, fmt.Errorf("unknown design %q", color.Theme))
		}
	}
	return errs.ToError()
}

func validateActivities(activities []model.Activity) error {
	if len(activities) == 0 {
		return criterio.NewFieldErrors("activities", errors.New("at least one activity is required"))
	}

	var errs criterio.FieldErrorsBuilder
	seen := make(map[string]int, len(activities))
	for i, activity := range activities {
		path := fmt.Sprintf("activities[%d]", i)
		switch {
		case activity.ID == "":
			errs = errs.Append(path+".id", errors.New("cannot be empty"))
		default:
			if prev, ok := seen[activity.ID]; ok {
				errs = errs.Append(path+".id", fmt.Errorf("duplicate id %q (also at index %d)", activity.ID, prev))
			} else {
				seen[activity.ID] = i
			}
		}
		if activity.Cost < 0 {
			errs = errs.Append(path+".cost", fmt.Errorf("must not be negative, got %d", activity.Cost))
		}
	}
	return errs.ToError()
}

func validatePayments(payments []model.Option) error {
	if err := validateOptions("payments", payments, true); err != nil {
		return err
	}
	if model.IndexOf(payments, string(model.PaymentCreditCard)) < 0 {
		return criterio.NewFieldErrors("payments", fmt.Errorf("must include %q", model.PaymentCreditCard))
	}
	return nil
}

func validateKeys(field string, entries map[string]string) error {
	var errs criterio.FieldErrorsBuilder
	for key := range entries {
		if _, ok := model.ParseFieldID(key); !ok {
			errs = errs.Append(fmt.Sprintf("%s[%q]", field, key), errors.New("unknown field"))
		}
	}
	return errs.ToError()
}

func validateVisibility(rules map[string]string) error {
	var errs criterio.FieldErrorsBuilder
	for key, rule := range rules {
		path := fmt.Sprintf("visibility[%q]", key)
		if _, ok := model.ParseFieldID(key); !ok {
			errs = errs.Append(path, errors.New("unknown field"))
			continue
		}
		program, err := expr.Compile(rule)
		if err != nil {
			errs = errs.Append(path, err)
			continue
		}
		for _, ident := range program.Identifiers() {
			if _, ok := model.ParseFieldID(ident); !ok {
				errs = errs.Append(path, fmt.Errorf("rule references unknown field %q", ident))
			}
		}
	}
	return errs.ToError()
}
