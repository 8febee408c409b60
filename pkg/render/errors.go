package render

import (
	"fmt"
	"strings"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/form"
)

// ErrorMapping splits the visible validation feedback of a view into
// field-level messages keyed by element id and form-level messages.
type ErrorMapping struct {
	Fields map[string][]string `json:"fields,omitempty"`
	Form   []string            `json:"form,omitempty"`
}

// Empty reports whether there is nothing to show.
func (m ErrorMapping) Empty() bool {
	return len(m.Fields) == 0 && len(m.Form) == 0
}

// MapErrors collects the hint of every control currently marked invalid.
// When result reports a prevented submission a form-level message naming the
// failure count is added.
func MapErrors(view form.View, result *form.SubmitResult) ErrorMapping {
	mapping := ErrorMapping{Fields: make(map[string][]string)}

	for _, cv := range view.Controls {
		if cv.Valid == nil || *cv.Valid {
			continue
		}
		messages := normalizeMessages([]string{cv.Hint})
		if len(messages) == 0 {
			messages = []string{fmt.Sprintf("%s is not valid", cv.Label)}
		}
		mapping.Fields[cv.ID] = append(mapping.Fields[cv.ID], messages...)
	}

	if result != nil && result.Prevented {
		noun := "fields need"
		if len(result.Failures) == 1 {
			noun = "field needs"
		}
		mapping.Form = append(mapping.Form, fmt.Sprintf("Registration not submitted: %d %s attention", len(result.Failures), noun))
	}

	if len(mapping.Fields) == 0 {
		mapping.Fields = nil
	}
	mapping.Form = normalizeMessages(mapping.Form)
	return mapping
}

func normalizeMessages(messages []string) []string {
	if len(messages) == 0 {
		return nil
	}

	out := make([]string, 0, len(messages))
	seen := make(map[string]struct{}, len(messages))

	for _, message := range messages {
		trimmed := strings.TrimSpace(message)
		if trimmed == "" {
			continue
		}
		if _, exists := seen[trimmed]; exists {
			continue
		}
		seen[trimmed] = struct{}{}
		out = append(out, trimmed)
	}

	if len(out) == 0 {
		return nil
	}
	return out
}
