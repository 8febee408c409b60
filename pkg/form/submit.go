package form

import (
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/model"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/rules"
)

// Email hint copy chosen on submit.
const (
	EmailHintEmpty     = "Enter an email address"
	EmailHintMalformed = "Email address must be formatted correctly"
)

// SubmitResult reports a submit attempt. Prevented means the default submit
// action was suppressed because at least one required field failed.
type SubmitResult struct {
	Prevented bool            `json:"prevented"`
	Failures  []model.FieldID `json:"failures,omitempty"`
}

// Submit evaluates every required field, updating each field's presentation,
// and suppresses submission when any of them fails. All fields are evaluated
// even after the first failure.
func (f *Form) Submit() SubmitResult {
	var result SubmitResult
	s := f.Snapshot()

	for _, req := range f.required {
		if dispatch(f.required, req.id, s) {
			f.hideError(req.id)
			continue
		}
		f.showError(req.id)
		if req.id == model.FieldEmail {
			f.setEmailHint(s.Value(model.FieldEmail))
		}
		result.Failures = append(result.Failures, req.id)
	}
	result.Prevented = len(result.Failures) > 0

	event := f.logger.Info().Bool("prevented", result.Prevented)
	if result.Prevented {
		failures := make([]string, len(result.Failures))
		for i, id := range result.Failures {
			failures[i] = id.String()
		}
		event = event.Strs("failures", failures)
	}
	event.Msg("submit")
	return result
}

func (f *Form) setEmailHint(value string) {
	p, ok := f.presentation[model.FieldEmail]
	if !ok {
		return
	}
	if rules.ClassifyEmail(value) == rules.EmailEmpty {
		p.HintText = EmailHintEmpty
		return
	}
	p.HintText = EmailHintMalformed
}
