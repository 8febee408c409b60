package form

import (
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/model"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/rules"
)

// Snapshot is the slice of form state the validation rules read.
type Snapshot struct {
	Values   map[model.FieldID]string
	Selected map[model.FieldID]int
	Checked  int
	Payment  model.PaymentMethod
}

// Value returns the text value recorded for id.
func (s Snapshot) Value(id model.FieldID) string {
	return s.Values[id]
}

// SelectedIndex returns the selected option index recorded for id, or -1.
func (s Snapshot) SelectedIndex(id model.FieldID) int {
	if idx, ok := s.Selected[id]; ok {
		return idx
	}
	return -1
}

// Snapshot captures the current values, selections, checked activity count
// and payment method.
func (f *Form) Snapshot() Snapshot {
	s := Snapshot{
		Values:   make(map[model.FieldID]string, len(f.controls)),
		Selected: make(map[model.FieldID]int),
		Payment:  f.Payment(),
	}
	for id, ctrl := range f.controls {
		if ctrl.IsSelect() {
			s.Selected[id] = ctrl.Selected
			s.Values[id] = ctrl.SelectedValue()
			continue
		}
		s.Values[id] = ctrl.Value
	}
	for _, box := range f.activities {
		if box.Checked {
			s.Checked++
		}
	}
	return s
}

type requirement struct {
	id    model.FieldID
	check func(Snapshot) bool
}

// requirements returns the required field table in submit order.
func requirements() []requirement {
	return []requirement{
		{model.FieldName, func(s Snapshot) bool { return rules.Name(s.Value(model.FieldName)) }},
		{model.FieldEmail, func(s Snapshot) bool { return rules.Email(s.Value(model.FieldEmail)) }},
		{model.FieldActivities, func(s Snapshot) bool { return rules.Activities(s.Checked) }},
		{model.FieldExpMonth, func(s Snapshot) bool { return rules.ExpiryOption(s.SelectedIndex(model.FieldExpMonth)) }},
		{model.FieldExpYear, func(s Snapshot) bool { return rules.ExpiryOption(s.SelectedIndex(model.FieldExpYear)) }},
		{model.FieldCardNumber, func(s Snapshot) bool { return rules.CardNumber(s.Value(model.FieldCardNumber)) }},
		{model.FieldZip, func(s Snapshot) bool { return rules.Zip(s.Value(model.FieldZip)) }},
		{model.FieldCVV, func(s Snapshot) bool { return rules.CVV(s.Value(model.FieldCVV)) }},
	}
}

// RequiredFields lists the fields carrying a rule, in submit order.
func RequiredFields() []model.FieldID {
	table := requirements()
	out := make([]model.FieldID, len(table))
	for i, req := range table {
		out[i] = req.id
	}
	return out
}

// Validate reports whether id passes its rule against s. Credit card fields
// only apply while credit card is the payment method; every field without a
// rule is valid.
func Validate(id model.FieldID, s Snapshot) bool {
	return dispatch(requirements(), id, s)
}

// IsValid validates id against the current form state.
func (f *Form) IsValid(id model.FieldID) bool {
	return dispatch(f.required, id, f.Snapshot())
}

func dispatch(table []requirement, id model.FieldID, s Snapshot) bool {
	if id.PaymentScoped() && s.Payment != model.PaymentCreditCard {
		return true
	}
	for _, req := range table {
		if req.id == id {
			return req.check(s)
		}
	}
	return true
}
