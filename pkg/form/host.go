package form

import (
	"errors"
	"fmt"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/model"
)

// SetValue writes to a text input without firing events.
func (f *Form) SetValue(id model.FieldID, value string) error {
	ctrl, err := f.writable(id)
	if err != nil {
		return err
	}
	if ctrl.IsSelect() {
		return fmt.Errorf("form: set value on %s: %w", id, ErrWrongKind)
	}
	ctrl.Value = value
	return nil
}

// Select chooses the option at index without firing events. Placeholders are
// disabled options and cannot be chosen.
func (f *Form) Select(id model.FieldID, index int) error {
	ctrl, err := f.writable(id)
	if err != nil {
		return err
	}
	if !ctrl.IsSelect() {
		return fmt.Errorf("form: select on %s: %w", id, ErrWrongKind)
	}
	if index < 0 || index >= len(ctrl.Options) {
		return fmt.Errorf("form: select %s option %d: %w", id, index, ErrOutOfRange)
	}
	option := ctrl.Options[index]
	if option.Hidden {
		return fmt.Errorf("form: select %s option %q: %w", id, option.Value, ErrHiddenOption)
	}
	if option.Placeholder {
		return fmt.Errorf("form: select %s placeholder: %w", id, ErrDisabled)
	}
	ctrl.Selected = index
	return nil
}

// SetChecked sets the checked state of the activity at index without firing
// events.
func (f *Form) SetChecked(index int, checked bool) error {
	if index < 0 || index >= len(f.activities) {
		return fmt.Errorf("form: activity %d: %w", index, ErrOutOfRange)
	}
	box := f.activities[index]
	if box.Disabled {
		return fmt.Errorf("form: activity %q: %w", box.ID, ErrDisabled)
	}
	box.Checked = checked
	return nil
}

// Type replaces the value of a text input and fires keyup.
func (f *Form) Type(id model.FieldID, value string) error {
	if err := f.SetValue(id, value); err != nil {
		return err
	}
	_, err := f.Dispatch(Event{Kind: EventKeyUp, Target: id})
	return err
}

// Choose selects the option carrying value and fires change.
func (f *Form) Choose(id model.FieldID, value string) error {
	ctrl, ok := f.controls[id]
	if !ok {
		return fmt.Errorf("form: choose %s: %w", id, ErrUnknownField)
	}
	index := -1
	for i, option := range ctrl.Options {
		if option.Value == value {
			index = i
			break
		}
	}
	if index < 0 {
		return fmt.Errorf("form: choose %s value %q: %w", id, value, ErrOutOfRange)
	}
	if err := f.Select(id, index); err != nil {
		return err
	}
	_, err := f.Dispatch(Event{Kind: EventChange, Target: id})
	return err
}

// Toggle flips the activity at index and fires change on the group.
func (f *Form) Toggle(index int) error {
	if index < 0 || index >= len(f.activities) {
		return fmt.Errorf("form: toggle activity %d: %w", index, ErrOutOfRange)
	}
	if err := f.SetChecked(index, !f.activities[index].Checked); err != nil {
		return err
	}
	_, err := f.Dispatch(Event{Kind: EventChange, Target: model.FieldActivities, Index: index})
	return err
}

// ActivityIndex returns the position of the activity with the given id, or -1.
func (f *Form) ActivityIndex(id string) int {
	for i, box := range f.activities {
		if box.ID == id {
			return i
		}
	}
	return -1
}

// Leave moves focus off a control, firing blur.
func (f *Form) Leave(id model.FieldID) error {
	_, err := f.Dispatch(Event{Kind: EventBlur, Target: id})
	return err
}

func (f *Form) writable(id model.FieldID) (*Control, error) {
	ctrl, ok := f.controls[id]
	if !ok {
		return nil, fmt.Errorf("form: %s: %w", id, ErrUnknownField)
	}
	if ctrl.Disabled {
		return nil, fmt.Errorf("form: %s: %w", id, ErrDisabled)
	}
	if ctrl.Hidden {
		return nil, fmt.Errorf("form: %s: %w", id, ErrHidden)
	}
	return ctrl, nil
}

// Values is a complete set of answers in document order. Selects are set by
// option value, activities by id.
type Values struct {
	Name         string   `json:"name,omitempty" yaml:"name,omitempty"`
	Email        string   `json:"email,omitempty" yaml:"email,omitempty"`
	JobRole      string   `json:"title,omitempty" yaml:"title,omitempty"`
	OtherJobRole string   `json:"otherJobRole,omitempty" yaml:"otherJobRole,omitempty"`
	Size         string   `json:"size,omitempty" yaml:"size,omitempty"`
	Design       string   `json:"design,omitempty" yaml:"design,omitempty"`
	Color        string   `json:"color,omitempty" yaml:"color,omitempty"`
	Activities   []string `json:"activities,omitempty" yaml:"activities,omitempty"`
	Payment      string   `json:"payment,omitempty" yaml:"payment,omitempty"`
	ExpMonth     string   `json:"expMonth,omitempty" yaml:"expMonth,omitempty"`
	ExpYear      string   `json:"expYear,omitempty" yaml:"expYear,omitempty"`
	CardNumber   string   `json:"ccNum,omitempty" yaml:"ccNum,omitempty"`
	Zip          string   `json:"zip,omitempty" yaml:"zip,omitempty"`
	CVV          string   `json:"cvv,omitempty" yaml:"cvv,omitempty"`
}

// Apply replays v through the handlers the way a user filling the form top to
// bottom would: text is typed and left, selects are chosen, activities are
// toggled on. Empty entries are skipped. Every entry is attempted; misuse
// errors (a conflicting activity, an unknown option) are joined and returned.
func (f *Form) Apply(v Values) error {
	var errs []error
	text := func(id model.FieldID, value string) {
		if value == "" {
			return
		}
		if err := f.Type(id, value); err != nil {
			errs = append(errs, err)
			return
		}
		if err := f.Leave(id); err != nil {
			errs = append(errs, err)
		}
	}
	choose := func(id model.FieldID, value string) {
		if value == "" {
			return
		}
		if err := f.Choose(id, value); err != nil {
			errs = append(errs, err)
		}
	}

	text(model.FieldName, v.Name)
	text(model.FieldEmail, v.Email)
	choose(model.FieldJobRole, v.JobRole)
	text(model.FieldOtherJobRole, v.OtherJobRole)
	choose(model.FieldShirtSize, v.Size)
	choose(model.FieldShirtDesign, v.Design)
	choose(model.FieldShirtColor, v.Color)
	for _, id := range v.Activities {
		index := f.ActivityIndex(id)
		if index < 0 {
			errs = append(errs, fmt.Errorf("form: activity %q: %w", id, ErrOutOfRange))
			continue
		}
		if f.activities[index].Checked {
			continue
		}
		if err := f.Toggle(index); err != nil {
			errs = append(errs, err)
		}
	}
	choose(model.FieldPayment, v.Payment)
	choose(model.FieldExpMonth, v.ExpMonth)
	choose(model.FieldExpYear, v.ExpYear)
	text(model.FieldCardNumber, v.CardNumber)
	text(model.FieldZip, v.Zip)
	text(model.FieldCVV, v.CVV)

	return errors.Join(errs...)
}

// Values reads the current answers back out of the form. Hidden and disabled
// controls are reported as they stand.
func (f *Form) Values() Values {
	v := Values{
		Name:         f.controls[model.FieldName].Value,
		Email:        f.controls[model.FieldEmail].Value,
		JobRole:      f.selectedValue(model.FieldJobRole),
		OtherJobRole: f.controls[model.FieldOtherJobRole].Value,
		Size:         f.selectedValue(model.FieldShirtSize),
		Design:       f.selectedValue(model.FieldShirtDesign),
		Color:        f.selectedValue(model.FieldShirtColor),
		Payment:      f.selectedValue(model.FieldPayment),
		ExpMonth:     f.selectedValue(model.FieldExpMonth),
		ExpYear:      f.selectedValue(model.FieldExpYear),
		CardNumber:   f.controls[model.FieldCardNumber].Value,
		Zip:          f.controls[model.FieldZip].Value,
		CVV:          f.controls[model.FieldCVV].Value,
	}
	for _, box := range f.activities {
		if box.Checked {
			v.Activities = append(v.Activities, box.ID)
		}
	}
	return v
}

// selectedValue reports the chosen option value, or "" while a placeholder is
// selected.
func (f *Form) selectedValue(id model.FieldID) string {
	option, ok := f.controls[id].SelectedOption()
	if !ok || option.Placeholder {
		return ""
	}
	return option.Value
}
