package form

import (
	"slices"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/model"
)

// View is a read-only snapshot of everything a renderer draws.
type View struct {
	Title      string         `json:"title"`
	Intro      string         `json:"intro,omitempty"`
	Focused    string         `json:"focused,omitempty"`
	Controls   []ControlView  `json:"controls"`
	Activities []ActivityView `json:"activities"`
	Panels     []PanelView    `json:"panels"`
	Total      int            `json:"total"`
	TotalText  string         `json:"totalText"`
	Payment    string         `json:"payment"`
}

// ControlView describes one control. Hint fields are only set for required
// fields. Panel names the payment panel holding the control, if any.
type ControlView struct {
	ID           string       `json:"id"`
	Label        string       `json:"label"`
	Kind         string       `json:"kind"`
	Value        string       `json:"value,omitempty"`
	Selected     int          `json:"selected"`
	Options      []OptionView `json:"options,omitempty"`
	Disabled     bool         `json:"disabled,omitempty"`
	Hidden       bool         `json:"hidden,omitempty"`
	Required     bool         `json:"required,omitempty"`
	Valid        *bool        `json:"valid,omitempty"`
	LabelClasses []string     `json:"labelClasses,omitempty"`
	Hint         string       `json:"hint,omitempty"`
	HintDisplay  string       `json:"hintDisplay,omitempty"`
	HintVisible  bool         `json:"hintVisible,omitempty"`
	Panel        string       `json:"panel,omitempty"`
}

// OptionView describes one select option.
type OptionView struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Theme       string `json:"theme,omitempty"`
	Placeholder bool   `json:"placeholder,omitempty"`
	Hidden      bool   `json:"hidden,omitempty"`
	Selected    bool   `json:"selected,omitempty"`
}

// ActivityView describes one activity checkbox.
type ActivityView struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	Cost         int      `json:"cost"`
	TimeSlot     string   `json:"timeSlot,omitempty"`
	Checked      bool     `json:"checked,omitempty"`
	Disabled     bool     `json:"disabled,omitempty"`
	LabelClasses []string `json:"labelClasses,omitempty"`
}

// PanelView describes one payment detail panel.
type PanelView struct {
	ID     string `json:"id"`
	Hidden bool   `json:"hidden,omitempty"`
}

// Control kinds reported in ControlView.Kind.
const (
	KindText       = "text"
	KindSelect     = "select"
	KindCheckboxes = "checkboxes"
)

// View captures the current state of the form.
func (f *Form) View() View {
	v := View{
		Title:     f.catalog.Title,
		Intro:     f.catalog.Intro,
		Total:     f.total,
		TotalText: f.TotalText(),
		Payment:   string(f.Payment()),
	}
	if f.focused != model.FieldUnknown {
		v.Focused = f.focused.String()
	}

	for _, id := range model.Fields() {
		v.Controls = append(v.Controls, f.controlView(id))
	}

	for _, box := range f.activities {
		v.Activities = append(v.Activities, ActivityView{
			ID:           box.ID,
			Label:        box.Label,
			Cost:         box.Cost,
			TimeSlot:     box.TimeSlot,
			Checked:      box.Checked,
			Disabled:     box.Disabled,
			LabelClasses: slices.Clone(box.LabelClasses),
		})
	}

	for _, panel := range f.panels {
		v.Panels = append(v.Panels, PanelView{ID: panel.ID, Hidden: panel.Hidden})
	}
	return v
}

func (f *Form) controlView(id model.FieldID) ControlView {
	cv := ControlView{
		ID:       id.String(),
		Label:    f.catalog.Label(id),
		Kind:     KindText,
		Selected: -1,
	}
	if id.PaymentScoped() {
		cv.Panel = string(model.PaymentCreditCard)
	}

	if ctrl, ok := f.controls[id]; ok {
		cv.Value = ctrl.Value
		cv.Disabled = ctrl.Disabled
		cv.Hidden = ctrl.Hidden
		cv.Required = ctrl.Required
		if ctrl.IsSelect() {
			cv.Kind = KindSelect
			cv.Value = ctrl.SelectedValue()
			cv.Selected = ctrl.Selected
			for i, option := range ctrl.Options {
				cv.Options = append(cv.Options, OptionView{
					Value:       option.Value,
					Label:       option.Label,
					Theme:       option.Theme,
					Placeholder: option.Placeholder,
					Hidden:      option.Hidden,
					Selected:    i == ctrl.Selected,
				})
			}
		}
	} else if id == model.FieldActivities {
		cv.Kind = KindCheckboxes
		cv.Required = true
	}

	if p, ok := f.presentation[id]; ok {
		cv.LabelClasses = slices.Clone(p.Classes)
		cv.Hint = p.HintText
		cv.HintDisplay = p.HintDisplay
		cv.HintVisible = p.HintVisible()
		switch {
		case p.Classes.Contains(ClassNotValid):
			cv.Valid = boolPtr(false)
		case p.Classes.Contains(ClassValid):
			cv.Valid = boolPtr(true)
		}
	}
	return cv
}

func boolPtr(b bool) *bool { return &b }

// ControlView returns the view of one control.
func (v View) ControlView(id model.FieldID) (ControlView, bool) {
	for _, cv := range v.Controls {
		if cv.ID == id.String() {
			return cv, true
		}
	}
	return ControlView{}, false
}
