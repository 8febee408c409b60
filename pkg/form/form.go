package form

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/model"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/visibility"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/visibility/expr"
)

// OptionState is a select option together with its filter state.
type OptionState struct {
	model.Option
	Hidden bool
}

// Control is a text input or select on the form. Selected is the index of the
// chosen option for selects and -1 when nothing is selected.
type Control struct {
	ID       model.FieldID
	Value    string
	Selected int
	Options  []OptionState
	Disabled bool
	Hidden   bool
	Required bool
}

// IsSelect reports whether the control carries options.
func (c *Control) IsSelect() bool {
	return c.ID.Select()
}

// SelectedOption returns the chosen option.
func (c *Control) SelectedOption() (model.Option, bool) {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return model.Option{}, false
	}
	return c.Options[c.Selected].Option, true
}

// SelectedValue returns the value of the chosen option, or "" when nothing is
// selected.
func (c *Control) SelectedValue() string {
	option, _ := c.SelectedOption()
	return option.Value
}

// Checkbox is one activity of the activities group.
type Checkbox struct {
	model.Activity
	Checked      bool
	Disabled     bool
	LabelClasses ClassList
}

// Panel is a payment detail panel. Its id equals the payment option value.
type Panel struct {
	ID     string
	Hidden bool
}

// Option configures a Form.
type Option func(*Form)

// WithLogger sets the logger events and submit attempts are written to.
func WithLogger(logger zerolog.Logger) Option {
	return func(f *Form) {
		f.logger = logger
	}
}

// WithVisibility overrides the evaluator used for catalog visibility rules.
func WithVisibility(evaluator visibility.Evaluator) Option {
	return func(f *Form) {
		if evaluator != nil {
			f.visibility = evaluator
		}
	}
}

// Form owns the complete state of one registration form. It is not safe for
// concurrent use: hosts deliver events one at a time and every handler runs
// to completion before the next event.
type Form struct {
	catalog      model.Catalog
	controls     map[model.FieldID]*Control
	activities   []*Checkbox
	panels       []*Panel
	presentation map[model.FieldID]*Presentation
	required     []requirement

	focused  model.FieldID
	total    int
	rules    map[model.FieldID]string
	watchers map[model.FieldID][]model.FieldID

	listeners  listenerTable
	visibility visibility.Evaluator
	logger     zerolog.Logger
}

// New builds the form described by c and brings it into its initial state:
// the name field is focused, the other job role field hidden, the color
// selector disabled, credit card selected, the other payment panels hidden,
// and every listener attached.
func New(c model.Catalog, options ...Option) (*Form, error) {
	f := &Form{
		catalog:      c,
		controls:     make(map[model.FieldID]*Control),
		presentation: make(map[model.FieldID]*Presentation),
		visibility:   expr.New(),
		logger:       zerolog.Nop(),
	}
	for _, opt := range options {
		if opt != nil {
			opt(f)
		}
	}

	for _, id := range model.Fields() {
		if id == model.FieldActivities {
			continue
		}
		ctrl := &Control{ID: id, Selected: -1}
		if id.Select() {
			for _, option := range c.Options(id) {
				ctrl.Options = append(ctrl.Options, OptionState{Option: option})
			}
			if len(ctrl.Options) > 0 {
				ctrl.Selected = 0
			}
		}
		f.controls[id] = ctrl
	}

	for _, activity := range c.Activities {
		f.activities = append(f.activities, &Checkbox{Activity: activity})
	}

	for i, option := range c.Payments {
		if i == 0 {
			continue
		}
		f.panels = append(f.panels, &Panel{ID: option.Value})
	}

	f.required = requirements()
	for _, req := range f.required {
		if ctrl, ok := f.controls[req.id]; ok {
			ctrl.Required = true
		}
		f.presentation[req.id] = &Presentation{HintText: c.Hint(req.id)}
	}

	if err := f.compileRules(); err != nil {
		return nil, err
	}
	if err := f.initialize(); err != nil {
		return nil, err
	}
	f.listeners = f.attachListeners()
	return f, nil
}

func (f *Form) initialize() error {
	f.focused = model.FieldName
	f.controls[model.FieldOtherJobRole].Hidden = true
	f.controls[model.FieldShirtColor].Disabled = true

	payment := f.controls[model.FieldPayment]
	idx := model.IndexOf(f.catalog.Payments, string(model.PaymentCreditCard))
	if idx < 0 {
		return fmt.Errorf("form: payment options do not include %q", model.PaymentCreditCard)
	}
	payment.Selected = idx
	f.showPaymentPanel()
	f.updateTotal()
	return nil
}

// Catalog returns the catalog the form was built from.
func (f *Form) Catalog() model.Catalog {
	return f.catalog
}

// Control returns the live control for id.
func (f *Form) Control(id model.FieldID) (*Control, bool) {
	ctrl, ok := f.controls[id]
	return ctrl, ok
}

// Activities returns the activity checkboxes in document order.
func (f *Form) Activities() []*Checkbox {
	return f.activities
}

// Panels returns the payment detail panels in option order.
func (f *Form) Panels() []*Panel {
	return f.panels
}

// Panel returns the payment panel with the given id.
func (f *Form) Panel(id string) (*Panel, bool) {
	for _, p := range f.panels {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Focused returns the control holding focus, or FieldUnknown.
func (f *Form) Focused() model.FieldID {
	return f.focused
}

// Total returns the summed cost of the checked activities.
func (f *Form) Total() int {
	return f.total
}

// TotalText returns the cost line shown under the activities.
func (f *Form) TotalText() string {
	return fmt.Sprintf("Total: $%d", f.total)
}

// Payment returns the selected payment method.
func (f *Form) Payment() model.PaymentMethod {
	return model.PaymentMethod(f.controls[model.FieldPayment].SelectedValue())
}

// RequiredFields lists the required fields in submit order.
func (f *Form) RequiredFields() []model.FieldID {
	out := make([]model.FieldID, len(f.required))
	for i, req := range f.required {
		out[i] = req.id
	}
	return out
}
