package form

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/model"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/visibility"
	"github.com/jmereardon17/fsjs-techdegree-project-3/pkg/visibility/expr"
)

// defaultOtherRoleRule reveals the free text role when the role is "other".
var defaultOtherRoleRule = model.FieldJobRole.String() + ` == "` + model.OtherJobRole + `"`

// compileRules resolves the catalog visibility rules and records which
// controls each rule reads, so a change to one of them re-evaluates it.
func (f *Form) compileRules() error {
	f.rules = make(map[model.FieldID]string, len(f.catalog.Visibility)+1)
	f.watchers = make(map[model.FieldID][]model.FieldID)

	for key, rule := range f.catalog.Visibility {
		target, ok := model.ParseFieldID(key)
		if !ok {
			return fmt.Errorf("form: visibility rule for unknown field %q: %w", key, ErrUnknownField)
		}
		f.rules[target] = rule
	}
	if _, ok := f.rules[model.FieldOtherJobRole]; !ok {
		f.rules[model.FieldOtherJobRole] = defaultOtherRoleRule
	}

	targets := make([]model.FieldID, 0, len(f.rules))
	for target := range f.rules {
		targets = append(targets, target)
	}
	sort.Slice(targets, func(i, j int) bool { return targets[i] < targets[j] })

	for _, target := range targets {
		program, err := expr.Compile(f.rules[target])
		if err != nil {
			return fmt.Errorf("form: visibility rule for %s: %w", target, err)
		}
		for _, ident := range program.Identifiers() {
			if source, ok := model.ParseFieldID(ident); ok {
				f.watchers[source] = append(f.watchers[source], target)
			}
		}
	}
	return nil
}

// visibilityContext exposes control values to visibility rules. Activities
// contribute "true" or "false" under their id.
func (f *Form) visibilityContext() visibility.Context {
	values := make(map[string]string, len(f.controls)+len(f.activities)+1)
	for id, ctrl := range f.controls {
		if ctrl.IsSelect() {
			values[id.String()] = ctrl.SelectedValue()
			continue
		}
		values[id.String()] = ctrl.Value
	}
	checked := 0
	for _, box := range f.activities {
		values[box.ID] = strconv.FormatBool(box.Checked)
		if box.Checked {
			checked++
		}
	}
	values[model.FieldActivities.String()] = strconv.FormatBool(checked > 0)
	return visibility.Context{Values: values}
}

// applyVisibility re-evaluates the rules that read source. The job role
// handler is the rule attached to the other job role field.
func (f *Form) applyVisibility(source model.FieldID) {
	targets := f.watchers[source]
	if len(targets) == 0 {
		return
	}
	ctx := f.visibilityContext()
	for _, target := range targets {
		ctrl, ok := f.controls[target]
		if !ok {
			continue
		}
		visible, err := f.visibility.Eval(target.String(), f.rules[target], ctx)
		if err != nil {
			f.logger.Warn().Err(err).Str("field", target.String()).Msg("visibility rule failed")
			continue
		}
		ctrl.Hidden = !visible
	}
}

// onDesignChange enables the color selector, hides the colors of other
// themes and selects the first color of the chosen one. When no color carries
// the theme the selection is cleared.
func (f *Form) onDesignChange() {
	design := f.controls[model.FieldShirtDesign].SelectedValue()
	color := f.controls[model.FieldShirtColor]
	color.Disabled = false

	first := -1
	for i := range color.Options {
		option := &color.Options[i]
		option.Hidden = option.Theme != design
		if !option.Hidden && first < 0 {
			first = i
		}
	}
	color.Selected = first
}

// onActivityChange applies the time slot rules for the toggled checkbox and
// recomputes the total.
func (f *Form) onActivityChange(index int) {
	if index < 0 || index >= len(f.activities) {
		f.updateTotal()
		return
	}
	chosen := f.activities[index]
	for i, box := range f.activities {
		sameSlot := chosen.TimeSlot != "" && box.TimeSlot == chosen.TimeSlot
		if i != index && sameSlot {
			box.Disabled = true
			box.LabelClasses.Add(ClassDisabled)
		}
		if !chosen.Checked && box.Disabled && sameSlot {
			box.Disabled = false
			box.LabelClasses.Remove(ClassDisabled)
		}
	}
	f.updateTotal()
}

func (f *Form) onActivityFocus(index int) {
	if index < 0 || index >= len(f.activities) {
		return
	}
	f.activities[index].LabelClasses.Add(ClassFocus)
}

func (f *Form) onActivityBlur(index int) {
	if index < 0 || index >= len(f.activities) {
		return
	}
	f.activities[index].LabelClasses.Remove(ClassFocus)
}

func (f *Form) updateTotal() {
	total := 0
	for _, box := range f.activities {
		if box.Checked {
			total += box.Cost
		}
	}
	f.total = total
}

// showPaymentPanel shows the panel matching the selected payment option and
// hides the rest. The placeholder at index 0 has no panel.
func (f *Form) showPaymentPanel() {
	selected := f.controls[model.FieldPayment].SelectedValue()
	for i, option := range f.catalog.Payments {
		if i == 0 {
			continue
		}
		if panel, ok := f.Panel(option.Value); ok {
			panel.Hidden = option.Value != selected
		}
	}
}

// validateField runs the dispatcher for a required field and updates its
// presentation.
func (f *Form) validateField(id model.FieldID) {
	if f.IsValid(id) {
		f.hideError(id)
		return
	}
	f.showError(id)
}
