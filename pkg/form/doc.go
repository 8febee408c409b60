// Package form is the registration form engine: the validation dispatcher,
// error presentation, field interaction handlers, and the submission
// controller, all operating on one explicit Form value.
//
// Hosts write control state with SetValue, Select and SetChecked, then deliver
// the matching interaction with Dispatch. Type, Choose, Toggle and Leave do
// both in one call. Submit (or a submit event) validates every required field
// and reports whether the default submit action must be suppressed.
//
//	f, err := form.New(catalog.MustDefault())
//	_ = f.Type(model.FieldName, "Ada")
//	_ = f.Toggle(f.ActivityIndex("js-frameworks"))
//	result := f.Submit()
//
// A Form is single-threaded: events are handled one at a time and each
// handler runs to completion.
package form
