package form

import "errors"

var (
	// ErrUnknownField is returned when an operation names a control the form
	// does not have.
	ErrUnknownField = errors.New("form: unknown field")
	// ErrDisabled is returned when the host writes to a disabled control or
	// selects a disabled option.
	ErrDisabled = errors.New("form: control is disabled")
	// ErrHidden is returned when the host writes to a control that is not
	// displayed.
	ErrHidden = errors.New("form: control is hidden")
	// ErrHiddenOption is returned when the host selects an option filtered out
	// of its select.
	ErrHiddenOption = errors.New("form: option is hidden")
	// ErrOutOfRange is returned for option or activity indices past the end of
	// their list, or option values the list does not carry.
	ErrOutOfRange = errors.New("form: index out of range")
	// ErrWrongKind is returned when a text write targets a select or the
	// reverse.
	ErrWrongKind = errors.New("form: wrong control kind")
)
