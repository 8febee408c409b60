package commands

import "errors"

// ErrNotSubmitted is returned when the submission controller blocked the
// registration. The reason has already been written to the output.
var ErrNotSubmitted = errors.New("registration not submitted")
