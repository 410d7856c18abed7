package chanx

import "errors"

// Precondition failures. These are programming errors, not runtime
// outcomes: they are panicked with immediately rather than threaded
// through a return value, the same way a nil map write or a close of a
// nil native channel is a panic rather than an error.
var (
	ErrNilChannel = errors.New("chanx: channel is nil")
	ErrNilHandler = errors.New("chanx: handler is nil")
)
