package polling

import "errors"

// Every reject outcome is a wrapped sentinel, so a host can drop a bad
// ballot with errors.Is instead of crashing or matching strings.
var (
	ErrDecode             = errors.New("polling: non-canonical encoding")
	ErrDegenerateInstance = errors.New("polling: degenerate instance")
	ErrVerification       = errors.New("polling: proof verification failed")
	ErrShapeMismatch      = errors.New("polling: shape mismatch")
)
