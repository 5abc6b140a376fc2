package gomorekit

import "errors"

var (
	// ErrNilFunc is returned when a debouncer is built without a target function.
	ErrNilFunc = errors.New("debounced function must not be nil")
	// ErrNegativeDelay is returned when a debouncer is built with a delay < 0.
	ErrNegativeDelay = errors.New("delay must be >= 0")
	// ErrNilClock is returned when WithClock is given a nil Clock.
	ErrNilClock = errors.New("clock must not be nil")

	// ErrOutOfRange reports a sequence value outside [0, n].
	ErrOutOfRange = errors.New("value out of range")
	// ErrDuplicate reports a value that appears more than once in a sequence.
	ErrDuplicate = errors.New("duplicate value")
)
