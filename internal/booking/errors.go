package booking

import "errors"

var (
	// ErrInvalidState signals an operation the current seat or queue state
	// forbids, such as double-booking an occupied seat.
	ErrInvalidState = errors.New("invalid state")

	// ErrMissingInput signals a confirmation attempt made before every
	// required reservation field was provided.
	ErrMissingInput = errors.New("missing input")
)
