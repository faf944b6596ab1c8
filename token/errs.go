package token

import "errors"

var (
	// ErrNonFinite reports a NaN or infinite floating-point value.
	// JSON has no literal for these.
	ErrNonFinite = errors.New("non-finite number")
)
