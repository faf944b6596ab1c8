package stream

import "errors"

var (
	// ErrGrammar reports a structural call that cannot correspond to
	// valid JSON text in the current state.
	ErrGrammar = errors.New("grammar violation")

	// ErrNullKey reports a key write that received no key text.
	ErrNullKey = errors.New("null key")
)
