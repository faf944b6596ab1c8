// Package stream provides a one-pass, grammar-enforcing JSON encoder.
//
// The encoder emits a JSON document incrementally to a byte sink,
// without building a document tree. A State machine validates every
// structural call (open/close container, write key, write value)
// before any byte is written, so accepted call sequences always
// produce valid RFC 8259 JSON with exactly one top-level value.
//
// # Example: Encoding
//
//	enc := stream.NewEncoder(w)
//	enc.BeginObject()
//	enc.WriteKey("name")
//	enc.WriteString("value")
//	enc.EndObject()
//	enc.Close()
//
// # Errors
//
// Illegal call sequences fail with ErrGrammar, missing key text with
// ErrNullKey, non-finite floats with token.ErrNonFinite, and sink
// failures pass through unchanged. No error is recovered internally;
// after any error the encoder must be discarded. Close never fails.
package stream
