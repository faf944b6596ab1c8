package stream

import (
	"io"
	"math"

	"github.com/jsonwire/jsonwire-go/token"
)

// Encoder writes a single JSON document to a sink, one structural
// call at a time. Every call is validated against the grammar before
// any byte is emitted, so the output of an error-free call sequence
// is always syntactically valid JSON with exactly one top-level
// value.
//
// An Encoder must not be used from more than one goroutine without
// external synchronization; it assumes none. After any error the
// document structure is unspecified: discard the encoder and its
// partial output.
type Encoder struct {
	sink   token.Sink
	state  *State
	colors *Colors
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithColors enables colorized output using the given palette.
func WithColors(c *Colors) Option {
	return func(e *Encoder) { e.colors = c }
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return NewSinkEncoder(token.NewWriterSink(w), opts...)
}

// NewSinkEncoder creates an Encoder writing to a caller-provided sink.
func NewSinkEncoder(s token.Sink, opts ...Option) *Encoder {
	e := &Encoder{sink: s, state: NewState()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Structure Control Methods

// BeginObject begins an object.
func (e *Encoder) BeginObject() error {
	return e.beginContainer(NodeObject, '{')
}

// BeginArray begins an array.
func (e *Encoder) BeginArray() error {
	return e.beginContainer(NodeArray, '[')
}

func (e *Encoder) beginContainer(k NodeKind, open byte) error {
	sep, need := e.state.Separator()
	if err := e.state.Enter(k); err != nil {
		return err
	}
	if need {
		if err := e.putPunct(sep); err != nil {
			return err
		}
	}
	return e.putPunct(open)
}

// EndObject ends the innermost container, which must be an object.
func (e *Encoder) EndObject() error {
	return e.endContainer(NodeObject, '}')
}

// EndArray ends the innermost container, which must be an array.
func (e *Encoder) EndArray() error {
	return e.endContainer(NodeArray, ']')
}

func (e *Encoder) endContainer(k NodeKind, c byte) error {
	if err := e.state.Exit(k); err != nil {
		return err
	}
	return e.putPunct(c)
}

// Key Writing Methods

// WriteKey writes an object member key.
func (e *Encoder) WriteKey(key string) error {
	return e.writeKey(token.NewStringSource(key))
}

// WriteKeyBytes writes an object member key. A nil slice fails with
// ErrNullKey: object keys have no null form.
func (e *Encoder) WriteKeyBytes(key []byte) error {
	if key == nil {
		return ErrNullKey
	}
	return e.writeKey(token.NewBytesSource(key))
}

func (e *Encoder) writeKey(src token.Source) error {
	sep, need := e.state.Separator()
	if err := e.state.Enter(NodeKey); err != nil {
		return err
	}
	if need {
		if err := e.putPunct(sep); err != nil {
			return err
		}
	}
	return e.paint(KeyColor, func() error {
		return e.escapeFrom(src)
	})
}

// Value Writing Methods

// WriteValue writes v as the next value, dispatching on its kind.
// Validation (grammar and value) precedes the first byte.
func (e *Encoder) WriteValue(v Value) error {
	if err := checkValue(v); err != nil {
		return err
	}
	sep, need := e.state.Separator()
	if err := e.state.Enter(NodeValue); err != nil {
		return err
	}
	if need {
		if err := e.putPunct(sep); err != nil {
			return err
		}
	}
	if err := e.writeScalar(v); err != nil {
		return err
	}
	e.state.EndChild()
	return nil
}

// WriteKeyValue writes an object member key and its value as one
// operation. All validation happens before any byte is written.
func (e *Encoder) WriteKeyValue(key string, v Value) error {
	return e.writeKeyValue(token.NewStringSource(key), v)
}

// WriteKeyValueBytes is WriteKeyValue with a byte-slice key. A nil
// key fails with ErrNullKey.
func (e *Encoder) WriteKeyValueBytes(key []byte, v Value) error {
	if key == nil {
		return ErrNullKey
	}
	return e.writeKeyValue(token.NewBytesSource(key), v)
}

func (e *Encoder) writeKeyValue(key token.Source, v Value) error {
	if err := checkValue(v); err != nil {
		return err
	}
	sep, need := e.state.Separator()
	if err := e.state.Enter(NodeKey); err != nil {
		return err
	}
	if need {
		if err := e.putPunct(sep); err != nil {
			return err
		}
	}
	if err := e.paint(KeyColor, func() error {
		return e.escapeFrom(key)
	}); err != nil {
		return err
	}
	// the pending key makes any value-producing kind legal here
	if err := e.state.Enter(NodeValue); err != nil {
		return err
	}
	if err := e.putPunct(':'); err != nil {
		return err
	}
	if err := e.writeScalar(v); err != nil {
		return err
	}
	e.state.EndChild()
	return nil
}

// WriteString writes a string value.
func (e *Encoder) WriteString(v string) error {
	return e.WriteValue(String(v))
}

// WriteStringFrom writes a string value streamed from src. A nil
// source encodes as the null literal.
func (e *Encoder) WriteStringFrom(src token.Source) error {
	return e.WriteValue(FromSource(src))
}

// WriteInt writes a signed integer value.
func (e *Encoder) WriteInt(v int64) error {
	return e.WriteValue(Int(v))
}

// WriteUint writes an unsigned integer value.
func (e *Encoder) WriteUint(v uint64) error {
	return e.WriteValue(Uint(v))
}

// WriteFloat32 writes a 32-bit floating-point value.
func (e *Encoder) WriteFloat32(v float32) error {
	return e.WriteValue(Float32(v))
}

// WriteFloat64 writes a 64-bit floating-point value.
func (e *Encoder) WriteFloat64(v float64) error {
	return e.WriteValue(Float64(v))
}

// WriteBool writes a boolean value.
func (e *Encoder) WriteBool(v bool) error {
	return e.WriteValue(Bool(v))
}

// WriteNull writes the null literal.
func (e *Encoder) WriteNull() error {
	return e.WriteValue(Null())
}

// WriteNumber writes a runtime-tagged number.
func (e *Encoder) WriteNumber(n token.Number) error {
	return e.WriteValue(Num(n))
}

// Cosmetic Methods

// Newline writes a raw newline. No grammar effect.
func (e *Encoder) Newline() error {
	return e.sink.Put('\n')
}

// Whitespace writes n raw spaces. No grammar effect.
func (e *Encoder) Whitespace(n int) error {
	return e.sink.PutN(' ', n)
}

// Queryable State Methods

// Parent returns the kind of the innermost open node. After
// BeginObject it reports NodeObject until the matching EndObject or a
// nested open.
func (e *Encoder) Parent() NodeKind {
	return e.state.Parent()
}

// Depth returns the container nesting depth (0 = top level).
func (e *Encoder) Depth() int {
	return e.state.Depth()
}

// Done reports whether exactly one complete top-level value has been
// written.
func (e *Encoder) Done() bool {
	return e.state.Done()
}

// Offset returns the absolute byte offset in the output stream.
func (e *Encoder) Offset() int64 {
	return e.sink.Outpos()
}

// Control Methods

// Flush flushes the sink.
func (e *Encoder) Flush() error {
	return e.sink.Flush()
}

// Close releases the encoder's hold on the sink by flushing it. The
// flush result is dropped: teardown is unconditional and never fails.
// Call it on every exit path, including after errors.
func (e *Encoder) Close() {
	_ = e.sink.Flush()
}

// internals

// checkValue rejects values that must not emit a single byte:
// non-finite floats have no JSON literal.
func checkValue(v Value) error {
	switch v.kind {
	case KindFloat32, KindFloat64:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return token.ErrNonFinite
		}
	case KindNumber:
		switch v.num.Kind() {
		case token.Float32Kind, token.Float64Kind:
			f := v.num.Float64()
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return token.ErrNonFinite
			}
		}
	}
	return nil
}

// writeScalar emits the token bytes for v. The single dispatch point
// over the closed union; Value being closed, the default branch is
// unreachable in correct use.
func (e *Encoder) writeScalar(v Value) error {
	switch v.kind {
	case KindNull:
		return e.paint(NullColor, func() error {
			return token.WriteNull(e.sink)
		})
	case KindBool:
		return e.paint(BoolColor, func() error {
			return token.WriteBool(e.sink, v.b)
		})
	case KindInt:
		return e.paint(NumberColor, func() error {
			return token.WriteInt(e.sink, v.i)
		})
	case KindUint:
		return e.paint(NumberColor, func() error {
			return token.WriteUint(e.sink, v.u)
		})
	case KindFloat32:
		return e.paint(NumberColor, func() error {
			return token.WriteFloat32(e.sink, float32(v.f))
		})
	case KindFloat64:
		return e.paint(NumberColor, func() error {
			return token.WriteFloat64(e.sink, v.f)
		})
	case KindString:
		return e.paint(StringColor, func() error {
			return e.escapeFrom(token.NewStringSource(v.s))
		})
	case KindNumber:
		return e.paint(NumberColor, func() error {
			return token.WriteNumber(e.sink, v.num)
		})
	case KindSource:
		return e.paint(StringColor, func() error {
			return e.escapeFrom(v.src)
		})
	default:
		panic("stream: unknown value kind")
	}
}

// escapeFrom escapes src to the sink and surfaces a read failure from
// reader-backed sources, which otherwise just end early.
func (e *Encoder) escapeFrom(src token.Source) error {
	if err := token.WriteEscaped(e.sink, src, true); err != nil {
		return err
	}
	if rs, ok := src.(interface{ Err() error }); ok {
		return rs.Err()
	}
	return nil
}

func (e *Encoder) putPunct(c byte) error {
	return e.paint(PunctColor, func() error {
		return e.sink.Put(c)
	})
}

func (e *Encoder) paint(class ColorClass, f func() error) error {
	if e.colors == nil {
		return f()
	}
	e.colors.begin(e.sink, class)
	err := f()
	e.colors.end(e.sink, class)
	return err
}
