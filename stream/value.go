package stream

import "github.com/jsonwire/jsonwire-go/token"

// ValueKind tags the active variant of a Value.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindInt
	KindUint
	KindFloat32
	KindFloat64
	KindString
	KindNumber
	KindSource
)

// Value is a closed union over the categories the encoder can write.
// Dispatch happens in a single switch in Encoder.WriteValue rather
// than per-type methods. A Value holding a Source is single-use.
type Value struct {
	kind ValueKind
	s    string
	b    bool
	i    int64
	u    uint64
	f    float64
	num  token.Number
	src  token.Source
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(v bool) Value {
	return Value{kind: KindBool, b: v}
}

// Int returns a signed integer value.
func Int(v int64) Value {
	return Value{kind: KindInt, i: v}
}

// Uint returns an unsigned integer value.
func Uint(v uint64) Value {
	return Value{kind: KindUint, u: v}
}

// Float32 returns a 32-bit floating-point value.
func Float32(v float32) Value {
	return Value{kind: KindFloat32, f: float64(v)}
}

// Float64 returns a 64-bit floating-point value.
func Float64(v float64) Value {
	return Value{kind: KindFloat64, f: v}
}

// String returns a string value.
func String(v string) Value {
	return Value{kind: KindString, s: v}
}

// Bytes returns a string value over d. A nil slice is the no-string
// case and encodes as the null literal.
func Bytes(d []byte) Value {
	if d == nil {
		return Null()
	}
	return Value{kind: KindSource, src: token.NewBytesSource(d)}
}

// Num returns a value holding a runtime-tagged number.
func Num(n token.Number) Value {
	return Value{kind: KindNumber, num: n}
}

// FromSource returns a string value streamed from src. A nil source
// is the no-string case and encodes as the null literal.
func FromSource(src token.Source) Value {
	if src == nil {
		return Null()
	}
	return Value{kind: KindSource, src: src}
}

// Kind returns the active variant tag.
func (v Value) Kind() ValueKind {
	return v.kind
}
