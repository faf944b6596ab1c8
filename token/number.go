package token

// NumberKind tags the active variant of a Number.
type NumberKind int

const (
	Float32Kind NumberKind = iota
	Float64Kind
	IntKind
	UintKind
)

func (k NumberKind) String() string {
	switch k {
	case Float32Kind:
		return "Float32"
	case Float64Kind:
		return "Float64"
	case IntKind:
		return "Int"
	case UintKind:
		return "Uint"
	default:
		return "Unknown"
	}
}

// Number is a closed union over the numeric kinds the encoder writes,
// for callers whose numeric kind is only known at runtime. A Number is
// constructed once and read once; it holds no references.
type Number struct {
	kind NumberKind
	f    float64
	i    int64
	u    uint64
}

// Float32Number creates a Number holding a 32-bit float.
func Float32Number(v float32) Number {
	return Number{kind: Float32Kind, f: float64(v)}
}

// Float64Number creates a Number holding a 64-bit float.
func Float64Number(v float64) Number {
	return Number{kind: Float64Kind, f: v}
}

// IntNumber creates a Number holding a signed integer.
func IntNumber(v int64) Number {
	return Number{kind: IntKind, i: v}
}

// UintNumber creates a Number holding an unsigned integer.
func UintNumber(v uint64) Number {
	return Number{kind: UintKind, u: v}
}

// Kind returns the active variant tag.
func (n Number) Kind() NumberKind {
	return n.kind
}

func (n Number) Float32() float32 {
	return float32(n.f)
}

func (n Number) Float64() float64 {
	return n.f
}

func (n Number) Int() int64 {
	return n.i
}

func (n Number) Uint() uint64 {
	return n.u
}

// WriteNumber writes n to s, dispatching on its kind. Number is a
// closed union, so an unrecognized kind is unreachable in correct use
// and panics.
func WriteNumber(s Sink, n Number) error {
	switch n.kind {
	case Float32Kind:
		return WriteFloat32(s, n.Float32())
	case Float64Kind:
		return WriteFloat64(s, n.Float64())
	case IntKind:
		return WriteInt(s, n.Int())
	case UintKind:
		return WriteUint(s, n.Uint())
	default:
		panic("token: unknown number kind")
	}
}
