package token

import (
	"math"
	"strconv"
)

// maxIntChars holds the widest decimal rendering of a 64-bit integer:
// 20 digits for MaxUint64, or 19 digits plus sign for MinInt64.
const maxIntChars = 20

// maxFloatChars covers sign, up to 17 significant digits, decimal
// point, and exponent for a 64-bit float.
const maxFloatChars = 32

// WriteUint writes the decimal form of v to s.
func WriteUint(s Sink, v uint64) error {
	var buf [maxIntChars]byte
	p := uintDigits(buf[:], v)
	_, err := s.Write(buf[p:])
	return err
}

// WriteInt writes the decimal form of v to s.
func WriteInt(s Sink, v int64) error {
	var buf [maxIntChars]byte
	// two's complement negation is exact for MinInt64
	u := uint64(v)
	if v < 0 {
		u = -u
	}
	p := uintDigits(buf[:], u)
	if v < 0 {
		p--
		buf[p] = '-'
	}
	_, err := s.Write(buf[p:])
	return err
}

// uintDigits fills buf from the end backward, units digit first, and
// returns the index of the leading digit. Zero renders as "0".
func uintDigits(buf []byte, v uint64) int {
	p := len(buf)
	for {
		p--
		buf[p] = '0' + byte(v%10)
		v /= 10
		if v == 0 {
			return p
		}
	}
}

// WriteFloat64 writes the shortest decimal form of v that parses back
// to the same 64-bit value. Returns ErrNonFinite for NaN and ±Inf,
// writing nothing.
func WriteFloat64(s Sink, v float64) error {
	return writeFloat(s, v, 64)
}

// WriteFloat32 writes the shortest decimal form of v that parses back
// to the same 32-bit value. Returns ErrNonFinite for NaN and ±Inf,
// writing nothing.
func WriteFloat32(s Sink, v float32) error {
	return writeFloat(s, float64(v), 32)
}

func writeFloat(s Sink, v float64, bits int) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNonFinite
	}
	var buf [maxFloatChars]byte
	d := strconv.AppendFloat(buf[:0], v, 'g', -1, bits)
	_, err := s.Write(d)
	return err
}
