package token

import "io"

// Source is a finite, single-pass byte sequence feeding string content
// into the escaper. A Source is consumed exactly once.
type Source interface {
	// More reports whether another byte is available.
	More() bool
	// Take returns the next byte. It must only be called after More
	// returned true.
	Take() byte
}

// StringSource reads the bytes of a string.
type StringSource struct {
	s string
	i int
}

// NewStringSource creates a Source over the bytes of s.
func NewStringSource(s string) *StringSource {
	return &StringSource{s: s}
}

func (s *StringSource) More() bool {
	return s.i < len(s.s)
}

func (s *StringSource) Take() byte {
	c := s.s[s.i]
	s.i++
	return c
}

// BytesSource reads a byte slice.
type BytesSource struct {
	d []byte
	i int
}

// NewBytesSource creates a Source over d.
func NewBytesSource(d []byte) *BytesSource {
	return &BytesSource{d: d}
}

func (s *BytesSource) More() bool {
	return s.i < len(s.d)
}

func (s *BytesSource) Take() byte {
	c := s.d[s.i]
	s.i++
	return c
}

const sourceBufferSize = 512

// ReaderSource adapts an io.Reader to Source, buffering reads.
// A read failure ends the source; check Err after consumption.
type ReaderSource struct {
	reader io.Reader
	buf    []byte
	pos    int
	n      int
	err    error
}

// NewReaderSource creates a buffered Source reading from r.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{
		reader: r,
		buf:    make([]byte, sourceBufferSize),
	}
}

func (s *ReaderSource) More() bool {
	if s.pos < s.n {
		return true
	}
	if s.err != nil {
		return false
	}
	s.pos, s.n = 0, 0
	for s.err == nil && s.n == 0 {
		s.n, s.err = s.reader.Read(s.buf)
	}
	return s.pos < s.n
}

func (s *ReaderSource) Take() byte {
	c := s.buf[s.pos]
	s.pos++
	return c
}

// Err returns the read error that ended the source, if any.
// io.EOF is the normal end and is not reported.
func (s *ReaderSource) Err() error {
	if s.err == io.EOF {
		return nil
	}
	return s.err
}
