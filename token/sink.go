package token

import (
	"io"

	"github.com/jsonwire/jsonwire-go/debug"
)

// Sink is the byte destination for encoded output. All operations are
// synchronous: they either write fully or report the failure of the
// underlying destination.
type Sink interface {
	// Put writes a single byte.
	Put(c byte) error
	// PutN writes c repeated n times.
	PutN(c byte, n int) error
	// Write writes d, implementing io.Writer.
	Write(d []byte) (int, error)
	// Flush pushes buffered data to the destination, when the
	// destination buffers.
	Flush() error
	// Outpos returns the absolute byte offset in the output stream.
	Outpos() int64
}

// WriterSink adapts an io.Writer to Sink, tracking absolute byte
// offsets in the output stream.
type WriterSink struct {
	writer io.Writer
	offset int64
}

var _ Sink = (*WriterSink)(nil)

// NewWriterSink creates a WriterSink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{writer: w}
}

// Write writes d to the underlying io.Writer and updates the offset.
func (s *WriterSink) Write(d []byte) (int, error) {
	n, err := s.writer.Write(d)
	s.offset += int64(n)
	if debug.Tokens() {
		debug.Logf("sink: wrote %d bytes at offset %d", n, s.offset-int64(n))
	}
	return n, err
}

// Put writes a single byte.
func (s *WriterSink) Put(c byte) error {
	buf := [1]byte{c}
	_, err := s.Write(buf[:])
	return err
}

// PutN writes c repeated n times.
func (s *WriterSink) PutN(c byte, n int) error {
	var chunk [16]byte
	for i := range chunk {
		chunk[i] = c
	}
	for n > 0 {
		m := min(n, len(chunk))
		if _, err := s.Write(chunk[:m]); err != nil {
			return err
		}
		n -= m
	}
	return nil
}

// Flush flushes the underlying writer when it supports flushing
// (e.g. a *bufio.Writer), and is a no-op otherwise.
func (s *WriterSink) Flush() error {
	if f, ok := s.writer.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Outpos returns the absolute byte offset in the output stream.
func (s *WriterSink) Outpos() int64 {
	return s.offset
}
