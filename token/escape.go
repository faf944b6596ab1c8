package token

var (
	trueBytes  = []byte("true")
	falseBytes = []byte("false")
	nullBytes  = []byte("null")
)

// WriteBool writes the true or false literal to s.
func WriteBool(s Sink, v bool) error {
	d := falseBytes
	if v {
		d = trueBytes
	}
	_, err := s.Write(d)
	return err
}

// WriteNull writes the null literal to s.
func WriteNull(s Sink) error {
	_, err := s.Write(nullBytes)
	return err
}

const hexDigits = "0123456789abcdef"

// WriteEscaped writes the JSON-escaped form of src to s in one pass,
// consuming src. When quoted, the output is delimited by double
// quotes. Bytes with a two-character escape use it, remaining control
// bytes become \u00XX, and everything else passes through unchanged.
func WriteEscaped(s Sink, src Source, quoted bool) error {
	if quoted {
		if err := s.Put('"'); err != nil {
			return err
		}
	}
	for src.More() {
		var esc byte
		switch c := src.Take(); c {
		case '\b':
			esc = 'b'
		case '\f':
			esc = 'f'
		case '\n':
			esc = 'n'
		case '\r':
			esc = 'r'
		case '\t':
			esc = 't'
		case '"':
			esc = '"'
		case '\\':
			esc = '\\'
		default:
			if c < 0x20 {
				u := [6]byte{'\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf]}
				if _, err := s.Write(u[:]); err != nil {
					return err
				}
				continue
			}
			if err := s.Put(c); err != nil {
				return err
			}
			continue
		}
		e := [2]byte{'\\', esc}
		if _, err := s.Write(e[:]); err != nil {
			return err
		}
	}
	if quoted {
		if err := s.Put('"'); err != nil {
			return err
		}
	}
	return nil
}

// WriteQuoted writes v as a quoted, escaped JSON string.
func WriteQuoted(s Sink, v string) error {
	return WriteEscaped(s, NewStringSource(v), true)
}
