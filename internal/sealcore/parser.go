package sealcore

// field is a (offset, length) view into the token buffer being parsed; it
// never copies (§4.4: "returned as (offset, length) into the input
// buffer").
type field struct {
	start int
	len   int
}

func (f field) bytes(buf []byte) []byte { return buf[f.start : f.start+f.len] }

// cursor walks a token buffer left to right, producing fields.
type cursor struct {
	buf []byte
	pos int
}

func newCursor(buf []byte) *cursor { return &cursor{buf: buf} }

func (c *cursor) remaining() int { return len(c.buf) - c.pos }

// advance skips the field itself plus the delimiter that follows it.
func (c *cursor) advance(f field) { c.pos = f.start + f.len + 1 }

// parseDelim consumes bytes until the next '*', failing with
// TokenParseError if the end of input is reached first (§4.4).
func (c *cursor) parseDelim() (field, error) {
	start := c.pos
	for i := c.pos; i < len(c.buf); i++ {
		if c.buf[i] == Delim {
			return field{start: start, len: i - start}, nil
		}
	}
	return field{}, newErr(TokenParseError, "parseDelim", "unterminated field starting at offset %d", start)
}

// parseFixed requires exactly expectedLen bytes before the next '*' (§4.4).
func (c *cursor) parseFixed(expectedLen int) (field, error) {
	start := c.pos
	if c.remaining() < expectedLen {
		return field{}, newErr(TokenParseError, "parseFixed", "expected %d bytes at offset %d, only %d remain", expectedLen, start, c.remaining())
	}
	if c.remaining() == expectedLen {
		return field{}, newErr(TokenParseError, "parseFixed", "missing delimiter after fixed field at offset %d", start)
	}
	for i := start; i < start+expectedLen; i++ {
		if c.buf[i] == Delim {
			return field{}, newErr(TokenParseError, "parseFixed", "unexpected delimiter at offset %d inside fixed field", i)
		}
	}
	if c.buf[start+expectedLen] != Delim {
		return field{}, newErr(TokenParseError, "parseFixed", "delimiter not found at expected offset %d", start+expectedLen)
	}
	return field{start: start, len: expectedLen}, nil
}

// parseMax behaves like parseDelim but fails if maxLen+1 bytes are scanned
// without finding a delimiter, or if maxLen exceeds what remains (§4.4).
func (c *cursor) parseMax(maxLen int) (field, error) {
	start := c.pos
	if maxLen > c.remaining() {
		return field{}, newErr(TokenParseError, "parseMax", "field at offset %d shorter than max length %d", start, maxLen)
	}
	limit := start + maxLen + 1
	if limit > len(c.buf) {
		limit = len(c.buf)
	}
	for i := start; i < limit; i++ {
		if c.buf[i] == Delim {
			return field{start: start, len: i - start}, nil
		}
	}
	return field{}, newErr(TokenParseError, "parseMax", "no delimiter found within %d bytes of offset %d", maxLen+1, start)
}
