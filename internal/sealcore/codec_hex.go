package sealcore

const hexAlphabet = "0123456789abcdef"

// bytesToHexLen returns the encoded length of n raw bytes: 2*n.
func bytesToHexLen(n int) int { return 2 * n }

// encodeHex writes the lowercase hex encoding of src into dst, which must be
// exactly bytesToHexLen(len(src)) bytes long. No terminator is appended.
func encodeHex(dst, src []byte) {
	for i, b := range src {
		dst[2*i] = hexAlphabet[b>>4]
		dst[2*i+1] = hexAlphabet[b&0x0f]
	}
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// decodeHex decodes a lowercase-or-uppercase hex field into dst, which must
// be exactly len(src)/2 bytes long. Fails with Base64Error's sibling here —
// strict hex decoding is not an Open Question in spec.md, unlike base64url,
// so any out-of-alphabet nibble or odd-length input is rejected outright.
func decodeHex(dst, src []byte) error {
	if len(src)%2 != 0 {
		return newErr(TokenParseError, "decodeHex", "odd-length hex field (%d bytes)", len(src))
	}
	if len(dst) != len(src)/2 {
		return newErr(TokenParseError, "decodeHex", "hex output buffer has wrong length")
	}
	for i := range dst {
		hi, ok := hexNibble(src[2*i])
		if !ok {
			return newErr(TokenParseError, "decodeHex", "invalid hex digit %q", src[2*i])
		}
		lo, ok := hexNibble(src[2*i+1])
		if !ok {
			return newErr(TokenParseError, "decodeHex", "invalid hex digit %q", src[2*i+1])
		}
		dst[i] = hi<<4 | lo
	}
	return nil
}
