package sealcore

// base64url is the standard URL-safe alphabet, no padding.
const b64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

var b64Reverse = func() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(b64Alphabet); i++ {
		table[b64Alphabet[i]] = int8(i)
	}
	return table
}()

// base64URLEncodedLen returns the encoded length of n raw bytes: ceil(4n/3).
func base64URLEncodedLen(n int) int {
	return (4*n + 2) / 3
}

// base64URLDecodedLen returns the decoded length of an m-character field:
// floor(3m/4). (A field is only ever "mentally padded" to reason about
// which trailing group it falls into — the byte count itself is computed
// directly from the unpadded length.)
func base64URLDecodedLen(m int) int {
	return (3 * m) / 4
}

// encodeBase64URL writes the base64url (no padding) encoding of src into
// dst, which must be exactly base64URLEncodedLen(len(src)) bytes long.
func encodeBase64URL(dst, src []byte) {
	di := 0
	n := len(src)
	for si := 0; si+3 <= n; si += 3 {
		v := uint32(src[si])<<16 | uint32(src[si+1])<<8 | uint32(src[si+2])
		dst[di] = b64Alphabet[(v>>18)&0x3f]
		dst[di+1] = b64Alphabet[(v>>12)&0x3f]
		dst[di+2] = b64Alphabet[(v>>6)&0x3f]
		dst[di+3] = b64Alphabet[v&0x3f]
		di += 4
	}
	rem := n % 3
	switch rem {
	case 1:
		v := uint32(src[n-1]) << 16
		dst[di] = b64Alphabet[(v>>18)&0x3f]
		dst[di+1] = b64Alphabet[(v>>12)&0x3f]
	case 2:
		v := uint32(src[n-2])<<16 | uint32(src[n-1])<<8
		dst[di] = b64Alphabet[(v>>18)&0x3f]
		dst[di+1] = b64Alphabet[(v>>12)&0x3f]
		dst[di+2] = b64Alphabet[(v>>6)&0x3f]
	}
}

// decodeBase64URL decodes a base64url (no padding) field into dst, which
// must be exactly base64URLDecodedLen(len(src)) bytes long.
//
// The source format this spec was distilled from tolerates out-of-alphabet
// bytes by treating them as value 0; this implementation intentionally
// strictens that (see SPEC_FULL.md §5 / DESIGN.md): any byte outside the
// base64url alphabet fails with Base64Error. A declared field length of
// exactly 1 character can never decode to a whole byte and is rejected the
// same way regardless of its content.
func decodeBase64URL(dst, src []byte) error {
	if len(src) == 1 {
		return newErr(Base64Error, "decodeBase64URL", "invalid base64url length 1")
	}
	wantLen := base64URLDecodedLen(len(src))
	if len(dst) != wantLen {
		return newErr(Base64Error, "decodeBase64URL", "base64url output buffer has wrong length")
	}

	di := 0
	si := 0
	n := len(src)
	for ; si+4 <= n; si += 4 {
		v, err := b64Quad(src[si], src[si+1], src[si+2], src[si+3])
		if err != nil {
			return err
		}
		dst[di] = byte(v >> 16)
		dst[di+1] = byte(v >> 8)
		dst[di+2] = byte(v)
		di += 3
	}

	remaining := n - si
	switch remaining {
	case 0:
		// exact multiple of 4, nothing left
	case 2:
		a, err := b64Val(src[si])
		if err != nil {
			return err
		}
		b, err := b64Val(src[si+1])
		if err != nil {
			return err
		}
		v := uint32(a)<<18 | uint32(b)<<12
		dst[di] = byte(v >> 16)
	case 3:
		a, err := b64Val(src[si])
		if err != nil {
			return err
		}
		b, err := b64Val(src[si+1])
		if err != nil {
			return err
		}
		c, err := b64Val(src[si+2])
		if err != nil {
			return err
		}
		v := uint32(a)<<18 | uint32(b)<<12 | uint32(c)<<6
		dst[di] = byte(v >> 16)
		dst[di+1] = byte(v >> 8)
	default:
		return newErr(Base64Error, "decodeBase64URL", "invalid base64url tail length %d", remaining)
	}
	return nil
}

func b64Val(c byte) (int8, error) {
	v := b64Reverse[c]
	if v < 0 {
		return 0, newErr(Base64Error, "decodeBase64URL", "invalid base64url byte %q", c)
	}
	return v, nil
}

func b64Quad(c0, c1, c2, c3 byte) (uint32, error) {
	a, err := b64Val(c0)
	if err != nil {
		return 0, err
	}
	b, err := b64Val(c1)
	if err != nil {
		return 0, err
	}
	c, err := b64Val(c2)
	if err != nil {
		return 0, err
	}
	d, err := b64Val(c3)
	if err != nil {
		return 0, err
	}
	return uint32(a)<<18 | uint32(b)<<12 | uint32(c)<<6 | uint32(d), nil
}
