package sealcore

// MACFormatVersion is the version suffix of the wire prefix "Fe26." + version.
const MACFormatVersion = "1"

// TokenPrefix is the literal first field of every sealed token.
const TokenPrefix = "Fe26." + MACFormatVersion

// Delim is the single-byte field separator used throughout the wire format.
const Delim = '*'

const (
	// blockSize is the AES block size in bytes; PKCS#7 padding always pads
	// up to a multiple of this.
	blockSize = 16

	// macBytes is the output size, in bytes, of HMAC-SHA256.
	macBytes = 32

	// MaxSaltBits is the largest salt width this package will accept.
	MaxSaltBits = 256
	// MaxIVBits is the largest IV width this package will accept.
	MaxIVBits = 256
	// MaxKeyBits is the largest derived-key width this package will accept.
	MaxKeyBits = 256
	// MaxKeyBytes is MaxKeyBits in bytes.
	MaxKeyBytes = MaxKeyBits / 8

	// MaxIVB64URLChars bounds the base64url-encoded IV field: ceil(4*32/3).
	MaxIVB64URLChars = 43
	// MaxMACB64URLChars bounds the base64url-encoded MAC field. It is
	// numerically identical to MaxIVB64URLChars (both cap a 32-byte value)
	// but is a distinct name per the source's misleading reuse of one
	// constant for two different fields (see design notes).
	MaxMACB64URLChars = 43

	// maxUint32 mirrors the C source's UINT_MAX overflow guard.
	maxUint32 = 1<<32 - 1
)
