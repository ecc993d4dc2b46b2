package sealcore

import "fmt"

// Kind discriminates the taxonomy of failures the core can surface.
type Kind int

const (
	// OK is the zero value; it is never attached to a returned error.
	OK Kind = iota
	TokenParseError
	TokenValidationError
	PasswordRotationError
	UnknownAlgorithm
	CryptoError
	Base64Error
	OverflowError
)

func (k Kind) String() string {
	switch k {
	case OK:
		return "OK"
	case TokenParseError:
		return "TOKEN_PARSE_ERROR"
	case TokenValidationError:
		return "TOKEN_VALIDATION_ERROR"
	case PasswordRotationError:
		return "PASSWORD_ROTATION_ERROR"
	case UnknownAlgorithm:
		return "UNKNOWN_ALGORITHM"
	case CryptoError:
		return "CRYPTO_ERROR"
	case Base64Error:
		return "BASE64_ERROR"
	case OverflowError:
		return "OVERFLOW_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

// Error is the carrier every fallible core operation returns on failure: a
// typed kind, a human-readable message with call-site, and an optional
// opaque numeric code from the underlying crypto provider.
type Error struct {
	Kind         Kind
	Message      string
	Where        string
	ProviderCode int // 0 when not applicable
}

func (e *Error) Error() string {
	if e.ProviderCode != 0 {
		return fmt.Sprintf("%s: %s (at %s, provider code %d)", e.Kind, e.Message, e.Where, e.ProviderCode)
	}
	return fmt.Sprintf("%s: %s (at %s)", e.Kind, e.Message, e.Where)
}

func newErr(kind Kind, where, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Where: where}
}

func newCryptoErr(where string, providerCode int, format string, args ...any) *Error {
	return &Error{Kind: CryptoError, Message: fmt.Sprintf(format, args...), Where: where, ProviderCode: providerCode}
}

// setLastError records err on ctx and returns it, mirroring the source's
// pattern of mutating the caller-owned Context on every failure path.
func (ctx *Context) setLastError(err *Error) *Error {
	ctx.LastErrorKind = err.Kind
	ctx.LastErrorMessage = err.Message
	ctx.LastProviderErrorCode = err.ProviderCode
	return err
}

// fail records err on ctx (when it's one of ours) and returns it verbatim
// as an error, so call sites can write `return nil, ctx.fail(err)` without
// an extra type assertion at every call site.
func (ctx *Context) fail(err error) error {
	if e, ok := err.(*Error); ok {
		ctx.setLastError(e)
	}
	return err
}
