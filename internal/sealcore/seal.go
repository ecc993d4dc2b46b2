package sealcore

// Seal encrypts payload and authenticates the result, producing a token in
// the Fe26.1 wire format (§4.5, §6.1). pwdID may be empty; password must
// not be. The Options in ctx select the algorithm, salt width, and
// iteration count for both the encryption and integrity keys.
//
// Go's slice-returning API replaces the source's caller-provided output
// buffer, but the assembly strategy is unchanged: the token is built
// left-to-right in one growing buffer, and the HMAC base is a byte-range
// snapshot of that same buffer rather than a second, parallel accumulator
// (§9 design note 1).
func Seal(ctx *Context, payload, pwdID, password []byte) ([]byte, error) {
	if len(password) == 0 {
		return nil, ctx.fail(newErr(PasswordRotationError, "Seal", "password must not be empty"))
	}

	encOpts := ctx.EncryptionOptions
	intOpts := ctx.IntegrityOptions

	size, err := SealBufferLen(len(payload), len(pwdID), encOpts, intOpts)
	if err != nil {
		return nil, ctx.fail(err)
	}
	out := make([]byte, 0, size)

	out = append(out, TokenPrefix...)
	out = append(out, Delim)

	if len(pwdID) > 0 {
		out = append(out, pwdID...)
	}
	out = append(out, Delim)

	encSalt, err := randomBytes(encOpts.SaltBytes())
	if err != nil {
		return nil, ctx.fail(err)
	}
	encSaltHex := make([]byte, bytesToHexLen(len(encSalt)))
	encodeHex(encSaltHex, encSalt)
	out = append(out, encSaltHex...)
	out = append(out, Delim)

	encKey, err := deriveKey(password, encSaltHex, encOpts.Iterations, encOpts.Algorithm.KeyBytes())
	if err != nil {
		return nil, ctx.fail(err)
	}

	iv, err := randomBytes(encOpts.Algorithm.IVBytes())
	if err != nil {
		return nil, ctx.fail(err)
	}
	ivB64 := make([]byte, base64URLEncodedLen(len(iv)))
	encodeBase64URL(ivB64, iv)
	out = append(out, ivB64...)
	out = append(out, Delim)

	ciphertext, err := encryptCBC(encOpts.Algorithm, encKey, iv, payload)
	if err != nil {
		return nil, ctx.fail(err)
	}
	ctB64 := make([]byte, base64URLEncodedLen(len(ciphertext)))
	encodeBase64URL(ctB64, ciphertext)
	out = append(out, ctB64...)

	// The HMAC base is exactly what has been written so far: prefix through
	// ciphertext, not including the delimiter that follows it (§4.5
	// invariant).
	hmacBase := append([]byte(nil), out...)
	out = append(out, Delim)

	intSalt, err := randomBytes(intOpts.SaltBytes())
	if err != nil {
		return nil, ctx.fail(err)
	}
	intSaltHex := make([]byte, bytesToHexLen(len(intSalt)))
	encodeHex(intSaltHex, intSalt)
	out = append(out, intSaltHex...)
	out = append(out, Delim)

	intKey, err := deriveKey(password, intSaltHex, intOpts.Iterations, intOpts.Algorithm.KeyBytes())
	if err != nil {
		return nil, ctx.fail(err)
	}

	tag := hmacSHA256(intKey, hmacBase)
	tagB64 := make([]byte, base64URLEncodedLen(len(tag)))
	encodeBase64URL(tagB64, tag)
	out = append(out, tagB64...)

	return out, nil
}
