package sealcore

// Unseal parses, authenticates, and decrypts a Fe26.1 token (§4.6). table
// may be nil/empty; fallback is used when the token's embedded password id
// has no match (or is empty). The state machine runs linearly through
// S0..S6 (prefix, id, enc salt, IV, ciphertext, integrity salt, MAC); any
// parse failure is terminal and reported as TokenParseError, and a failed
// verification is terminal and reported as TokenValidationError — plaintext
// is never produced on either path (§7).
func Unseal(ctx *Context, token []byte, table PasswordTable, fallback []byte) ([]byte, error) {
	encOpts := ctx.EncryptionOptions
	intOpts := ctx.IntegrityOptions

	c := newCursor(token)

	prefixField, err := c.parseFixed(len(TokenPrefix))
	if err != nil {
		return nil, ctx.fail(err)
	}
	if string(prefixField.bytes(token)) != TokenPrefix {
		return nil, ctx.fail(newErr(TokenParseError, "Unseal", "unrecognized token prefix %q", prefixField.bytes(token)))
	}
	c.advance(prefixField)

	idField, err := c.parseDelim()
	if err != nil {
		return nil, ctx.fail(err)
	}
	pwdID := idField.bytes(token)
	c.advance(idField)

	password, rerr := resolvePassword(table, pwdID, fallback)
	if rerr != nil {
		return nil, ctx.fail(rerr)
	}

	encSaltField, err := c.parseFixed(bytesToHexLen(encOpts.SaltBytes()))
	if err != nil {
		return nil, ctx.fail(err)
	}
	c.advance(encSaltField)

	ivField, err := c.parseMax(MaxIVB64URLChars)
	if err != nil {
		return nil, ctx.fail(err)
	}
	c.advance(ivField)

	hmacBaseStart := prefixField.start

	ctField, err := c.parseDelim()
	if err != nil {
		return nil, ctx.fail(err)
	}
	// Everything scanned so far, minus the delimiter that just terminated
	// the ciphertext field, is the HMAC base (§4.6 step 8).
	hmacBaseEnd := ctField.start + ctField.len
	c.advance(ctField)

	intSaltField, err := c.parseFixed(bytesToHexLen(intOpts.SaltBytes()))
	if err != nil {
		return nil, ctx.fail(err)
	}
	c.advance(intSaltField)

	macField := field{start: c.pos, len: c.remaining()}
	if macField.len > MaxMACB64URLChars {
		return nil, ctx.fail(newErr(TokenParseError, "Unseal", "MAC field length %d exceeds maximum %d", macField.len, MaxMACB64URLChars))
	}

	hmacBase := token[hmacBaseStart:hmacBaseEnd]

	intSaltHex := intSaltField.bytes(token)
	intKey, err := deriveKey(password, intSaltHex, intOpts.Iterations, intOpts.Algorithm.KeyBytes())
	if err != nil {
		return nil, ctx.fail(err)
	}
	expectedTag := hmacSHA256(intKey, hmacBase)

	incomingTagB64 := macField.bytes(token)
	wantLen := base64URLDecodedLen(len(incomingTagB64))
	if wantLen != len(expectedTag) {
		return nil, ctx.fail(newErr(TokenValidationError, "Unseal", "MAC length mismatch"))
	}
	incomingTag := make([]byte, wantLen)
	if err := decodeBase64URL(incomingTag, incomingTagB64); err != nil {
		return nil, ctx.fail(newErr(TokenValidationError, "Unseal", "MAC is not valid base64url"))
	}

	if !fixedTimeEqual(incomingTag, expectedTag) {
		return nil, ctx.fail(newErr(TokenValidationError, "Unseal", "MAC verification failed"))
	}

	encSaltHex := encSaltField.bytes(token)
	encKey, err := deriveKey(password, encSaltHex, encOpts.Iterations, encOpts.Algorithm.KeyBytes())
	if err != nil {
		return nil, ctx.fail(err)
	}

	ivB64 := ivField.bytes(token)
	iv := make([]byte, base64URLDecodedLen(len(ivB64)))
	if err := decodeBase64URL(iv, ivB64); err != nil {
		return nil, ctx.fail(newErr(Base64Error, "Unseal", "IV is not valid base64url"))
	}

	ctB64 := ctField.bytes(token)
	ciphertext := make([]byte, base64URLDecodedLen(len(ctB64)))
	if err := decodeBase64URL(ciphertext, ctB64); err != nil {
		return nil, ctx.fail(newErr(Base64Error, "Unseal", "ciphertext is not valid base64url"))
	}

	plaintext, err := decryptCBC(encOpts.Algorithm, encKey, iv, ciphertext)
	if err != nil {
		return nil, ctx.fail(err)
	}
	return plaintext, nil
}
