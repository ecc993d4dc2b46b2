// Primitives is the thin adapter over the underlying crypto library
// (golang.org/x/crypto/pbkdf2 plus the standard library's aes/cipher/hmac).
// This is the only file in the package that knows the identity of the
// underlying crypto provider, matching the source's crypto.h/crypto_openssl.c
// split (§2 item 2).
package sealcore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/subtle"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// randomBytes fills out with n CSPRNG bytes.
func randomBytes(n int) ([]byte, error) {
	out := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, out); err != nil {
		return nil, newCryptoErr("randomBytes", 0, "CSPRNG read failed: %v", err)
	}
	return out, nil
}

// deriveKey runs PBKDF2 with HMAC-SHA1 as PRF (§9 note 3: this is
// deliberate and preserved even when the integrity algorithm is
// HMAC-SHA256 — it is part of the wire contract, not a bug). salt is
// whatever byte string the caller passes; for this format it is always the
// ASCII hex characters of the random salt, not the raw salt bytes — see
// seal.go/unseal.go where the salt argument is constructed.
func deriveKey(password, salt []byte, iterations, keyLen int) ([]byte, error) {
	if keyLen > MaxKeyBytes {
		return nil, newErr(CryptoError, "deriveKey", "requested key length %d exceeds maximum %d", keyLen, MaxKeyBytes)
	}
	return pbkdf2.Key(password, salt, iterations, keyLen, sha1.New), nil
}

func pkcs7Pad(data []byte) []byte {
	padLen := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+padLen)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(padLen)
	}
	return padded
}

func pkcs7Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, newErr(CryptoError, "pkcs7Unpad", "ciphertext is not a multiple of the block size")
	}
	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, newErr(CryptoError, "pkcs7Unpad", "invalid PKCS#7 padding length")
	}
	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, newErr(CryptoError, "pkcs7Unpad", "invalid PKCS#7 padding bytes")
		}
	}
	return data[:len(data)-padLen], nil
}

// encryptCBC pads plaintext with PKCS#7 and encrypts it with AES-CBC using
// key and iv sized per algo.
func encryptCBC(algo Algorithm, key, iv, plaintext []byte) ([]byte, error) {
	if len(key) != algo.KeyBytes() {
		return nil, newErr(CryptoError, "encryptCBC", "key length %d does not match %s", len(key), algo.Name)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, newCryptoErr("encryptCBC", 0, "aes.NewCipher: %v", err)
	}
	if len(iv) != block.BlockSize() {
		return nil, newErr(CryptoError, "encryptCBC", "IV length %d does not match block size %d", len(iv), block.BlockSize())
	}
	padded := pkcs7Pad(plaintext)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)
	return ciphertext, nil
}

// decryptCBC is the inverse of encryptCBC; it fails with CryptoError on a
// padding or format failure, never on a MAC failure (MAC verification
// happens strictly before decryptCBC is ever called — see unseal.go).
func decryptCBC(algo Algorithm, key, iv, ciphertext []byte) ([]byte, error) {
	if len(key) != algo.KeyBytes() {
		return nil, newErr(CryptoError, "decryptCBC", "key length %d does not match %s", len(key), algo.Name)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, newCryptoErr("decryptCBC", 0, "aes.NewCipher: %v", err)
	}
	if len(iv) != block.BlockSize() {
		return nil, newErr(CryptoError, "decryptCBC", "IV length %d does not match block size %d", len(iv), block.BlockSize())
	}
	if len(ciphertext) == 0 || len(ciphertext)%block.BlockSize() != 0 {
		return nil, newErr(CryptoError, "decryptCBC", "ciphertext length %d is not a multiple of the block size", len(ciphertext))
	}
	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)
	return pkcs7Unpad(padded)
}

// hmacSHA256 computes the keyed HMAC-SHA256 tag over data.
func hmacSHA256(key, data []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return mac.Sum(nil)
}

// fixedTimeEqual is a constant-time byte-wise comparison: it examines every
// byte of both slices before returning and never short-circuits on the
// first mismatch. Lengths must already match — callers compare lengths
// first and treat a mismatch as TokenValidationError without calling this
// (§7: "must not distinguish... beyond the coarse error kind").
func fixedTimeEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
