// Package sealcore implements the Fe26.1 password-authenticated sealing
// engine: key derivation from passwords with random per-token salts, AES-CBC
// encryption, HMAC-SHA256 integrity, and the strict delimited token format
// that interleaves them.
//
// The package is purely synchronous. A Context is not safe for concurrent
// use by multiple goroutines; give each concurrent Seal/Unseal call its own
// Context.
package sealcore
