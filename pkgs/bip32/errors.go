package bip32

import "errors"

var (
	// ErrInvalidSeed indicates HMAC-SHA512(seed)'s left half is zero or >= n.
	ErrInvalidSeed = errors.New("bip32: invalid master key material derived from seed")

	// ErrOutOfRange indicates a seed length or derivation depth outside its valid bounds.
	ErrOutOfRange = errors.New("bip32: value out of range")

	// ErrHardenedFromPublic indicates an attempt to derive a hardened child from an XPub.
	ErrHardenedFromPublic = errors.New("bip32: cannot derive hardened child from a public extended key")

	// ErrInvalidDerivation indicates a derivation step produced the point at infinity
	// or another non-retryable invalid result.
	ErrInvalidDerivation = errors.New("bip32: key derivation failed")

	// ErrInvalidPath indicates a malformed derivation path string.
	ErrInvalidPath = errors.New("bip32: invalid derivation path")

	// ErrInvalidEncoding indicates a malformed 78-byte extended-key record.
	ErrInvalidEncoding = errors.New("bip32: invalid serialized extended key")
)
