package bip32

import (
	"strconv"
	"strings"
)

// PathStep is a single derivation step: a plain index plus a flag for
// whether it should be derived hardened.
type PathStep struct {
	Index    uint32
	Hardened bool
}

// DerivationPath is a sequence of derivation steps read left to right from
// the key the path is applied to.
type DerivationPath []PathStep

// Predefined BIP44/49/84 external-chain Bitcoin paths (mainnet, account 0,
// external chain). Callers append the final address index themselves.
var (
	BIP44Bitcoin = MustParsePath("m/44'/0'/0'/0")
	BIP49Bitcoin = MustParsePath("m/49'/0'/0'/0")
	BIP84Bitcoin = MustParsePath("m/84'/0'/0'/0")
)

// ParsePath parses a derivation path string such as "m/44'/0'/0'/0/0" or
// "M/0/1". The root component ("m" or "M") is accepted but carries no
// semantic weight here: whether the path can be walked from a given key
// is decided by DeriveFromPath, not by the path string itself. Hardened
// steps may be marked with a trailing ', h, or H.
func ParsePath(path string) (DerivationPath, error) {
	parts := strings.Split(path, "/")
	if len(parts) == 0 {
		return nil, ErrInvalidPath
	}

	start := 0
	if parts[0] == "m" || parts[0] == "M" {
		start = 1
	}

	steps := make(DerivationPath, 0, len(parts)-start)
	for _, part := range parts[start:] {
		if part == "" {
			return nil, ErrInvalidPath
		}

		hardened := false
		last := part[len(part)-1]
		if last == '\'' || last == 'h' || last == 'H' {
			hardened = true
			part = part[:len(part)-1]
		}

		n, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, ErrInvalidPath
		}
		if n >= uint64(HardenedKeyStart) {
			return nil, ErrInvalidPath
		}

		steps = append(steps, PathStep{Index: uint32(n), Hardened: hardened})
	}

	return steps, nil
}

// MustParsePath parses path, panicking on error. Intended for the package's
// own predefined path constants, not for untrusted input.
func MustParsePath(path string) DerivationPath {
	p, err := ParsePath(path)
	if err != nil {
		panic(err)
	}
	return p
}

// DeriveFromPath walks k through every step of path in order, returning
// the key at the end of the chain.
func (k *ExtendedKey) DeriveFromPath(path DerivationPath) (*ExtendedKey, error) {
	current := k
	for _, step := range path {
		index := step.Index
		if step.Hardened {
			index = Hardened(index)
		}

		next, err := current.Child(index)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}

// DeriveFromPathString parses path and walks k through it in one call.
func (k *ExtendedKey) DeriveFromPathString(path string) (*ExtendedKey, error) {
	parsed, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return k.DeriveFromPath(parsed)
}
