// Package mnemonic wraps the toolkit's single external collaborator: BIP39
// mnemonic-to-seed expansion. Wordlist validation and mnemonic generation
// are delegated entirely to the collaborator library; this package exposes
// the seed-derivation contract the rest of the toolkit consumes, plus thin
// Generate and IsValid wrappers over the library.
package mnemonic

import "github.com/tyler-smith/go-bip39"

// ToSeed expands a mnemonic phrase and optional passphrase into a 64-byte
// seed via PBKDF2-HMAC-SHA512 (2048 iterations, salt "mnemonic" ||
// passphrase), per BIP39. The phrase's wordlist membership is not checked
// here; callers that need that guarantee should validate with
// bip39.IsMnemonicValid before calling ToSeed.
func ToSeed(phrase, passphrase string) []byte {
	return bip39.NewSeed(phrase, passphrase)
}

// Generate produces a new random mnemonic phrase with the requested entropy
// strength in bits (128, 160, 192, 224, or 256).
func Generate(bits int) (string, error) {
	entropy, err := bip39.NewEntropy(bits)
	if err != nil {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// IsValid reports whether phrase is a well-formed BIP39 mnemonic (correct
// wordlist membership and checksum).
func IsValid(phrase string) bool {
	return bip39.IsMnemonicValid(phrase)
}
