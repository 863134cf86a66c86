// Package base58check implements Bitcoin's Base58 alphabet and the
// Base58Check payload-plus-checksum wire format.
package base58check

import (
	"errors"
	"math/big"

	"github.com/coldrail/btchdkit/pkgs/crypto/hash"
)

// Base58 alphabet used by Bitcoin (excludes 0, O, I, l to avoid visual confusion).
const alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var (
	ErrInvalidBase58     = errors.New("base58check: invalid base58 string")
	ErrChecksumMismatch  = errors.New("base58check: checksum mismatch")
	ErrInvalidDataLength = errors.New("base58check: invalid data length")
)

var alphabetMap = func() map[byte]int64 {
	m := make(map[byte]int64, len(alphabet))
	for i, c := range alphabet {
		m[byte(c)] = int64(i)
	}
	return m
}()

// Encode encodes bytes to a plain Base58 string (no checksum).
func Encode(input []byte) string {
	if len(input) == 0 {
		return ""
	}

	leadingZeros := countLeadingZeros(input)

	num := new(big.Int).SetBytes(input)
	base := big.NewInt(58)
	zero := big.NewInt(0)
	mod := new(big.Int)

	var result []byte
	for num.Cmp(zero) > 0 {
		num.DivMod(num, base, mod)
		result = append(result, alphabet[mod.Int64()])
	}

	for i := 0; i < leadingZeros; i++ {
		result = append(result, '1')
	}

	reverseBytes(result)

	return string(result)
}

// Decode decodes a plain Base58 string to bytes (no checksum verification).
func Decode(input string) ([]byte, error) {
	if len(input) == 0 {
		return nil, nil
	}

	leadingOnes := 0
	for _, c := range input {
		if c != '1' {
			break
		}
		leadingOnes++
	}

	num := big.NewInt(0)
	base := big.NewInt(58)

	for _, c := range input {
		val, ok := alphabetMap[byte(c)]
		if !ok {
			return nil, ErrInvalidBase58
		}
		num.Mul(num, base)
		num.Add(num, big.NewInt(val))
	}

	decoded := num.Bytes()

	result := make([]byte, leadingOnes+len(decoded))
	copy(result[leadingOnes:], decoded)

	return result, nil
}

// CheckEncode encodes a payload with a 4-byte double-SHA-256 checksum appended.
func CheckEncode(payload []byte) string {
	checksum := hash.Checksum(payload)
	return Encode(append(append([]byte{}, payload...), checksum...))
}

// CheckDecode decodes a Base58Check string and verifies the trailing checksum
// exactly (no truncated-prefix leniency). Returns the payload without the
// checksum.
func CheckDecode(input string) ([]byte, error) {
	decoded, err := Decode(input)
	if err != nil {
		return nil, err
	}

	if len(decoded) < 4 {
		return nil, ErrInvalidDataLength
	}

	payload := decoded[:len(decoded)-4]
	checksum := decoded[len(decoded)-4:]
	expected := hash.Checksum(payload)

	if !equalBytes(checksum, expected) {
		return nil, ErrChecksumMismatch
	}

	return payload, nil
}

func countLeadingZeros(data []byte) int {
	count := 0
	for _, b := range data {
		if b != 0 {
			break
		}
		count++
	}
	return count
}

func reverseBytes(data []byte) {
	for i, j := 0, len(data)-1; i < j; i, j = i+1, j-1 {
		data[i], data[j] = data[j], data[i]
	}
}

func equalBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
