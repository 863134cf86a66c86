// Package bech32 implements BIP173 Bech32 encoding for native SegWit
// witness programs. Bech32m (BIP350, witness version >= 1) is out of
// scope: this toolkit only produces witness version 0 (P2WPKH) addresses.
package bech32

import (
	"errors"
	"strings"
)

const charset = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"

var charsetMap = func() map[byte]int {
	m := make(map[byte]int, len(charset))
	for i, c := range []byte(charset) {
		m[c] = i
	}
	return m
}()

var (
	ErrInvalidChecksum   = errors.New("bech32: invalid checksum")
	ErrInvalidHRP        = errors.New("bech32: invalid human-readable part")
	ErrInvalidPadding    = errors.New("bech32: invalid padding")
	ErrInvalidWitnessVer = errors.New("bech32: witness version out of range")
	ErrInvalidSeparator  = errors.New("bech32: invalid separator position")
	ErrMixedCase         = errors.New("bech32: mixed case string")
	ErrInvalidChar       = errors.New("bech32: invalid character")
)

const checksumConst = 1

func polymod(values []int) int {
	generator := []int{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}
	chk := 1
	for _, v := range values {
		top := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ v
		for i := 0; i < 5; i++ {
			if (top>>uint(i))&1 == 1 {
				chk ^= generator[i]
			}
		}
	}
	return chk
}

func hrpExpand(hrp string) []int {
	result := make([]int, len(hrp)*2+1)
	for i, c := range hrp {
		result[i] = int(c) >> 5
		result[i+len(hrp)+1] = int(c) & 31
	}
	result[len(hrp)] = 0
	return result
}

func verifyChecksum(hrp string, data []int) bool {
	values := append(hrpExpand(hrp), data...)
	return polymod(values) == checksumConst
}

func createChecksum(hrp string, data []int) []int {
	values := append(hrpExpand(hrp), data...)
	values = append(values, 0, 0, 0, 0, 0, 0)
	mod := polymod(values) ^ checksumConst
	checksum := make([]int, 6)
	for i := 0; i < 6; i++ {
		checksum[i] = (mod >> uint(5*(5-i))) & 31
	}
	return checksum
}

// convertBits re-groups a sequence of integers between bit widths,
// used to move witness programs between 8-bit bytes and 5-bit symbols.
func convertBits(data []int, fromBits, toBits int, pad bool) ([]int, error) {
	acc := 0
	bits := 0
	maxv := (1 << toBits) - 1
	var result []int

	for _, value := range data {
		if value < 0 || value>>fromBits != 0 {
			return nil, ErrInvalidChar
		}
		acc = (acc << fromBits) | value
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			result = append(result, (acc>>bits)&maxv)
		}
	}

	if pad {
		if bits > 0 {
			result = append(result, (acc<<(toBits-bits))&maxv)
		}
	} else if bits >= fromBits || ((acc<<(toBits-bits))&maxv) != 0 {
		return nil, ErrInvalidPadding
	}

	return result, nil
}

// Encode encodes an arbitrary byte payload as a plain Bech32 string
// (no witness-version framing).
func Encode(hrp string, data []byte) (string, error) {
	intData := bytesToInts(data)
	converted, err := convertBits(intData, 8, 5, true)
	if err != nil {
		return "", err
	}
	return encode5Bit(hrp, converted)
}

// Decode decodes a plain Bech32 string, returning the HRP and payload bytes.
func Decode(s string) (hrp string, data []byte, err error) {
	hrp, values, err := decode5Bit(s)
	if err != nil {
		return "", nil, err
	}
	converted, err := convertBits(values, 5, 8, false)
	if err != nil {
		return "", nil, err
	}
	return hrp, intsToBytes(converted), nil
}

// SegWitEncode encodes a witness program as a native SegWit address:
// HRP + '1' + witness-version symbol + 5-bit program + 6-symbol checksum.
// Only witness version 0 is supported by this toolkit (spec.md's three
// address algorithms never produce higher versions).
func SegWitEncode(hrp string, witnessVersion int, witnessProgram []byte) (string, error) {
	if witnessVersion < 0 || witnessVersion > 16 {
		return "", ErrInvalidWitnessVer
	}

	converted, err := convertBits(bytesToInts(witnessProgram), 8, 5, true)
	if err != nil {
		return "", err
	}

	data := append([]int{witnessVersion}, converted...)
	return encode5Bit(hrp, data)
}

// SegWitDecode decodes a native SegWit address into its HRP, witness
// version, and witness program.
func SegWitDecode(s string) (hrp string, witnessVersion int, witnessProgram []byte, err error) {
	hrp, values, err := decode5Bit(s)
	if err != nil {
		return "", 0, nil, err
	}
	if len(values) < 1 {
		return "", 0, nil, ErrInvalidPadding
	}

	witnessVersion = values[0]
	program, err := convertBits(values[1:], 5, 8, false)
	if err != nil {
		return "", 0, nil, err
	}

	return hrp, witnessVersion, intsToBytes(program), nil
}

func encode5Bit(hrp string, data []int) (string, error) {
	if hrp == "" {
		return "", ErrInvalidHRP
	}
	checksum := createChecksum(hrp, data)

	var b strings.Builder
	b.WriteString(strings.ToLower(hrp))
	b.WriteByte('1')
	for _, d := range data {
		b.WriteByte(charset[d])
	}
	for _, c := range checksum {
		b.WriteByte(charset[c])
	}
	return b.String(), nil
}

func decode5Bit(s string) (hrp string, data []int, err error) {
	lower := strings.ToLower(s)
	upper := strings.ToUpper(s)
	if s != lower && s != upper {
		return "", nil, ErrMixedCase
	}
	s = lower

	pos := strings.LastIndex(s, "1")
	if pos < 1 || pos+7 > len(s) {
		return "", nil, ErrInvalidSeparator
	}

	hrp = s[:pos]
	dataStr := s[pos+1:]

	values := make([]int, len(dataStr))
	for i, c := range []byte(dataStr) {
		idx, ok := charsetMap[c]
		if !ok {
			return "", nil, ErrInvalidChar
		}
		values[i] = idx
	}

	if !verifyChecksum(hrp, values) {
		return "", nil, ErrInvalidChecksum
	}

	return hrp, values[:len(values)-6], nil
}

func bytesToInts(data []byte) []int {
	out := make([]int, len(data))
	for i, b := range data {
		out[i] = int(b)
	}
	return out
}

func intsToBytes(data []int) []byte {
	out := make([]byte, len(data))
	for i, v := range data {
		out[i] = byte(v)
	}
	return out
}
