package secp256k1

import (
	"errors"
	"math/big"
)

const (
	// CompressedPubKeyLen is the length of a compressed public key.
	CompressedPubKeyLen = 33

	// UncompressedPubKeyLen is the length of an uncompressed public key.
	UncompressedPubKeyLen = 65

	// PrefixEven is the SEC1 prefix for compressed public keys with even Y.
	PrefixEven byte = 0x02

	// PrefixOdd is the SEC1 prefix for compressed public keys with odd Y.
	PrefixOdd byte = 0x03

	// PrefixUncompressed is the SEC1 prefix for uncompressed public keys.
	PrefixUncompressed byte = 0x04
)

var ErrInvalidPublicKey = errors.New("secp256k1: invalid public key")

// CompressPoint compresses an elliptic curve point to 33 bytes (SEC1).
func CompressPoint(p *Point) []byte {
	result := make([]byte, CompressedPubKeyLen)

	if p.Y.Bit(0) == 0 {
		result[0] = PrefixEven
	} else {
		result[0] = PrefixOdd
	}

	xBytes := p.X.Bytes()
	copy(result[CompressedPubKeyLen-len(xBytes):], xBytes)

	return result
}

// DecompressPoint decompresses a 33-byte compressed public key to a Point,
// recovering y via modSqrt(x^3+7 mod p, p) and selecting the parity that
// matches the prefix byte.
func DecompressPoint(compressed []byte) (*Point, error) {
	if len(compressed) != CompressedPubKeyLen {
		return nil, ErrInvalidPublicKey
	}

	prefix := compressed[0]
	if prefix != PrefixEven && prefix != PrefixOdd {
		return nil, ErrInvalidPublicKey
	}

	x := new(big.Int).SetBytes(compressed[1:])
	if x.Cmp(P) >= 0 {
		return nil, ErrInvalidPublicKey
	}

	// y^2 = x^3 + 7 (secp256k1: a=0, b=7)
	x3 := new(big.Int).Exp(x, big.NewInt(3), P)
	y2 := new(big.Int).Add(x3, B)
	y2.Mod(y2, P)

	y := modSqrt(y2, P)
	if y == nil {
		return nil, ErrInvalidPublicKey
	}

	yIsOdd := y.Bit(0) == 1
	prefixIndicatesOdd := prefix == PrefixOdd

	if yIsOdd != prefixIndicatesOdd {
		y.Sub(P, y)
	}

	return &Point{X: x, Y: y}, nil
}

// ParsePublicKey parses a public key from bytes (compressed or uncompressed SEC1).
func ParsePublicKey(data []byte) (*Point, error) {
	switch len(data) {
	case CompressedPubKeyLen:
		return DecompressPoint(data)

	case UncompressedPubKeyLen:
		if data[0] != PrefixUncompressed {
			return nil, ErrInvalidPublicKey
		}
		x := new(big.Int).SetBytes(data[1:33])
		y := new(big.Int).SetBytes(data[33:65])
		return &Point{X: x, Y: y}, nil

	default:
		return nil, ErrInvalidPublicKey
	}
}

// SerializeUncompressed serializes a point to 65-byte uncompressed SEC1 format.
func SerializeUncompressed(p *Point) []byte {
	result := make([]byte, UncompressedPubKeyLen)
	result[0] = PrefixUncompressed

	xBytes := p.X.Bytes()
	yBytes := p.Y.Bytes()

	copy(result[33-len(xBytes):33], xBytes)
	copy(result[65-len(yBytes):65], yBytes)

	return result
}

// PrivateKeyToPublicKey derives the public key point from a private key.
func PrivateKeyToPublicKey(privateKey []byte) *Point {
	return ScalarBaseMult(privateKey)
}

// PrivateKeyToCompressedPublicKey derives the compressed public key from a private key.
func PrivateKeyToCompressedPublicKey(privateKey []byte) []byte {
	point := ScalarBaseMult(privateKey)
	return CompressPoint(point)
}
