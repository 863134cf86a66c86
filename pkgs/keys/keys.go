// Package keys implements PrivateKey and PublicKey: secp256k1 scalars and
// points with WIF import/export and SEC1 (de)serialization, tagged with a
// network for encoding purposes only.
package keys

import (
	"crypto/rand"
	"errors"
	"math/big"

	"github.com/coldrail/btchdkit/pkgs/crypto/base58check"
	"github.com/coldrail/btchdkit/pkgs/crypto/hash"
	"github.com/coldrail/btchdkit/pkgs/crypto/secp256k1"
	"github.com/coldrail/btchdkit/pkgs/networks"
)

var (
	ErrInvalidPrivateKey = errors.New("keys: private key out of range [1, n-1]")
	ErrInvalidEncoding   = errors.New("keys: malformed public key encoding")
	ErrChecksumMismatch  = errors.New("keys: WIF checksum mismatch")
	ErrWrongNetwork      = errors.New("keys: WIF prefix does not match requested network")
)

// PrivateKey is a 32-byte secp256k1 scalar d in [1, n-1], tagged with a
// network that affects only WIF serialization.
type PrivateKey struct {
	d       *big.Int
	network *networks.Network
}

// NewPrivateKey constructs a PrivateKey from a 32-byte big-endian scalar.
func NewPrivateKey(d []byte, network *networks.Network) (*PrivateKey, error) {
	if !secp256k1.IsValidPrivateKey(d) {
		return nil, ErrInvalidPrivateKey
	}
	return &PrivateKey{d: new(big.Int).SetBytes(d), network: network}, nil
}

// NewPrivateKeyFromInt constructs a PrivateKey from an integer scalar.
func NewPrivateKeyFromInt(d *big.Int, network *networks.Network) (*PrivateKey, error) {
	k := new(big.Int).Set(d)
	if k.Sign() <= 0 || k.Cmp(secp256k1.N) >= 0 {
		return nil, ErrInvalidPrivateKey
	}
	return &PrivateKey{d: k, network: network}, nil
}

// RandomPrivateKey generates a private key from a cryptographically secure
// random source. This and mnemonic generation are the only nondeterministic
// operations in the toolkit.
func RandomPrivateKey(network *networks.Network) (*PrivateKey, error) {
	for {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			return nil, err
		}
		if k, err := NewPrivateKey(buf, network); err == nil {
			return k, nil
		}
	}
}

// Bytes returns the 32-byte big-endian scalar.
func (k *PrivateKey) Bytes() []byte {
	b := k.d.Bytes()
	out := make([]byte, 32)
	copy(out[32-len(b):], b)
	return out
}

// Network returns the key's network tag.
func (k *PrivateKey) Network() *networks.Network {
	return k.network
}

// ToPublic derives the corresponding public key d*G.
func (k *PrivateKey) ToPublic() *PublicKey {
	point := secp256k1.ScalarBaseMult(k.Bytes())
	return &PublicKey{point: point, network: k.network}
}

// WIF encodes the key in Wallet Import Format: wif_prefix || d ||
// (0x01 if compressed) with a Base58Check checksum.
func (k *PrivateKey) WIF(compressed bool) string {
	payload := make([]byte, 0, 34)
	payload = append(payload, k.network.WIF)
	payload = append(payload, k.Bytes()...)
	if compressed {
		payload = append(payload, 0x01)
	}
	return base58check.CheckEncode(payload)
}

// PrivateKeyFromWIF decodes a WIF string, verifying its checksum and
// network prefix, and reports whether it encoded a compressed public key.
func PrivateKeyFromWIF(wif string, network *networks.Network) (*PrivateKey, bool, error) {
	payload, err := base58check.CheckDecode(wif)
	if err != nil {
		if errors.Is(err, base58check.ErrChecksumMismatch) {
			return nil, false, ErrChecksumMismatch
		}
		return nil, false, err
	}

	if len(payload) != 33 && len(payload) != 34 {
		return nil, false, ErrInvalidEncoding
	}

	if payload[0] != network.WIF {
		return nil, false, ErrWrongNetwork
	}

	compressed := len(payload) == 34
	if compressed && payload[33] != 0x01 {
		return nil, false, ErrInvalidEncoding
	}

	d := payload[1:33]
	priv, err := NewPrivateKey(d, network)
	if err != nil {
		return nil, false, err
	}
	return priv, compressed, nil
}

// PublicKey is an affine secp256k1 point, tagged with a network for
// address-encoding purposes only. Equality is by point, not by network.
type PublicKey struct {
	point   *secp256k1.Point
	network *networks.Network
}

// NewPublicKeyFromPoint wraps an already-computed curve point.
func NewPublicKeyFromPoint(p *secp256k1.Point, network *networks.Network) *PublicKey {
	return &PublicKey{point: p, network: network}
}

// DecodePublicKey parses SEC1-encoded bytes (compressed or uncompressed).
func DecodePublicKey(data []byte, network *networks.Network) (*PublicKey, error) {
	point, err := secp256k1.ParsePublicKey(data)
	if err != nil {
		return nil, ErrInvalidEncoding
	}
	return &PublicKey{point: point, network: network}, nil
}

// Point returns the underlying curve point.
func (k *PublicKey) Point() *secp256k1.Point {
	return k.point
}

// Network returns the key's network tag.
func (k *PublicKey) Network() *networks.Network {
	return k.network
}

// Encode serializes the public key in SEC1 compressed or uncompressed form.
func (k *PublicKey) Encode(compressed bool) []byte {
	if compressed {
		return secp256k1.CompressPoint(k.point)
	}
	return secp256k1.SerializeUncompressed(k.point)
}

// Equal compares two public keys by curve point only, ignoring network tag.
func (k *PublicKey) Equal(other *PublicKey) bool {
	return k.point.Equal(other.point)
}

// Hash160 returns ripemd160(sha256(compressed encoding)), the value Bitcoin
// addresses and BIP32 fingerprints hash over.
func (k *PublicKey) Hash160() []byte {
	return hash.Hash160(k.Encode(true))
}
