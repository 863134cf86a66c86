// Package bip32 implements BIP-32 hierarchical deterministic extended keys:
// master-key generation from a seed, hardened and non-hardened child
// derivation, the 78-byte wire record, and BIP44/49/84-style path algebra.
// Reference: https://github.com/bitcoin/bips/blob/master/bip-0032.mediawiki
package bip32

import (
	"github.com/coldrail/btchdkit/pkgs/crypto/hash"
	"github.com/coldrail/btchdkit/pkgs/crypto/secp256k1"
	"github.com/coldrail/btchdkit/pkgs/keys"
	"github.com/coldrail/btchdkit/pkgs/networks"
)

// HardenedKeyStart is the index at which hardened child keys begin (2^31).
const HardenedKeyStart uint32 = 0x80000000

// ExtendedKey is a tagged variant of XPrv and XPub, distinguished by
// isPrivate, sharing the record fields BIP32 defines for both.
type ExtendedKey struct {
	private     *keys.PrivateKey // nil when isPrivate is false
	public      *keys.PublicKey  // always populated
	chainCode   []byte           // 32 bytes
	depth       uint8
	parentFP    []byte // 4 bytes, zero iff depth == 0
	childIndex  uint32 // 0 when depth == 0 (absent, per spec's data model)
	network     *networks.Network
	addressType networks.AddressType
	path        string
	isPrivate   bool
}

// NewMasterKey creates a master XPrv from a seed (16-64 bytes), tagged with
// P2PKH as its default address type.
func NewMasterKey(seed []byte, network *networks.Network) (*ExtendedKey, error) {
	return NewMasterKeyWithType(seed, network, networks.P2PKH)
}

// NewMasterKeyWithType creates a master XPrv, tagging it with addrType so
// String/Serialize select the matching version bytes (xprv/yprv/zprv/...).
func NewMasterKeyWithType(seed []byte, network *networks.Network, addrType networks.AddressType) (*ExtendedKey, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, ErrOutOfRange
	}

	I := hash.HMACSHA512([]byte("Bitcoin seed"), seed)
	IL, IR := I[:32], I[32:]

	if !secp256k1.IsValidPrivateKey(IL) {
		return nil, ErrInvalidSeed
	}

	priv, err := keys.NewPrivateKey(IL, network)
	if err != nil {
		return nil, ErrInvalidSeed
	}

	return &ExtendedKey{
		private:     priv,
		public:      priv.ToPublic(),
		chainCode:   IR,
		depth:       0,
		parentFP:    []byte{0x00, 0x00, 0x00, 0x00},
		childIndex:  0,
		network:     network,
		addressType: addrType,
		path:        "m",
		isPrivate:   true,
	}, nil
}

// IsPrivate reports whether this record is an XPrv (true) or XPub (false).
func (k *ExtendedKey) IsPrivate() bool { return k.isPrivate }

// IsMaster reports whether this is a root record (depth 0).
func (k *ExtendedKey) IsMaster() bool { return k.depth == 0 }

// PrivateKey returns the wrapped private key, or nil for an XPub.
func (k *ExtendedKey) PrivateKey() *keys.PrivateKey { return k.private }

// PublicKey returns the wrapped (or derived) public key.
func (k *ExtendedKey) PublicKey() *keys.PublicKey { return k.public }

// ChainCode returns the 32-byte chain code.
func (k *ExtendedKey) ChainCode() []byte { return k.chainCode }

// Depth returns the derivation depth (0 for master).
func (k *ExtendedKey) Depth() uint8 { return k.depth }

// ParentFingerprint returns the 4-byte parent fingerprint.
func (k *ExtendedKey) ParentFingerprint() []byte { return k.parentFP }

// ChildIndex returns the child index (0, and meaningless, for master).
func (k *ExtendedKey) ChildIndex() uint32 { return k.childIndex }

// Network returns the network tag used for serialization.
func (k *ExtendedKey) Network() *networks.Network { return k.network }

// AddressType returns the address type this record is tagged with.
func (k *ExtendedKey) AddressType() networks.AddressType { return k.addressType }

// Path returns the textual derivation path, rooted at "m" (XPrv) or "M" (XPub).
func (k *ExtendedKey) Path() string { return k.path }

// Fingerprint returns the first 4 bytes of hash160(compressed public key),
// the identifier a child record stores as its parent fingerprint.
func (k *ExtendedKey) Fingerprint() []byte {
	return k.public.Hash160()[:4]
}

// Hardened returns the hardened form of a plain child index.
func Hardened(index uint32) uint32 { return index + HardenedKeyStart }

// IsHardened reports whether an index denotes hardened derivation.
func IsHardened(index uint32) bool { return index >= HardenedKeyStart }

// Equal compares two extended keys by the byte content of their 78-byte
// serialization, fixing the method-reference bug in the record this
// package is grounded on (whose equality check compared one side's
// encoded bytes against the other's unevaluated method value).
func (k *ExtendedKey) Equal(other *ExtendedKey) bool {
	if other == nil {
		return false
	}
	a, b := k.Serialize(), other.Serialize()
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

func copyBytes(src []byte) []byte {
	if src == nil {
		return nil
	}
	dst := make([]byte, len(src))
	copy(dst, src)
	return dst
}
