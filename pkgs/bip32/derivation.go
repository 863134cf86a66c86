package bip32

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/coldrail/btchdkit/pkgs/crypto/hash"
	"github.com/coldrail/btchdkit/pkgs/crypto/secp256k1"
	"github.com/coldrail/btchdkit/pkgs/keys"
	"github.com/coldrail/btchdkit/pkgs/networks"
)

// Child derives a child extended key at index. index >= HardenedKeyStart
// requests hardened derivation, which is only possible from an XPrv.
//
// Two surface operators build on this canonical function per the
// dual-operator path algebra: Child itself for plain indices, and
// HardenedChild for indices that should always carry the hardened bit,
// mirroring the non-hardened/hardened distinction a path string makes
// textually.
func (k *ExtendedKey) Child(index uint32) (*ExtendedKey, error) {
	if !k.isPrivate && IsHardened(index) {
		return nil, ErrHardenedFromPublic
	}
	if k.depth == 255 {
		return nil, ErrOutOfRange
	}

	if k.isPrivate {
		return k.childFromPrivate(index)
	}
	return k.childFromPublic(index)
}

// HardenedChild derives the hardened child at index, setting the hardened
// bit regardless of whether index already carries it.
func (k *ExtendedKey) HardenedChild(index uint32) (*ExtendedKey, error) {
	return k.Child(Hardened(index & (HardenedKeyStart - 1)))
}

// childFromPrivate implements BIP32 CKDpriv, retrying at i+1 whenever the
// HMAC output is invalid (I_L >= n or the resulting scalar is zero). The
// retry is iterative, not recursive: an adversarial chain code cannot
// exhaust the stack, only walk forward through the index space.
func (k *ExtendedKey) childFromPrivate(index uint32) (*ExtendedKey, error) {
	for i := index; ; i++ {
		if IsHardened(i) != IsHardened(index) {
			// Crossed from non-hardened into hardened index space while
			// retrying; BIP32 does not define this, treat as failure.
			return nil, ErrInvalidDerivation
		}

		data := make([]byte, 37)
		if IsHardened(i) {
			data[0] = 0x00
			copy(data[1:33], k.private.Bytes())
		} else {
			copy(data[:33], k.public.Encode(true))
		}
		binary.BigEndian.PutUint32(data[33:], i)

		I := hash.HMACSHA512(k.chainCode, data)
		IL, IR := I[:32], I[32:]

		ilInt := new(big.Int).SetBytes(IL)
		if ilInt.Cmp(secp256k1.N) >= 0 {
			continue
		}

		childScalar := new(big.Int).Add(ilInt, new(big.Int).SetBytes(k.private.Bytes()))
		childScalar.Mod(childScalar, secp256k1.N)
		if childScalar.Sign() == 0 {
			continue
		}

		childPriv, err := keys.NewPrivateKeyFromInt(childScalar, k.network)
		if err != nil {
			continue
		}

		return &ExtendedKey{
			private:     childPriv,
			public:      childPriv.ToPublic(),
			chainCode:   IR,
			depth:       k.depth + 1,
			parentFP:    k.Fingerprint(),
			childIndex:  i,
			network:     k.network,
			addressType: k.addressType,
			path:        childPath(k.path, i),
			isPrivate:   true,
		}, nil
	}
}

// childFromPublic implements BIP32 CKDpub: K_child = IL*G + K_parent,
// failing InvalidDerivation if the result is the point at infinity. This
// check is required by spec; it is absent from the Python reference this
// toolkit's semantics otherwise track.
func (k *ExtendedKey) childFromPublic(index uint32) (*ExtendedKey, error) {
	data := make([]byte, 37)
	copy(data[:33], k.public.Encode(true))
	binary.BigEndian.PutUint32(data[33:], index)

	I := hash.HMACSHA512(k.chainCode, data)
	IL, IR := I[:32], I[32:]

	if !secp256k1.IsValidPrivateKey(IL) {
		return nil, ErrInvalidDerivation
	}

	ilPoint := secp256k1.ScalarBaseMult(IL)
	childPoint := secp256k1.Add(ilPoint, k.public.Point())
	if childPoint.IsInfinity() {
		return nil, ErrInvalidDerivation
	}

	childPub := keys.NewPublicKeyFromPoint(childPoint, k.network)

	return &ExtendedKey{
		public:      childPub,
		chainCode:   IR,
		depth:       k.depth + 1,
		parentFP:    k.Fingerprint(),
		childIndex:  index,
		network:     k.network,
		addressType: k.addressType,
		path:        childPath(k.path, index),
		isPrivate:   false,
	}, nil
}

func childPath(parentPath string, index uint32) string {
	if IsHardened(index) {
		return fmt.Sprintf("%s/%dh", parentPath, index-HardenedKeyStart)
	}
	return fmt.Sprintf("%s/%d", parentPath, index)
}

// Neuter returns the XPub corresponding to this key: same chain code,
// depth, index, and parent fingerprint, with the path's "m" root rewritten
// to "M". Neutering an XPub is a no-op clone.
func (k *ExtendedKey) Neuter() *ExtendedKey {
	if !k.isPrivate {
		return k.clone()
	}

	return &ExtendedKey{
		public:      k.public,
		chainCode:   copyBytes(k.chainCode),
		depth:       k.depth,
		parentFP:    copyBytes(k.parentFP),
		childIndex:  k.childIndex,
		network:     k.network,
		addressType: k.addressType,
		path:        neuterPath(k.path),
		isPrivate:   false,
	}
}

// ToChildXPub derives the XPub for a non-hardened child without going
// through the private key first. It is only equal to Child(i).Neuter()
// when i is non-hardened: the BIP32 commutative diagram between XPrv and
// XPub child derivation holds in that case only, since a hardened child
// cannot be reached from a neutered parent at all.
func (k *ExtendedKey) ToChildXPub(i uint32) (*ExtendedKey, error) {
	return k.Neuter().Child(i)
}

func neuterPath(path string) string {
	if len(path) == 0 {
		return path
	}
	if path[0] == 'm' {
		return "M" + path[1:]
	}
	return path
}

// WithAddressType returns a copy of k tagged with a different address
// type, affecting which version bytes Serialize/String select and which
// address algorithm Address() invokes. The underlying key material is
// unchanged.
func (k *ExtendedKey) WithAddressType(addrType networks.AddressType) *ExtendedKey {
	c := k.clone()
	c.addressType = addrType
	return c
}

func (k *ExtendedKey) clone() *ExtendedKey {
	return &ExtendedKey{
		private:     k.private,
		public:      k.public,
		chainCode:   copyBytes(k.chainCode),
		depth:       k.depth,
		parentFP:    copyBytes(k.parentFP),
		childIndex:  k.childIndex,
		network:     k.network,
		addressType: k.addressType,
		path:        k.path,
		isPrivate:   k.isPrivate,
	}
}
