package bip32

import (
	"encoding/binary"
	"fmt"

	"github.com/coldrail/btchdkit/pkgs/crypto/base58check"
	"github.com/coldrail/btchdkit/pkgs/keys"
	"github.com/coldrail/btchdkit/pkgs/networks"
)

// Serialize encodes the key as the 78-byte BIP32 record: 4-byte version,
// 1-byte depth, 4-byte parent fingerprint, 4-byte child index, 32-byte
// chain code, and a 33-byte key (0x00||d for a private key, the
// compressed SEC1 point for a public one).
func (k *ExtendedKey) Serialize() []byte {
	out := make([]byte, 0, 78)

	var version uint32
	if k.isPrivate {
		version = k.network.ExtendedPrv[k.addressType]
	} else {
		version = k.network.ExtendedPub[k.addressType]
	}

	versionBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(versionBytes, version)
	out = append(out, versionBytes...)

	out = append(out, k.depth)
	out = append(out, k.parentFP...)

	indexBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(indexBytes, k.childIndex)
	out = append(out, indexBytes...)

	out = append(out, k.chainCode...)

	if k.isPrivate {
		out = append(out, 0x00)
		out = append(out, k.private.Bytes()...)
	} else {
		out = append(out, k.public.Encode(true)...)
	}

	return out
}

// String returns the Base58Check-encoded extended key record (xprv.../xpub...).
func (k *ExtendedKey) String() string {
	return base58check.CheckEncode(k.Serialize())
}

// ParseExtendedKey decodes a Base58Check-encoded extended key string,
// resolving its network and address type from the version bytes.
func ParseExtendedKey(s string) (*ExtendedKey, error) {
	payload, err := base58check.CheckDecode(s)
	if err != nil {
		return nil, fmt.Errorf("bip32: %w: %v", ErrInvalidEncoding, err)
	}
	return Deserialize(payload)
}

// Deserialize decodes a raw 78-byte BIP32 record. The version prefix is
// resolved against both the Bitcoin and BitcoinTestnet tables; a version
// present in neither network's tables, or present in both the
// extended-prv and extended-pub tables of the same network (the documented
// mainnet Yprv/Ypub collision), is reported as a distinct error rather
// than silently guessed at.
func Deserialize(data []byte) (*ExtendedKey, error) {
	if len(data) != 78 {
		return nil, ErrInvalidEncoding
	}

	version := binary.BigEndian.Uint32(data[0:4])
	depth := data[4]
	parentFP := copyBytes(data[5:9])
	childIndex := binary.BigEndian.Uint32(data[9:13])
	chainCode := copyBytes(data[13:45])
	keyData := data[45:78]

	network, lookup, err := resolveVersion(version)
	if err != nil {
		return nil, err
	}

	k := &ExtendedKey{
		chainCode:   chainCode,
		depth:       depth,
		parentFP:    parentFP,
		childIndex:  childIndex,
		network:     network,
		addressType: lookup.AddressType,
		isPrivate:   lookup.IsPrivate,
		path:        reconstructPath(lookup.IsPrivate, depth, childIndex),
	}

	if lookup.IsPrivate {
		if keyData[0] != 0x00 {
			return nil, ErrInvalidEncoding
		}
		priv, err := keys.NewPrivateKey(keyData[1:], network)
		if err != nil {
			return nil, ErrInvalidEncoding
		}
		k.private = priv
		k.public = priv.ToPublic()
	} else {
		pub, err := keys.DecodePublicKey(keyData, network)
		if err != nil {
			return nil, ErrInvalidEncoding
		}
		k.public = pub
	}

	return k, nil
}

func resolveVersion(version uint32) (*networks.Network, networks.VersionLookup, error) {
	if lookup, err := networks.Bitcoin.Lookup(version); err == nil {
		return networks.Bitcoin, lookup, nil
	}
	if lookup, err := networks.BitcoinTestnet.Lookup(version); err == nil {
		return networks.BitcoinTestnet, lookup, nil
	}

	// Neither network resolved it cleanly; report whichever network's
	// error is more specific (an ambiguous collision takes priority over
	// a plain unknown-version report from the other table).
	if _, err := networks.Bitcoin.Lookup(version); err != nil {
		if isAmbiguous(err) {
			return nil, networks.VersionLookup{}, err
		}
	}
	if _, err := networks.BitcoinTestnet.Lookup(version); err != nil {
		if isAmbiguous(err) {
			return nil, networks.VersionLookup{}, err
		}
	}

	_, err := networks.Bitcoin.Lookup(version)
	return nil, networks.VersionLookup{}, err
}

func isAmbiguous(err error) bool {
	_, ok := err.(*networks.AmbiguousVersionError)
	return ok
}

// reconstructPath rebuilds a placeholder derivation path from a
// deserialized record. The original path text is not recoverable from the
// wire format: only depth and the final child index survive, so
// intermediate steps are rendered as "x".
func reconstructPath(isPrivate bool, depth uint8, childIndex uint32) string {
	root := "m"
	if !isPrivate {
		root = "M"
	}
	if depth == 0 {
		return root
	}

	path := root
	for i := uint8(1); i < depth; i++ {
		path += "/x"
	}

	if IsHardened(childIndex) {
		path += fmt.Sprintf("/%dh", childIndex-HardenedKeyStart)
	} else {
		path += fmt.Sprintf("/%d", childIndex)
	}
	return path
}
