// Package networks holds the frozen per-network parameter table: bech32
// HRP, key-hash and script-hash version bytes, WIF prefix, and the
// extended-key version bytes for each BIP32/44/49/84 address type.
package networks

import "errors"

// AddressType tags an extended key (and the address it ultimately
// produces) with the derivation-path convention it follows.
type AddressType int

const (
	P2PKH AddressType = iota
	P2WPKH
	P2WSH
	P2WPKHInP2SH
	P2WSHInP2SH
)

var ErrUnknownAddressType = errors.New("networks: unknown address type")

// Network is a frozen parameter table for one chain variant.
type Network struct {
	Name        string
	HRP         string
	KeyHash     byte
	ScriptHash  byte
	WIF         byte
	ExtendedPrv map[AddressType]uint32
	ExtendedPub map[AddressType]uint32
}

// Bitcoin is the btc mainnet parameter table.
var Bitcoin = &Network{
	Name:       "btc",
	HRP:        "bc",
	KeyHash:    0x00,
	ScriptHash: 0x05,
	WIF:        0x80,
	ExtendedPrv: map[AddressType]uint32{
		P2PKH:        0x0488ADE4, // xprv
		P2WPKHInP2SH: 0x049D7878, // yprv
		P2WPKH:       0x04B2430C, // zprv
		P2WSHInP2SH:  0x0295B43F, // Yprv (collides with Ypub, see below)
		P2WSH:        0x02AA7A99, // Zprv
	},
	ExtendedPub: map[AddressType]uint32{
		P2PKH:        0x0488B21E, // xpub
		P2WPKHInP2SH: 0x049D7CB2, // ypub
		P2WPKH:       0x04B24746, // zpub
		P2WSHInP2SH:  0x0295B43F, // Ypub (collides with Yprv)
		P2WSH:        0x02AA7ED3, // Zpub
	},
}

// BitcoinTestnet is the btct testnet parameter table.
var BitcoinTestnet = &Network{
	Name:       "btct",
	HRP:        "tb",
	KeyHash:    0x6f,
	ScriptHash: 0xc4,
	WIF:        0xef,
	ExtendedPrv: map[AddressType]uint32{
		P2PKH:        0x04358394, // tprv
		P2WPKHInP2SH: 0x044A4E28, // uprv
		P2WPKH:       0x045F18BC, // vprv
		P2WSHInP2SH:  0x024285B5,
		P2WSH:        0x02575048,
	},
	ExtendedPub: map[AddressType]uint32{
		P2PKH:        0x043587CF, // tpub
		P2WPKHInP2SH: 0x044A5262, // upub
		P2WPKH:       0x045F1CF6, // vpub
		P2WSHInP2SH:  0x024289EF,
		P2WSH:        0x02575483,
	},
}

// ByName looks up a network by its short name ("btc" or "btct").
func ByName(name string) (*Network, error) {
	switch name {
	case "btc", "":
		return Bitcoin, nil
	case "btct":
		return BitcoinTestnet, nil
	default:
		return nil, errors.New("networks: unknown network " + name)
	}
}

// VersionLookup is the result of resolving a 4-byte version prefix against
// a network's extended-prv and extended-pub tables.
type VersionLookup struct {
	IsPrivate   bool
	AddressType AddressType
}

// Lookup resolves a version uint32 against both sub-tables of a network.
// It returns ErrUnknownVersion if the version appears in neither table, and
// ErrAmbiguousVersion if it appears in both (the documented btc mainnet
// Yprv/Ypub collision at 0x0295B43F triggers this).
func (n *Network) Lookup(version uint32) (VersionLookup, error) {
	prvType, inPrv := reverseLookup(n.ExtendedPrv, version)
	pubType, inPub := reverseLookup(n.ExtendedPub, version)

	switch {
	case inPrv && inPub:
		return VersionLookup{}, &AmbiguousVersionError{Version: version, PrvType: prvType, PubType: pubType}
	case inPrv:
		return VersionLookup{IsPrivate: true, AddressType: prvType}, nil
	case inPub:
		return VersionLookup{IsPrivate: false, AddressType: pubType}, nil
	default:
		return VersionLookup{}, &UnknownVersionError{Version: version, Network: n.Name}
	}
}

func reverseLookup(table map[AddressType]uint32, version uint32) (AddressType, bool) {
	for t, v := range table {
		if v == version {
			return t, true
		}
	}
	return 0, false
}
