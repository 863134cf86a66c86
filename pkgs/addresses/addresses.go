// Package addresses derives Bitcoin address strings from public keys for
// the three address types this toolkit's keys can actually authenticate:
// P2PKH, P2WPKH-in-P2SH, and native SegWit P2WPKH. P2WSH and its
// P2SH-wrapped variant require a witness script rather than a single
// public key and so are not address algorithms here, even though they
// appear as version-byte-table entries (see pkgs/networks).
package addresses

import (
	"errors"

	"github.com/coldrail/btchdkit/pkgs/bech32"
	"github.com/coldrail/btchdkit/pkgs/crypto/base58check"
	"github.com/coldrail/btchdkit/pkgs/crypto/hash"
	"github.com/coldrail/btchdkit/pkgs/keys"
	"github.com/coldrail/btchdkit/pkgs/networks"
	"github.com/coldrail/btchdkit/pkgs/script"
)

var ErrUnsupportedAddressType = errors.New("addresses: no single-key address algorithm for this address type")

// Address derives a Bitcoin address string for a public key, address type,
// and network. The public key is always hashed in compressed form, per
// spec.md 4.6 (compressed flag defaults to true through this facade).
func Address(pub *keys.PublicKey, addrType networks.AddressType, network *networks.Network) (string, error) {
	switch addrType {
	case networks.P2PKH:
		return p2pkh(pub, network), nil
	case networks.P2WPKHInP2SH:
		return p2wpkhInP2SH(pub, network)
	case networks.P2WPKH:
		return p2wpkh(pub, network)
	default:
		return "", ErrUnsupportedAddressType
	}
}

func p2pkh(pub *keys.PublicKey, network *networks.Network) string {
	payload := make([]byte, 0, 21)
	payload = append(payload, network.KeyHash)
	payload = append(payload, hash.Hash160(pub.Encode(true))...)
	return base58check.CheckEncode(payload)
}

func p2wpkhInP2SH(pub *keys.PublicKey, network *networks.Network) (string, error) {
	keyHash := hash.Hash160(pub.Encode(true))

	redeemScript, err := script.P2WPKHRedeemScript(keyHash)
	if err != nil {
		return "", err
	}

	payload := make([]byte, 0, 21)
	payload = append(payload, network.ScriptHash)
	payload = append(payload, hash.Hash160(redeemScript)...)
	return base58check.CheckEncode(payload), nil
}

func p2wpkh(pub *keys.PublicKey, network *networks.Network) (string, error) {
	keyHash := hash.Hash160(pub.Encode(true))
	return bech32.SegWitEncode(network.HRP, 0, keyHash)
}
