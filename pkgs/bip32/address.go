package bip32

import "github.com/coldrail/btchdkit/pkgs/addresses"

// Address derives the Bitcoin address string for this key's address type
// from the key's public point, which an XPrv carries as well, since address
// derivation only needs the public point.
func (k *ExtendedKey) Address() (string, error) {
	pub := k.public
	return addresses.Address(pub, k.addressType, k.network)
}
