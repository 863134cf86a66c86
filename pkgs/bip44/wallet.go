package bip44

import (
	"github.com/coldrail/btchdkit/pkgs/bip32"
	"github.com/coldrail/btchdkit/pkgs/mnemonic"
	"github.com/coldrail/btchdkit/pkgs/networks"
)

// Wallet wraps a BIP32 master key with the mnemonic it was derived from, if
// any, and the network it derives addresses for.
type Wallet struct {
	masterSeed []byte
	mnemonic   string
	network    *networks.Network
}

// NewWalletFromSeed creates a wallet directly from seed bytes.
func NewWalletFromSeed(seed []byte, network *networks.Network) *Wallet {
	return &Wallet{masterSeed: seed, network: network}
}

// NewWalletFromMnemonic expands a mnemonic phrase into a seed and wraps it.
// The phrase is not validated against the BIP39 wordlist; callers that need
// that guarantee should call mnemonic.IsValid first.
func NewWalletFromMnemonic(phrase, passphrase string, network *networks.Network) *Wallet {
	seed := mnemonic.ToSeed(phrase, passphrase)
	return &Wallet{masterSeed: seed, mnemonic: phrase, network: network}
}

// GenerateWallet creates a wallet from a freshly generated random mnemonic.
func GenerateWallet(entropyBits int, passphrase string, network *networks.Network) (*Wallet, error) {
	phrase, err := mnemonic.Generate(entropyBits)
	if err != nil {
		return nil, err
	}
	return NewWalletFromMnemonic(phrase, passphrase, network), nil
}

// Mnemonic returns the mnemonic phrase this wallet was built from, or the
// empty string if it was built directly from a seed.
func (w *Wallet) Mnemonic() string { return w.mnemonic }

// MasterKey derives the BIP32 master XPrv for addrType's purpose, tagging
// it so downstream derivation and serialization pick the matching version
// bytes (xprv/yprv/zprv).
func (w *Wallet) MasterKey(addrType networks.AddressType) (*bip32.ExtendedKey, error) {
	return bip32.NewMasterKeyWithType(w.masterSeed, w.network, addrType)
}

// Account derives the account-level key for purpose/account, per
// m/purpose'/coinType'/account'.
func (w *Wallet) Account(purpose, account uint32) (*Account, error) {
	addrType, err := purposeAddressType(purpose)
	if err != nil {
		return nil, err
	}

	master, err := w.MasterKey(addrType)
	if err != nil {
		return nil, err
	}

	coinType := uint32(CoinTypeBitcoin)
	if w.network == networks.BitcoinTestnet {
		coinType = CoinTypeBitcoinTestnet
	}
	path := NewPath(purpose, coinType, account, 0, 0)

	accountKey, err := master.DeriveFromPathString(path.AccountPath())
	if err != nil {
		return nil, err
	}

	return &Account{key: accountKey, purpose: purpose, index: account}, nil
}

// DeriveAddress is a one-shot convenience: walk the full path from a fresh
// master key and return the resulting address string.
func (w *Wallet) DeriveAddress(purpose, account, change, addressIndex uint32) (string, error) {
	addrType, err := purposeAddressType(purpose)
	if err != nil {
		return "", err
	}

	master, err := w.MasterKey(addrType)
	if err != nil {
		return "", err
	}

	coinType := uint32(CoinTypeBitcoin)
	if w.network == networks.BitcoinTestnet {
		coinType = CoinTypeBitcoinTestnet
	}
	path := NewPath(purpose, coinType, account, change, addressIndex)

	key, err := master.DeriveFromPathString(path.String())
	if err != nil {
		return "", err
	}
	return key.Address()
}
