package bip44

import "github.com/coldrail/btchdkit/pkgs/bip32"

// Account is an account-level extended key (m/purpose'/coinType'/account')
// together with the purpose it was derived under.
type Account struct {
	key     *bip32.ExtendedKey
	purpose uint32
	index   uint32
}

// Key returns the account-level extended key.
func (a *Account) Key() *bip32.ExtendedKey { return a.key }

// Index returns the account index.
func (a *Account) Index() uint32 { return a.index }

// PublicAccount returns the neutered (XPub) form of this account key,
// suitable for watch-only address generation.
func (a *Account) PublicAccount() *Account {
	return &Account{key: a.key.Neuter(), purpose: a.purpose, index: a.index}
}

// DeriveKey walks account/change/index from the account key.
func (a *Account) DeriveKey(change, index uint32) (*bip32.ExtendedKey, error) {
	changeKey, err := a.key.Child(change)
	if err != nil {
		return nil, err
	}
	return changeKey.Child(index)
}

// DeriveAddress derives the address at change/index and returns its string
// form.
func (a *Account) DeriveAddress(change, index uint32) (string, error) {
	key, err := a.DeriveKey(change, index)
	if err != nil {
		return "", err
	}
	return key.Address()
}

// ExternalAddress derives a receiving address at index.
func (a *Account) ExternalAddress(index uint32) (string, error) {
	return a.DeriveAddress(ExternalChain, index)
}

// InternalAddress derives a change address at index.
func (a *Account) InternalAddress(index uint32) (string, error) {
	return a.DeriveAddress(InternalChain, index)
}

// DeriveAddresses derives count consecutive addresses starting at startIndex
// on the given change chain.
func (a *Account) DeriveAddresses(change, startIndex, count uint32) ([]string, error) {
	changeKey, err := a.key.Child(change)
	if err != nil {
		return nil, err
	}

	out := make([]string, count)
	for i := uint32(0); i < count; i++ {
		child, err := changeKey.Child(startIndex + i)
		if err != nil {
			return nil, err
		}
		addr, err := child.Address()
		if err != nil {
			return nil, err
		}
		out[i] = addr
	}
	return out, nil
}
