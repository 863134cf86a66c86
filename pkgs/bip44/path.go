// Package bip44 layers the BIP44/49/84 account conventions on top of a
// BIP32 master key, narrowed to the two coin types this toolkit's networks
// table supports: Bitcoin mainnet and testnet.
package bip44

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/coldrail/btchdkit/pkgs/networks"
)

// Purpose values select the address type a BIP44-style path produces.
const (
	PurposeLegacy       = 44 // P2PKH
	PurposeNestedSegWit = 49 // P2WPKH-in-P2SH
	PurposeNativeSegWit = 84 // P2WPKH
)

// CoinType is the SLIP44 coin type component of a path: 0 for Bitcoin
// mainnet, 1 for any testnet.
const (
	CoinTypeBitcoin        = 0
	CoinTypeBitcoinTestnet = 1
)

const (
	ExternalChain = 0
	InternalChain = 1
)

var (
	ErrInvalidPath    = errors.New("bip44: invalid path")
	ErrUnknownPurpose = errors.New("bip44: unknown purpose, expected 44, 49, or 84")
	ErrInvalidChange  = errors.New("bip44: change must be 0 or 1")
)

// Path is a parsed BIP44-style path: m/purpose'/coinType'/account'/change/index.
type Path struct {
	Purpose      uint32
	CoinType     uint32
	Account      uint32
	Change       uint32
	AddressIndex uint32
}

// NewPath builds a path for coinType/account/change/addressIndex at purpose.
func NewPath(purpose, coinType, account, change, addressIndex uint32) *Path {
	return &Path{
		Purpose:      purpose,
		CoinType:     coinType,
		Account:      account,
		Change:       change,
		AddressIndex: addressIndex,
	}
}

// String renders the path in BIP32 hardened-apostrophe notation.
func (p *Path) String() string {
	return fmt.Sprintf("m/%d'/%d'/%d'/%d/%d", p.Purpose, p.CoinType, p.Account, p.Change, p.AddressIndex)
}

// AccountPath renders the account-level prefix: m/purpose'/coinType'/account'.
func (p *Path) AccountPath() string {
	return fmt.Sprintf("m/%d'/%d'/%d'", p.Purpose, p.CoinType, p.Account)
}

// AddressType maps the path's purpose to the address type it conventionally
// produces.
func (p *Path) AddressType() (networks.AddressType, error) {
	return purposeAddressType(p.Purpose)
}

func purposeAddressType(purpose uint32) (networks.AddressType, error) {
	switch purpose {
	case PurposeLegacy:
		return networks.P2PKH, nil
	case PurposeNestedSegWit:
		return networks.P2WPKHInP2SH, nil
	case PurposeNativeSegWit:
		return networks.P2WPKH, nil
	default:
		return 0, ErrUnknownPurpose
	}
}

// ParsePath parses a path string of the form m/purpose'/coinType'/account'/change/index.
func ParsePath(path string) (*Path, error) {
	path = strings.TrimSpace(path)
	if !strings.HasPrefix(path, "m/") {
		return nil, ErrInvalidPath
	}

	parts := strings.Split(path[2:], "/")
	if len(parts) != 5 {
		return nil, ErrInvalidPath
	}

	purpose, err := parseHardened(parts[0])
	if err != nil {
		return nil, fmt.Errorf("bip44: purpose: %w", err)
	}
	if _, err := purposeAddressType(purpose); err != nil {
		return nil, err
	}

	coinType, err := parseHardened(parts[1])
	if err != nil {
		return nil, fmt.Errorf("bip44: coin type: %w", err)
	}

	account, err := parseHardened(parts[2])
	if err != nil {
		return nil, fmt.Errorf("bip44: account: %w", err)
	}

	change, err := parsePlain(parts[3])
	if err != nil {
		return nil, fmt.Errorf("bip44: change: %w", err)
	}
	if change > 1 {
		return nil, ErrInvalidChange
	}

	addressIndex, err := parsePlain(parts[4])
	if err != nil {
		return nil, fmt.Errorf("bip44: address index: %w", err)
	}

	return &Path{
		Purpose:      purpose,
		CoinType:     coinType,
		Account:      account,
		Change:       change,
		AddressIndex: addressIndex,
	}, nil
}

func parseHardened(s string) (uint32, error) {
	if !strings.HasSuffix(s, "'") && !strings.HasSuffix(s, "h") && !strings.HasSuffix(s, "H") {
		return 0, fmt.Errorf("expected hardened index, got %q", s)
	}
	s = strings.TrimRight(s, "'hH")
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err
}

func parsePlain(s string) (uint32, error) {
	if strings.HasSuffix(s, "'") || strings.HasSuffix(s, "h") || strings.HasSuffix(s, "H") {
		return 0, fmt.Errorf("unexpected hardened marker on %q", s)
	}
	v, err := strconv.ParseUint(s, 10, 32)
	return uint32(v), err
}
