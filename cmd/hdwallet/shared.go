package main

import (
	"fmt"

	"github.com/coldrail/btchdkit/pkgs/networks"
)

func resolveNetwork(name string) (*networks.Network, error) {
	net, err := networks.ByName(name)
	if err != nil {
		return nil, fmt.Errorf("unknown network %q, expected btc or btct", name)
	}
	return net, nil
}

func resolveAddressType(name string) (networks.AddressType, error) {
	switch name {
	case "p2pkh", "":
		return networks.P2PKH, nil
	case "p2wpkh-p2sh", "p2sh-p2wpkh":
		return networks.P2WPKHInP2SH, nil
	case "p2wpkh", "bech32":
		return networks.P2WPKH, nil
	default:
		return 0, fmt.Errorf("unknown address type %q, expected p2pkh, p2wpkh-p2sh, or p2wpkh", name)
	}
}

func printKeyInfo(label string, k interface {
	IsPrivate() bool
	Network() *networks.Network
	Depth() uint8
	ChildIndex() uint32
	Path() string
	String() string
}) {
	kind := "XPub"
	if k.IsPrivate() {
		kind = "XPrv"
	}
	fmt.Printf("=== %s ===\n", label)
	fmt.Printf("Type:    %s\n", kind)
	fmt.Printf("Network: %s\n", k.Network().Name)
	fmt.Printf("Depth:   %d\n", k.Depth())
	fmt.Printf("Path:    %s\n", k.Path())
	fmt.Printf("Record:  %s\n", k.String())
}
