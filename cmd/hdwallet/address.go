package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coldrail/btchdkit/pkgs/bip32"
)

func newAddressCmd() *cobra.Command {
	var (
		keyStr   string
		path     string
		addrType string
	)

	cmd := &cobra.Command{
		Use:   "address",
		Short: "Print the Bitcoin address for an extended key (optionally deriving a path first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if keyStr == "" {
				return fmt.Errorf("--key is required")
			}

			key, err := bip32.ParseExtendedKey(keyStr)
			if err != nil {
				return fmt.Errorf("parsing key: %w", err)
			}

			if path != "" {
				key, err = key.DeriveFromPathString(path)
				if err != nil {
					return fmt.Errorf("deriving path %s: %w", path, err)
				}
			}

			if addrType != "" {
				at, err := resolveAddressType(addrType)
				if err != nil {
					return err
				}
				if at != key.AddressType() {
					logger.Debug().Msg("overriding the key's stored address type for this address only")
				}
				key = key.WithAddressType(at)
			}

			addr, err := key.Address()
			if err != nil {
				return err
			}
			fmt.Println(addr)
			return nil
		},
	}

	cmd.Flags().StringVar(&keyStr, "key", "", "extended key (xprv/xpub)")
	cmd.Flags().StringVar(&path, "path", "", "optional derivation path to walk first")
	cmd.Flags().StringVar(&addrType, "type", "", "override address type: p2pkh, p2wpkh-p2sh, p2wpkh")

	return cmd
}
