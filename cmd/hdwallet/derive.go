package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coldrail/btchdkit/pkgs/bip32"
)

func newDeriveCmd() *cobra.Command {
	var (
		keyStr string
		path   string
	)

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Derive a child extended key from an xprv/xpub along a path",
		RunE: func(cmd *cobra.Command, args []string) error {
			if keyStr == "" {
				return fmt.Errorf("--key is required")
			}
			if path == "" {
				return fmt.Errorf("--path is required")
			}

			key, err := bip32.ParseExtendedKey(keyStr)
			if err != nil {
				return fmt.Errorf("parsing key: %w", err)
			}

			child, err := key.DeriveFromPathString(path)
			if err != nil {
				return fmt.Errorf("deriving path %s: %w", path, err)
			}

			printKeyInfo(fmt.Sprintf("Derived Key (%s)", path), child)
			return nil
		},
	}

	cmd.Flags().StringVar(&keyStr, "key", "", "extended key (xprv/xpub/yprv/...)")
	cmd.Flags().StringVar(&path, "path", "", "derivation path, e.g. m/44'/0'/0'/0/0")

	return cmd
}
