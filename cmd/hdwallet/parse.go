package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coldrail/btchdkit/pkgs/bip32"
)

func newParseCmd() *cobra.Command {
	var keyStr string

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse an extended key string and print its fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			if keyStr == "" {
				return fmt.Errorf("--key is required")
			}

			key, err := bip32.ParseExtendedKey(keyStr)
			if err != nil {
				return fmt.Errorf("parsing key: %w", err)
			}

			printKeyInfo("Extended Key", key)
			fmt.Printf("Fingerprint:        %s\n", hex.EncodeToString(key.Fingerprint()))
			fmt.Printf("Parent Fingerprint: %s\n", hex.EncodeToString(key.ParentFingerprint()))
			fmt.Printf("Chain Code:         %s\n", hex.EncodeToString(key.ChainCode()))
			return nil
		},
	}

	cmd.Flags().StringVar(&keyStr, "key", "", "extended key to parse")
	return cmd
}
