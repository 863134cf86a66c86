package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coldrail/btchdkit/pkgs/bip32"
	"github.com/coldrail/btchdkit/pkgs/mnemonic"
)

func newGenerateCmd() *cobra.Command {
	var (
		seedHex     string
		phrase      string
		passphrase  string
		networkName string
		addrType    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a master extended key from a seed or mnemonic",
		RunE: func(cmd *cobra.Command, args []string) error {
			network, err := resolveNetwork(networkName)
			if err != nil {
				return err
			}
			at, err := resolveAddressType(addrType)
			if err != nil {
				return err
			}

			var seed []byte
			switch {
			case phrase != "":
				logger.Debug().Msg("expanding mnemonic to seed")
				seed = mnemonic.ToSeed(phrase, passphrase)
			case seedHex != "":
				seed, err = hex.DecodeString(seedHex)
				if err != nil {
					return fmt.Errorf("invalid --seed hex: %w", err)
				}
			default:
				return fmt.Errorf("one of --seed or --mnemonic is required")
			}

			master, err := bip32.NewMasterKeyWithType(seed, network, at)
			if err != nil {
				return err
			}

			printKeyInfo("Master Key", master)
			pub := master.Neuter()
			fmt.Printf("XPub:    %s\n", pub.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&seedHex, "seed", "", "seed in hexadecimal")
	cmd.Flags().StringVar(&phrase, "mnemonic", "", "BIP39 mnemonic phrase")
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "BIP39 passphrase")
	cmd.Flags().StringVar(&networkName, "network", "btc", "network: btc or btct")
	cmd.Flags().StringVar(&addrType, "type", "p2pkh", "address type: p2pkh, p2wpkh-p2sh, p2wpkh")

	return cmd
}
