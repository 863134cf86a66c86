// Command hdwallet is a CLI for the BIP32/BIP39/BIP44 HD wallet toolkit:
// generating master keys, deriving children by path, parsing extended
// keys, and printing addresses.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   zerolog.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hdwallet",
		Short: "BIP32/39/44 hierarchical deterministic wallet toolkit",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log-level: %w", err)
			}
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	rootCmd.AddCommand(
		newGenerateCmd(),
		newDeriveCmd(),
		newParseCmd(),
		newAddressCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
