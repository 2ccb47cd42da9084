// Package cli implements the xrplgo command-line tool: a thin wrapper
// around the wallet, transactions and transport packages for deriving
// addresses, signing transactions and talking to a rippled node from
// a shell.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/austral-labs/xrplgo/internal/config"
)

var (
	configFile string
	network    string
	cfg        *config.Config
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "xrplgo",
	Short: "xrplgo - an XRP Ledger client library and CLI",
	Long: `xrplgo is a Go client for the XRP Ledger: field registry, canonical
binary codec, transaction signing and a multiplexed HTTP/WebSocket
transport, exposed here as a small command-line tool for deriving
wallets, building and signing transactions, and querying a rippled
node.`,
	Version: "0.1.0-dev",
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(); it only needs to
// happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&configFile, "conf", "", "configuration file path")
	rootCmd.PersistentFlags().StringVar(&network, "network", "", "named network preset (mainnet, testnet, devnet)")

	rootCmd.AddCommand(walletCmd)
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(submitCmd)
}

// initConfig loads configuration from configFile (or built-in
// defaults/environment if unset), then applies --network if given.
func initConfig() {
	loaded, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg = loaded

	if network != "" {
		preset, ok := config.NetworkPreset(network)
		if !ok {
			fmt.Fprintf(os.Stderr, "xrplgo: unknown network %q\n", network)
			os.Exit(1)
		}
		cfg.Network = preset
	}
}
