package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/austral-labs/xrplgo/wallet"
)

var walletCmd = &cobra.Command{
	Use:   "wallet",
	Short: "Derive or generate an XRPL wallet",
}

var walletFromSeedCmd = &cobra.Command{
	Use:   "from-seed <seed>",
	Short: "Derive a wallet's address and public key from a family seed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := wallet.FromSeed(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Address:    %s\nPublicKey:  %s\n", w.Address(), w.PublicKey())
		return nil
	},
}

var walletNewCmd = &cobra.Command{
	Use:   "new",
	Short: "Generate a new random wallet",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := wallet.Random()
		if err != nil {
			return err
		}
		fmt.Printf("Address:    %s\nPublicKey:  %s\n", w.Address(), w.PublicKey())
		return nil
	},
}

func init() {
	walletCmd.AddCommand(walletFromSeedCmd)
	walletCmd.AddCommand(walletNewCmd)
}
