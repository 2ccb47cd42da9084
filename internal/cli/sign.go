package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/austral-labs/xrplgo/wallet"
)

var signSeed string

var signCmd = &cobra.Command{
	Use:   "sign <tx.json>",
	Short: "Sign a flat transaction JSON file with a family seed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if signSeed == "" {
			return fmt.Errorf("xrplgo: --seed is required")
		}

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		var tx map[string]any
		if err := json.Unmarshal(raw, &tx); err != nil {
			return fmt.Errorf("xrplgo: parsing %s: %w", args[0], err)
		}

		w, err := wallet.FromSeed(signSeed)
		if err != nil {
			return err
		}

		blob, hash, err := w.Sign(tx)
		if err != nil {
			return err
		}
		fmt.Printf("TxBlob: %s\nHash:   %s\n", blob, hash)
		return nil
	},
}

func init() {
	signCmd.Flags().StringVar(&signSeed, "seed", "", "family seed to sign with")
}
