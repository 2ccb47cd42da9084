package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/austral-labs/xrplgo/transport"
)

var submitCmd = &cobra.Command{
	Use:   "submit <tx_blob_hex>",
	Short: "Submit a signed transaction blob to the configured network",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h := transport.WithEndpoint(cfg.Network.HTTPEndpoint)

		var out map[string]any
		if err := h.Call(context.Background(), "submit", map[string]any{"tx_blob": args[0]}, &out); err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}
