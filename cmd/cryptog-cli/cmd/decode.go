package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GoldenEraGlobal/cryptog/pkg/amounts"
	"github.com/GoldenEraGlobal/cryptog/pkg/tx"
	"github.com/GoldenEraGlobal/cryptog/pkg/types"
)

var decodeCmd = &cobra.Command{
	Use:   "decode <raw-tx-hex>",
	Short: "Decode raw transaction bytes",
	Long: `Decodes a hex-encoded transaction, recovers the sender and prints the
fields together with the canonical hash and size.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := types.DecodeHex(args[0])
		if err != nil {
			return err
		}
		decoded, err := tx.Decode(raw)
		if err != nil {
			return err
		}

		out := map[string]any{
			"version":   decoded.Version().Code(),
			"timestamp": decoded.Timestamp(),
			"type":      decoded.Type().String(),
			"network":   decoded.Network().String(),
			"fee":       amounts.FormatNative(decoded.Fee()),
		}
		if nonce := decoded.Nonce(); nonce != nil {
			out["nonce"] = *nonce
		}
		if recipient := decoded.Recipient(); recipient != nil {
			out["recipient"] = recipient.Hex()
		}
		if token := decoded.TokenAddress(); token != nil {
			out["token_address"] = token.Hex()
		}
		if amount := decoded.Amount(); amount != nil {
			out["amount"] = amounts.FormatNative(amount)
		}
		if msg := decoded.Message(); msg != nil {
			out["message"] = string(msg)
		}
		if payload := decoded.Payload(); payload != nil {
			out["payload_type"] = payload.Type().String()
			out["payload_rlp"] = types.EncodeHex(tx.EncodePayload(payload))
		}
		if ref := decoded.ReferenceHash(); ref != nil {
			out["reference_hash"] = ref.Hex()
		}
		if sig := decoded.Signature(); sig != nil {
			out["signature"] = sig.Hex()
			out["sender"] = decoded.Sender().Hex()
			out["tx_hash"] = decoded.Hash().Hex()
			out["size"] = decoded.Size()
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return fmt.Errorf("render output: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
}
