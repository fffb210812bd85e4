package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/GoldenEraGlobal/cryptog/internal/vectors"
)

var vectorsCmd = &cobra.Command{
	Use:   "vectors",
	Short: "Regenerate the compatibility test vectors",
	Long: `Rebuilds the cross-implementation test vectors from the shared fixture
mnemonic and prints them as JSON. The output must match the reference
implementation byte for byte.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		accounts, _ := cmd.Flags().GetUint32("accounts")

		vecs, err := vectors.Generate(vectors.TestMnemonic, vectors.TestPassword, 0)
		if err != nil {
			return err
		}
		keys, err := vectors.KeyDerivation(vectors.TestMnemonic, vectors.TestPassword, accounts)
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"testVectors":          vecs,
			"keyDerivationVectors": keys,
		})
	},
}

func init() {
	rootCmd.AddCommand(vectorsCmd)
	vectorsCmd.Flags().Uint32P("accounts", "n", 5, "number of key derivation vectors")
}
