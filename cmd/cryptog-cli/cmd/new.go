package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoldenEraGlobal/cryptog/pkg/bip32"
	"github.com/GoldenEraGlobal/cryptog/pkg/bip39"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a new wallet",
	Long:  `Generates a random BIP-39 mnemonic and prints the first derived accounts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		words, _ := cmd.Flags().GetInt("words")
		accounts, _ := cmd.Flags().GetUint32("accounts")

		bitSize := 128
		if words == 24 {
			bitSize = 256
		}

		mnemonicService := bip39.NewMnemonicService()
		mnemonic, err := mnemonicService.GenerateMnemonic(bitSize)
		if err != nil {
			return err
		}
		fmt.Println("Mnemonic:")
		fmt.Println(mnemonic)
		fmt.Println("---------------------------------------------------")

		for i := uint32(0); i < accounts; i++ {
			priv, err := bip32.DeriveAccount(mnemonic, "", i)
			if err != nil {
				return err
			}
			fmt.Printf("Account %d [%s/%d]: %s\n", i, bip32.AccountPathPrefix, i, priv.Address().Hex())
		}
		fmt.Println("---------------------------------------------------")
		fmt.Println("Keep the mnemonic safe. Anyone holding it controls every derived account.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().IntP("words", "w", 24, "mnemonic length: 12 or 24 words")
	newCmd.Flags().Uint32P("accounts", "n", 1, "number of derived accounts to print")
}
