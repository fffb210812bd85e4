package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/GoldenEraGlobal/cryptog/pkg/amounts"
	"github.com/GoldenEraGlobal/cryptog/pkg/bip32"
	"github.com/GoldenEraGlobal/cryptog/pkg/config"
	"github.com/GoldenEraGlobal/cryptog/pkg/crypto_util"
	"github.com/GoldenEraGlobal/cryptog/pkg/errno"
	"github.com/GoldenEraGlobal/cryptog/pkg/logger"
	"github.com/GoldenEraGlobal/cryptog/pkg/tx"
	"github.com/GoldenEraGlobal/cryptog/pkg/types"
	wallettypes "github.com/GoldenEraGlobal/cryptog/pkg/wallet/types"
)

var signCmd = &cobra.Command{
	Use:   "sign",
	Short: "Sign a transaction offline",
	Long: `Reads an unsigned transaction JSON file, derives the signing key from the
configured mnemonic and writes the signed transaction (raw RLP hex).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		inputFile, _ := cmd.Flags().GetString("input")
		outputFile, _ := cmd.Flags().GetString("output")

		data, err := os.ReadFile(inputFile)
		if err != nil {
			return fmt.Errorf("read input file: %w", err)
		}

		var unsigned wallettypes.UnsignedTransaction
		if err := json.Unmarshal(data, &unsigned); err != nil {
			return fmt.Errorf("parse transaction file: %w", err)
		}

		fmt.Println("\n================ Transaction to sign ================")
		fmt.Printf("Type:       %s\n", unsigned.Type)
		fmt.Printf("Network:    %s\n", unsigned.Network)
		if unsigned.Recipient != "" {
			fmt.Printf("Recipient:  %s\n", unsigned.Recipient)
		}
		if unsigned.Amount != "" {
			fmt.Printf("Amount:     %s\n", unsigned.Amount)
		}
		fmt.Printf("Fee:        %s\n", unsigned.Fee)
		fmt.Printf("Account:    %s/%d\n", bip32.AccountPathPrefix, unsigned.AccountIndex)
		fmt.Println("=====================================================")

		mnemonic := config.Global.Wallet.Mnemonic
		if mnemonic == "" {
			return errno.ErrInvalidMnemonic.Withf("set wallet.mnemonic or WALLET_MNEMONIC")
		}
		priv, err := bip32.DeriveAccount(mnemonic, config.Global.Wallet.Passphrase, unsigned.AccountIndex)
		if err != nil {
			return err
		}
		defer priv.Zeroize()

		signed, err := buildAndSign(&unsigned, priv)
		if err != nil {
			return err
		}

		raw, err := signed.Encode(true)
		if err != nil {
			return err
		}
		result := wallettypes.SignedTransaction{
			TxHash:    signed.Hash().Hex(),
			Sender:    signed.Sender().Hex(),
			Signature: signed.Signature().Hex(),
			Size:      signed.Size(),
			RawTx:     types.EncodeHex(raw),
		}

		outputData, _ := json.MarshalIndent(result, "", "  ")
		if err := os.WriteFile(outputFile, outputData, 0644); err != nil {
			return fmt.Errorf("write output file: %w", err)
		}

		logger.Info("transaction signed",
			zap.String("tx_hash", result.TxHash),
			zap.String("sender", result.Sender),
			zap.Uint32("size", result.Size))
		fmt.Printf("\nTxHash: %s\nSaved to: %s\n", result.TxHash, outputFile)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(signCmd)
	signCmd.Flags().StringP("input", "i", "unsigned.json", "unsigned transaction file")
	signCmd.Flags().StringP("output", "o", "signed.json", "signed transaction output file")
}

// buildAndSign maps the JSON request onto the builder and signs it.
func buildAndSign(u *wallettypes.UnsignedTransaction, priv *crypto_util.PrivateKey) (*tx.Tx, error) {
	b := tx.NewBuilder()

	switch u.Type {
	case "TRANSFER":
		b.Type(types.TxTransfer)
	case "BIP_CREATE":
		b.Type(types.TxBipCreate)
	case "BIP_VOTE":
		b.Type(types.TxBipVote)
	default:
		return nil, errno.ErrUnknownTxType.Withf("%q", u.Type)
	}

	switch u.Network {
	case "MAINNET":
		b.Network(types.Mainnet)
	case "TESTNET":
		b.Network(types.Testnet)
	case "":
		switch config.Global.Chain.Network {
		case "testnet":
			b.Network(types.Testnet)
		default:
			b.Network(types.Mainnet)
		}
	default:
		return nil, errno.ErrUnknownNetwork.Withf("%q", u.Network)
	}

	if u.Timestamp != 0 {
		b.Timestamp(u.Timestamp)
	}
	if u.Nonce != nil {
		b.Nonce(*u.Nonce)
	}
	if u.Recipient != "" {
		recipient, err := types.AddressFromHex(u.Recipient)
		if err != nil {
			return nil, err
		}
		b.Recipient(recipient)
	}
	if u.TokenAddress != "" {
		token, err := types.AddressFromHex(u.TokenAddress)
		if err != nil {
			return nil, err
		}
		b.TokenAddress(token)
	}
	if u.Amount != "" {
		amount, err := amounts.TokensDecimal(u.Amount)
		if err != nil {
			return nil, err
		}
		b.Amount(amount)
	}
	if u.Fee != "" {
		fee, err := amounts.TokensDecimal(u.Fee)
		if err != nil {
			return nil, err
		}
		b.Fee(fee)
	}
	if u.Message != "" {
		if u.HexMessage {
			msg, err := types.DecodeHex(u.Message)
			if err != nil {
				return nil, err
			}
			b.Message(msg)
		} else {
			b.MessageString(u.Message)
		}
	}
	if u.ReferenceHash != "" {
		ref, err := types.HashFromHex(u.ReferenceHash)
		if err != nil {
			return nil, err
		}
		b.ReferenceHash(ref)
	}
	if u.Vote != "" {
		switch u.Vote {
		case "APPROVAL":
			b.Payload(&tx.Vote{VoteType: types.VoteApproval})
		case "DISAPPROVAL":
			b.Payload(&tx.Vote{VoteType: types.VoteDisapproval})
		default:
			return nil, errno.ErrUnknownVoteType.Withf("%q", u.Vote)
		}
	}
	if u.PayloadRLP != "" {
		raw, err := types.DecodeHex(u.PayloadRLP)
		if err != nil {
			return nil, err
		}
		payload, err := tx.DecodePayload(raw)
		if err != nil {
			return nil, err
		}
		b.Payload(payload)
	}

	return b.Sign(priv)
}
