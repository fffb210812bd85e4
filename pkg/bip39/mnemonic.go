// Package bip39 wraps BIP-39 mnemonic handling: generation, validation and
// seed derivation.
package bip39

import (
	"github.com/tyler-smith/go-bip39"

	"github.com/GoldenEraGlobal/cryptog/pkg/errno"
)

// MnemonicService provides mnemonic phrase operations.
type MnemonicService struct{}

func NewMnemonicService() *MnemonicService {
	return &MnemonicService{}
}

// GenerateMnemonic creates a new random mnemonic.
// bitSize is the entropy size: 128 (12 words) or 256 (24 words).
func (s *MnemonicService) GenerateMnemonic(bitSize int) (string, error) {
	entropy, err := bip39.NewEntropy(bitSize)
	if err != nil {
		return "", errno.ErrInvalidMnemonic.Withf("entropy: %v", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", errno.ErrInvalidMnemonic.Withf("%v", err)
	}
	return mnemonic, nil
}

// ValidateMnemonic checks the phrase against the BIP-39 wordlist and checksum.
func (s *MnemonicService) ValidateMnemonic(mnemonic string) bool {
	return bip39.IsMnemonicValid(mnemonic)
}

// MnemonicToSeed derives the BIP-39 seed. password is the optional
// passphrase; pass "" when none is set.
func (s *MnemonicService) MnemonicToSeed(mnemonic string, password string) []byte {
	return bip39.NewSeed(mnemonic, password)
}
