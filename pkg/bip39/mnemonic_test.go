package bip39

import (
	"encoding/hex"
	"testing"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

func TestGenerateMnemonic(t *testing.T) {
	svc := NewMnemonicService()

	mnemonic, err := svc.GenerateMnemonic(128)
	if err != nil {
		t.Fatalf("generate 12-word mnemonic: %v", err)
	}
	if !svc.ValidateMnemonic(mnemonic) {
		t.Errorf("generated mnemonic failed validation: %s", mnemonic)
	}

	mnemonic24, err := svc.GenerateMnemonic(256)
	if err != nil {
		t.Fatalf("generate 24-word mnemonic: %v", err)
	}
	if !svc.ValidateMnemonic(mnemonic24) {
		t.Errorf("generated mnemonic failed validation: %s", mnemonic24)
	}
}

func TestValidateMnemonic(t *testing.T) {
	svc := NewMnemonicService()

	if !svc.ValidateMnemonic(testMnemonic) {
		t.Errorf("fixture mnemonic should validate")
	}
	if svc.ValidateMnemonic("abandon abandon abandon") {
		t.Errorf("truncated mnemonic should not validate")
	}
	if svc.ValidateMnemonic("not real bip39 words at all here okay fine sure yes no maybe") {
		t.Errorf("non-wordlist mnemonic should not validate")
	}
}

func TestMnemonicToSeed(t *testing.T) {
	svc := NewMnemonicService()

	// BIP-39 reference seed of the fixture phrase with an empty passphrase.
	seed := svc.MnemonicToSeed(testMnemonic, "")
	want := "5eb00bbddcf069084889a8ab9155568165f5c453ccb85e70811aaed6f6da5fc19a5ac40b389cd370d086206dec8aa6c43daea6690f20ad3d8d48b2d2ce9e38e4"
	if got := hex.EncodeToString(seed); got != want {
		t.Errorf("seed mismatch:\n got %s\nwant %s", got, want)
	}

	// A passphrase changes the seed.
	other := svc.MnemonicToSeed(testMnemonic, "TREZOR")
	if hex.EncodeToString(other) == want {
		t.Errorf("passphrase should change the seed")
	}
}
