// Package bip32 implements BIP-32/44 hierarchical key derivation over the
// account path m/44'/60'/0'/0/{index}.
package bip32

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/GoldenEraGlobal/cryptog/pkg/bip39"
	"github.com/GoldenEraGlobal/cryptog/pkg/crypto_util"
	"github.com/GoldenEraGlobal/cryptog/pkg/errno"
)

// AccountPathPrefix is the fixed BIP-44 prefix; the account index is appended
// as the final non-hardened segment.
const AccountPathPrefix = "m/44'/60'/0'/0"

// Keychain implements ExtendedKey around hdkeychain.ExtendedKey.
type Keychain struct {
	key *hdkeychain.ExtendedKey
}

func (k *Keychain) String() string {
	return k.key.String()
}

func (k *Keychain) ECPubKey() (*btcec.PublicKey, error) {
	return k.key.ECPubKey()
}

func (k *Keychain) ECPrivKey() (*btcec.PrivateKey, error) {
	return k.key.ECPrivKey()
}

func (k *Keychain) Derive(index uint32) (ExtendedKey, error) {
	childKey, err := k.key.Derive(index)
	if err != nil {
		return nil, fmt.Errorf("derive child key: %w", err)
	}
	return &Keychain{key: childKey}, nil
}

func (k *Keychain) IsPrivate() bool {
	return k.key.IsPrivate()
}

func (k *Keychain) Neuter() (ExtendedKey, error) {
	neuterKey, err := k.key.Neuter()
	if err != nil {
		return nil, fmt.Errorf("neuter key: %w", err)
	}
	return &Keychain{key: neuterKey}, nil
}

// Wallet implements HDWallet.
type Wallet struct {
	masterKey *Keychain
}

// NewMasterKeyFromSeed builds the master key from a BIP-39 seed.
func NewMasterKeyFromSeed(seed []byte) (*Wallet, error) {
	if len(seed) < 16 || len(seed) > 64 {
		return nil, errno.ErrInvalidSeed.Withf("%d bytes", len(seed))
	}

	// The version bytes of the serialized form are irrelevant here; the
	// wallet only ever exports raw EC keys.
	masterKey, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, errno.ErrInvalidSeed.Withf("%v", err)
	}

	return &Wallet{masterKey: &Keychain{key: masterKey}}, nil
}

func (w *Wallet) MasterKey() ExtendedKey {
	return w.masterKey
}

// DerivePath parses a derivation path and derives the key at it.
// Accepted forms: m/44'/60'/0'/0/0 and m/44h/60h/0h/0/0.
func (w *Wallet) DerivePath(path string) (ExtendedKey, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return w.masterKey, nil
	}

	path = strings.TrimPrefix(path, "m/")

	var currentKey ExtendedKey = w.masterKey
	for _, segment := range strings.Split(path, "/") {
		hardened := false
		if strings.HasSuffix(segment, "'") || strings.HasSuffix(segment, "h") {
			hardened = true
			segment = segment[:len(segment)-1]
		}

		val, err := strconv.ParseUint(segment, 10, 32)
		if err != nil {
			return nil, errno.ErrInvalidPath.Withf("segment %q", segment)
		}
		index := uint32(val)
		if hardened {
			index += hdkeychain.HardenedKeyStart
		}

		currentKey, err = currentKey.Derive(index)
		if err != nil {
			return nil, errno.ErrInvalidPath.Withf("index %d: %v", index, err)
		}
	}

	return currentKey, nil
}

// DeriveAccount derives the private key for an account index from a mnemonic:
// BIP-39 seed, then m/44'/60'/0'/0/{index}.
func DeriveAccount(mnemonic, password string, index uint32) (*crypto_util.PrivateKey, error) {
	svc := bip39.NewMnemonicService()
	if !svc.ValidateMnemonic(mnemonic) {
		return nil, errno.ErrInvalidMnemonic
	}
	wallet, err := NewMasterKeyFromSeed(svc.MnemonicToSeed(mnemonic, password))
	if err != nil {
		return nil, err
	}
	key, err := wallet.DerivePath(fmt.Sprintf("%s/%d", AccountPathPrefix, index))
	if err != nil {
		return nil, err
	}
	ecPriv, err := key.ECPrivKey()
	if err != nil {
		return nil, errno.ErrInvalidPath.Withf("%v", err)
	}
	return crypto_util.PrivateKeyFromBytes(ecPriv.Serialize())
}
