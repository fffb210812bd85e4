package bip32

import "github.com/btcsuite/btcd/btcec/v2"

// ExtendedKey wraps a BIP-32 extended key.
type ExtendedKey interface {
	// String returns the Base58-encoded key (xprv... / xpub...).
	String() string

	// ECPubKey returns the underlying EC public key.
	ECPubKey() (*btcec.PublicKey, error)
	// ECPrivKey returns the underlying EC private key, for signing.
	ECPrivKey() (*btcec.PrivateKey, error)
	// Derive derives the child key at index.
	Derive(index uint32) (ExtendedKey, error)
	// IsPrivate reports whether the key carries private material.
	IsPrivate() bool
	// Neuter returns the corresponding extended public key.
	Neuter() (ExtendedKey, error)
}

// HDWallet defines hierarchical deterministic wallet behavior.
type HDWallet interface {
	// MasterKey returns the master extended key.
	MasterKey() ExtendedKey
	// DerivePath derives the key at a path such as "m/44'/60'/0'/0/0".
	DerivePath(path string) (ExtendedKey, error)
}
