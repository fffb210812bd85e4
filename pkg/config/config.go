package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Wallet WalletConfig `mapstructure:"wallet"`
	Chain  ChainConfig  `mapstructure:"chain"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type WalletConfig struct {
	// Mnemonic is normally injected through the WALLET_MNEMONIC
	// environment variable rather than written to disk.
	Mnemonic     string `mapstructure:"mnemonic"`
	Passphrase   string `mapstructure:"passphrase"`
	AccountIndex uint32 `mapstructure:"account_index"`
}

type ChainConfig struct {
	// Network is the default network for built transactions:
	// "mainnet" or "testnet".
	Network string `mapstructure:"network"`
}

var Global Config

func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("Warning: Config file not found, using defaults and environment variables")
		} else {
			log.Fatalf("Fatal error config file: %s \n", err)
		}
	}

	if err := viper.Unmarshal(&Global); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("app.env", "development")
	// Registering the key lets Unmarshal pick up WALLET_MNEMONIC.
	viper.SetDefault("wallet.mnemonic", "")
	viper.SetDefault("wallet.account_index", 0)
	viper.SetDefault("chain.network", "mainnet")
}
