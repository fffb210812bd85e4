package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/GoldenEraGlobal/cryptog/pkg/config"
	"github.com/GoldenEraGlobal/cryptog/pkg/logger"
)

// rootCmd is the base command; subcommands attach themselves in their init.
var rootCmd = &cobra.Command{
	Use:   "cryptog-cli",
	Short: "GoldenEra transaction toolkit",
	Long: `Offline toolkit for the GoldenEra network.
Derives BIP-39/44 keys, builds and signs transactions, decodes raw
transaction bytes and regenerates the cross-implementation test vectors.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Init()
		logger.Init(config.Global.App.Env)
	},
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
