package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command. The tool has a single operation, so
// extraction runs directly on the root command.
var RootCmd = &cobra.Command{
	Use:           "proof-data",
	Short:         "Extract and format Noir proof artifacts for Soroban contract invocation",
	RunE:          runExtract,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. It only needs to happen once, called by
// main.main().
func Execute() {
	err := RootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var proofsDir string

func init() {
	RootCmd.PersistentFlags().StringVar(&proofsDir, "proofs", "", "Directory containing the generated proof artifacts")

	viper.SetEnvPrefix("proof_data")
	viper.SetDefault("proofs_dir", "proofs")
	if err := viper.BindEnv("proofs_dir"); err != nil {
		panic(err)
	}

	RootCmd.CompletionOptions.DisableDefaultCmd = true
}

// resolveProofsDir picks the artifacts root: the --proofs flag wins, then the
// PROOF_DATA_PROOFS_DIR environment variable, then the conventional "proofs".
func resolveProofsDir() string {
	if proofsDir != "" {
		return proofsDir
	}
	return viper.GetString("proofs_dir")
}
