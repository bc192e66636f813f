package main

import (
	"github.com/spf13/cobra"

	"github.com/YahorNovik/FioriMCP/pkg/keysetup"
)

var (
	keyVar     string
	keyEnvFile string
	keyNoInput bool
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Check that the OpenAI API key is configured",
	Args:  cobra.NoArgs,
	RunE:  runKeyCheck,
}

func init() {
	keyCmd.Flags().StringVar(&keyVar, "var", keysetup.DefaultVar, "environment variable holding the key")
	keyCmd.Flags().StringVar(&keyEnvFile, "env-file", keysetup.DefaultEnvFile, "path to .env file")
	keyCmd.Flags().BoolVar(&keyNoInput, "no-input", false, "never prompt for the key")
	rootCmd.AddCommand(keyCmd)
}

func runKeyCheck(_ *cobra.Command, _ []string) error {
	c := &keysetup.Check{
		Name:    keyVar,
		EnvFile: keyEnvFile,
		NoInput: keyNoInput,
	}

	return runCheck(c)
}
