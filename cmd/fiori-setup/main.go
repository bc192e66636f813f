package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "fiori-setup",
	Short: "Setup checks for the Fiori Testing Agent",
	Long: "fiori-setup verifies that the Python packages the Fiori Testing Agent\n" +
		"imports are installed, that the generated MCP server answers its health\n" +
		"endpoint, and that the OpenAI API key is configured. Run it bare for the\n" +
		"full sequence, or use a subcommand for a single check.",
	Version: Version,
	Args:    cobra.NoArgs,
	RunE:    runSetup,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
