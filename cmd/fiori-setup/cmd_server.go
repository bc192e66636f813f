package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/YahorNovik/FioriMCP/pkg/mcpcheck"
)

var (
	serverURL     string
	serverStatus  int
	serverTimeout time.Duration
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Check that the MCP server answers its health endpoint",
	Args:  cobra.NoArgs,
	RunE:  runServerCheck,
}

func init() {
	serverCmd.Flags().StringVar(&serverURL, "url", mcpcheck.DefaultURL, "health endpoint URL")
	serverCmd.Flags().IntVar(&serverStatus, "status", 200, "expected HTTP status code")
	serverCmd.Flags().DurationVar(&serverTimeout, "timeout", mcpcheck.DefaultTimeout, "request timeout")
	rootCmd.AddCommand(serverCmd)
}

func runServerCheck(_ *cobra.Command, _ []string) error {
	c := &mcpcheck.Check{
		URL:            serverURL,
		ExpectedStatus: serverStatus,
		Timeout:        serverTimeout,
	}

	return runCheck(c)
}
