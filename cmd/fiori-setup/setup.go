package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/YahorNovik/FioriMCP/pkg/depcheck"
	"github.com/YahorNovik/FioriMCP/pkg/keysetup"
	"github.com/YahorNovik/FioriMCP/pkg/mcpcheck"
	"github.com/YahorNovik/FioriMCP/pkg/output"
	"github.com/YahorNovik/FioriMCP/pkg/version"
)

var (
	setupPython    string
	setupMinPython string
	setupURL       string
	setupTimeout   time.Duration
	setupEnvFile   string
	setupNoInput   bool
)

func init() {
	rootCmd.Flags().StringVar(&setupPython, "python", depcheck.DefaultInterpreter, "python interpreter to probe")
	rootCmd.Flags().StringVar(&setupMinPython, "min-python", "", "minimum python version required")
	rootCmd.Flags().StringVar(&setupURL, "url", mcpcheck.DefaultURL, "MCP server health endpoint")
	rootCmd.Flags().DurationVar(&setupTimeout, "timeout", mcpcheck.DefaultTimeout, "health request timeout")
	rootCmd.Flags().StringVar(&setupEnvFile, "env-file", keysetup.DefaultEnvFile, "path to .env file")
	rootCmd.Flags().BoolVar(&setupNoInput, "no-input", false, "never prompt for the API key")
}

// runSetup executes the full pipeline: dependencies, then the MCP server,
// then the environment, then the summary. All three checks always run;
// only the summary decides the exit code.
func runSetup(_ *cobra.Command, _ []string) error {
	minPython, err := version.ParseOptional(setupMinPython)
	if err != nil {
		return fmt.Errorf("invalid --min-python version: %w", err)
	}

	output.PrintHeader("Fiori Testing Agent Setup")

	deps := (&depcheck.Check{
		Interpreter: setupPython,
		MinVersion:  minPython,
		Runner:      &depcheck.RealRunner{},
	}).Run()
	output.PrintResult(deps)

	server := (&mcpcheck.Check{
		URL:     setupURL,
		Timeout: setupTimeout,
	}).Run()
	output.PrintResult(server)

	env := (&keysetup.Check{
		EnvFile: setupEnvFile,
		NoInput: setupNoInput,
	}).Run()
	output.PrintResult(env)

	output.PrintSummary([]output.SummaryLine{
		{Label: "Dependencies", Passed: deps.OK()},
		{Label: "MCP Server", Passed: server.OK()},
		{Label: "Environment", Passed: env.OK()},
	})

	if deps.OK() && server.OK() && env.OK() {
		output.PrintNextSteps([]string{
			"python run_tests.py",
			"python demo.py",
		})
		return nil
	}

	output.PrintWarning("Please fix the issues above before running tests")
	return ErrSetupIncomplete
}
