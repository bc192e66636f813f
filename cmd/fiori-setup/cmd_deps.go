package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/YahorNovik/FioriMCP/pkg/depcheck"
	"github.com/YahorNovik/FioriMCP/pkg/version"
)

var (
	depsPython    string
	depsPackages  []string
	depsMinPython string
	depsTimeout   time.Duration
)

var depsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Check that the required Python packages are installed",
	Args:  cobra.NoArgs,
	RunE:  runDepsCheck,
}

func init() {
	depsCmd.Flags().StringVar(&depsPython, "python", depcheck.DefaultInterpreter, "python interpreter to probe")
	depsCmd.Flags().StringSliceVar(&depsPackages, "package", nil, "package to check (comma-separated, default: the agent's requirements)")
	depsCmd.Flags().StringVar(&depsMinPython, "min-python", "", "minimum python version required")
	depsCmd.Flags().DurationVar(&depsTimeout, "timeout", depcheck.DefaultTimeout, "per-package probe timeout")
	rootCmd.AddCommand(depsCmd)
}

func runDepsCheck(_ *cobra.Command, _ []string) error {
	minPython, err := version.ParseOptional(depsMinPython)
	if err != nil {
		return fmt.Errorf("invalid --min-python version: %w", err)
	}

	c := &depcheck.Check{
		Interpreter: depsPython,
		Packages:    depsPackages,
		MinVersion:  minPython,
		Timeout:     depsTimeout,
		Runner:      &depcheck.RealRunner{},
	}

	return runCheck(c)
}
