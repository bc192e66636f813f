package keysetup

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/YahorNovik/FioriMCP/pkg/check"
)

const (
	// DefaultVar is the environment variable holding the agent's API key.
	DefaultVar = "OPENAI_API_KEY"

	// DefaultEnvFile is loaded into the process env (without overriding
	// already-set variables) before the lookup, so the documented
	// ".env method" works within the same session.
	DefaultEnvFile = ".env"

	// KeyURL is where users create an API key.
	KeyURL = "https://platform.openai.com/api-keys"

	// previewLen is how many leading characters of the key are echoed back.
	previewLen = 10
)

// Check verifies that the API key variable is configured, prompting the
// user for a value when it is not.
type Check struct {
	Name     string    // env var name (default: OPENAI_API_KEY)
	EnvFile  string    // .env path tried before the lookup (default: .env)
	NoInput  bool      // never prompt, fail instead
	Env      Env       // injected for testing
	Prompter Prompter  // injected for testing
	Out      io.Writer // instructions/prompt destination (default: os.Stdout)
}

// Run executes the environment check. This is the only check with a side
// effect: a key entered at the prompt is written into the current
// process's environment table so downstream consumers in this session see
// it. Nothing is written to disk.
func (c *Check) Run() check.Result {
	name := c.Name
	if name == "" {
		name = DefaultVar
	}
	envFile := c.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	env := c.Env
	if env == nil {
		env = &RealEnv{}
	}
	out := c.Out
	if out == nil {
		out = os.Stdout
	}

	result := check.Result{
		Name: "env: " + name,
	}

	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err == nil {
			result.AddDetailf("loaded: %s", envFile)
		}
	}

	if value, ok := env.LookupEnv(name); ok && value != "" {
		result.Status = check.StatusOK
		result.AddDetailf("value: %s", preview(value))
		return result
	}

	printInstructions(out, name)

	if c.NoInput {
		result.Fail("skipping API key setup", fmt.Errorf("%s is not set", name))
		return result
	}

	prompter := c.Prompter
	if prompter == nil {
		prompter = &RealPrompter{Out: out}
	}

	entered, err := prompter.Prompt(fmt.Sprintf("Enter your %s (or press Enter to skip): ", name))
	if err != nil {
		return result.Failf("could not read input: %v", err)
	}

	entered = strings.TrimSpace(entered)
	if entered == "" {
		result.Fail("skipping API key setup", errors.New("no key provided"))
		return result
	}

	if err := env.Setenv(name, entered); err != nil {
		return result.Failf("could not set %s: %v", name, err)
	}

	result.Status = check.StatusOK
	result.AddDetail("key set for this session")
	return result
}

// preview truncates a key to its first characters plus an ellipsis so the
// full secret never reaches the terminal.
func preview(value string) string {
	if len(value) <= previewLen {
		return value
	}
	return value[:previewLen] + "..."
}

func printInstructions(out io.Writer, name string) {
	fmt.Fprintf(out, "\nTo set your %s:\n", name)
	fmt.Fprintf(out, "1. Get your API key from: %s\n", KeyURL)
	fmt.Fprintln(out, "2. Set it using one of these methods:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "   PowerShell:")
	fmt.Fprintf(out, "   $env:%s=\"sk-your-key-here\"\n", name)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "   Command Prompt:")
	fmt.Fprintf(out, "   set %s=sk-your-key-here\n", name)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "   Or create a .env file with:")
	fmt.Fprintf(out, "   %s=sk-your-key-here\n", name)
	fmt.Fprintln(out)
}
