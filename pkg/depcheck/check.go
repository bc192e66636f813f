package depcheck

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/YahorNovik/FioriMCP/pkg/check"
	"github.com/YahorNovik/FioriMCP/pkg/version"
)

// DefaultInterpreter is the Python interpreter probed when none is configured.
const DefaultInterpreter = "python3"

// DefaultTimeout bounds each per-package import probe.
const DefaultTimeout = 10 * time.Second

// DefaultPackages lists the Python packages the Fiori Testing Agent imports.
// Order is significant: packages are probed and reported in this order.
var DefaultPackages = []string{
	"langchain",
	"langchain_openai",
	"langgraph",
	"openai",
	"requests",
}

// Check verifies that the Python interpreter and the agent's required
// packages are available.
type Check struct {
	Interpreter string           // python executable (default: python3)
	Packages    []string         // packages to import (default: DefaultPackages)
	MinVersion  *version.Version // minimum interpreter version (optional)
	Timeout     time.Duration    // per-probe timeout (default: 10s)
	Runner      Runner           // injected for testing
}

// Run executes the dependency check. Each package is probed with
// "python -c 'import <pkg>'"; any probe failure counts the package as
// missing rather than propagating an error. When packages are missing,
// the result carries a single pip install hint listing them in probe order.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name: "deps: python packages",
	}

	interpreter := c.Interpreter
	if interpreter == "" {
		interpreter = DefaultInterpreter
	}
	packages := c.Packages
	if len(packages) == 0 {
		packages = DefaultPackages
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	path, err := c.Runner.LookPath(interpreter)
	if err != nil {
		return result.Failf("%s not found in PATH", interpreter)
	}
	result.AddDetailf("python: %s", path)

	if c.MinVersion != nil {
		if failed := c.checkInterpreterVersion(interpreter, timeout, &result); failed {
			return result
		}
	}

	var missing []string
	for _, pkg := range packages {
		if c.importable(interpreter, pkg, timeout) {
			result.AddDetailf("%s: ok", pkg)
		} else {
			result.AddDetailf("%s: missing", pkg)
			missing = append(missing, pkg)
		}
	}

	if len(missing) > 0 {
		result.Status = check.StatusFail
		result.Err = fmt.Errorf("missing packages: %s", strings.Join(missing, " "))
		result.AddHint("pip install " + strings.Join(missing, " "))
		return result
	}

	result.Status = check.StatusOK
	return result
}

// importable probes one package. Spawn errors, timeouts and non-zero
// exits all collapse into "missing".
func (c *Check) importable(interpreter, pkg string, timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	_, _, err := c.Runner.RunContext(ctx, interpreter, "-c", "import "+pkg)
	return err == nil
}

func (c *Check) checkInterpreterVersion(interpreter string, timeout time.Duration, result *check.Result) bool {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	stdout, stderr, err := c.Runner.RunContext(ctx, interpreter, "--version")
	if err != nil {
		result.Failf("version command failed: %v", err)
		return true
	}

	// Python 2 printed its version on stderr
	out := strings.TrimSpace(stdout)
	if out == "" {
		out = strings.TrimSpace(stderr)
	}

	parsed, err := version.Extract(out)
	if err != nil {
		result.Failf("could not parse interpreter version from %q", out)
		return true
	}

	result.AddDetailf("version: %s", parsed)

	if !parsed.GreaterThanOrEqual(*c.MinVersion) {
		result.Fail(
			fmt.Sprintf("version %s < minimum %s", parsed, c.MinVersion),
			fmt.Errorf("interpreter version %s below minimum %s", parsed, c.MinVersion),
		)
		return true
	}

	return false
}
