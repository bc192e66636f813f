package output

import (
	"fmt"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/YahorNovik/FioriMCP/pkg/check"
)

var (
	green  = "\033[32m"
	red    = "\033[31m"
	yellow = "\033[33m"
	dim    = "\033[2m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, yellow, dim, reset = "", "", "", "", ""
	}
}

// PrintHeader outputs a section title with an underline.
func PrintHeader(title string) {
	fmt.Printf("%s\n%s\n", title, strings.Repeat("=", len(title)))
}

// PrintResult outputs a check result with colored status.
// Details are indented to align under the check name; hints follow
// the details so remediation commands always come last.
func PrintResult(r check.Result) {
	var indent string
	if r.OK() {
		fmt.Printf("%s[OK]%s %s\n", green, reset, formatLabel(r.Name))
		indent = "     "
	} else {
		fmt.Printf("%s[FAIL]%s %s\n", red, reset, formatLabel(r.Name))
		indent = "       "
	}
	for _, d := range r.Details {
		fmt.Printf("%s%s\n", indent, formatLabel(d))
	}
	for _, h := range r.Hints {
		fmt.Printf("%s%s\n", indent, h)
	}
}

// SummaryLine is one row of the final setup report.
type SummaryLine struct {
	Label  string
	Passed bool
}

// PrintSummary outputs the final pass/fail table. The lines must be the
// results computed in this run, in check order.
func PrintSummary(lines []SummaryLine) {
	fmt.Println()
	PrintHeader("Setup Summary")
	for _, l := range lines {
		if l.Passed {
			fmt.Printf("%-14s %s[OK]%s\n", l.Label+":", green, reset)
		} else {
			fmt.Printf("%-14s %s[FAIL]%s\n", l.Label+":", red, reset)
		}
	}
}

// PrintNextSteps outputs the follow-up commands after a fully passing run.
func PrintNextSteps(commands []string) {
	fmt.Printf("\n%sSetup complete!%s You can now run:\n", green, reset)
	for _, c := range commands {
		fmt.Printf("   %s\n", c)
	}
}

// PrintWarning outputs a warning line.
func PrintWarning(msg string) {
	fmt.Printf("\n%s%s%s\n", yellow, msg, reset)
}

// formatLabel dims the "key:" prefix of a "key: value" line.
func formatLabel(s string) string {
	idx := strings.Index(s, ": ")
	if idx == -1 {
		return s
	}
	return dim + s[:idx+1] + reset + s[idx+1:]
}
