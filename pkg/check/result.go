package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single setup check.
type Result struct {
	Name    string   // e.g., "deps: python packages", "env: OPENAI_API_KEY"
	Status  Status   // OK or FAIL
	Details []string // human-readable details
	Hints   []string // remediation commands for the user to run, never executed
	Err     error    // underlying error for failures
}

// OK returns true if the check passed.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
