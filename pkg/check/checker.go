package check

// Checker is implemented by all setup checks.
// Each check probes one aspect of the Fiori Testing Agent environment
// and returns a Result indicating success or failure. Checks never
// return errors or panic; causes are carried on Result.Err.
//
// Implementations:
//   - depcheck.Check: verifies the Python interpreter and required packages
//   - mcpcheck.Check: probes the MCP server health endpoint
//   - keysetup.Check: verifies (and optionally collects) the API key
type Checker interface {
	Run() Result
}
