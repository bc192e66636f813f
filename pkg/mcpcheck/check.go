package mcpcheck

import (
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"github.com/YahorNovik/FioriMCP/pkg/check"
)

const (
	// DefaultURL is the health endpoint of the generated Fiori MCP server.
	DefaultURL = "http://localhost:3000/health"

	// DefaultTimeout bounds the single health request. No retries are made.
	DefaultTimeout = 5 * time.Second

	// DefaultStartCommand is what a human runs to start the MCP server.
	DefaultStartCommand = "node generated-fiori-mcp-http-server.js"
)

// maxBodyBytes caps how much of the health response body is read.
const maxBodyBytes = 64 * 1024

// HTTPClient abstracts HTTP requests for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// RealHTTPClient uses the real net/http package.
type RealHTTPClient struct {
	Timeout time.Duration
}

// Do executes an HTTP request.
func (c *RealHTTPClient) Do(req *http.Request) (*http.Response, error) {
	client := &http.Client{Timeout: c.Timeout}
	return client.Do(req)
}

// Check probes the MCP server health endpoint.
type Check struct {
	URL            string        // health endpoint (default: DefaultURL)
	ExpectedStatus int           // expected HTTP status (default: 200)
	Timeout        time.Duration // request timeout (default: 5s)
	StartCommand   string        // hint shown when the server is unreachable
	Client         HTTPClient    // injected for testing
}

// Run executes the health probe. Every transport failure (refused
// connection, timeout, DNS error, malformed response) collapses into one
// "not running" outcome; the cause stays on Result.Err.
func (c *Check) Run() check.Result {
	target := c.URL
	if target == "" {
		target = DefaultURL
	}

	result := check.Result{
		Name: "mcp: " + target,
	}

	parsedURL, err := url.Parse(target)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return result.Failf("invalid URL: %s", target)
	}

	expectedStatus := c.ExpectedStatus
	if expectedStatus == 0 {
		expectedStatus = http.StatusOK
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	startCommand := c.StartCommand
	if startCommand == "" {
		startCommand = DefaultStartCommand
	}

	client := c.Client
	if client == nil {
		client = &RealHTTPClient{Timeout: timeout}
	}

	req, err := http.NewRequest(http.MethodGet, target, http.NoBody)
	if err != nil {
		return result.Failf("failed to create request: %v", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		result.Fail("server is not running", err)
		result.AddHint("start it with: " + startCommand)
		return result
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	_ = resp.Body.Close()

	if resp.StatusCode != expectedStatus {
		return result.Failf("status %d, expected %d", resp.StatusCode, expectedStatus)
	}

	result.Status = check.StatusOK
	result.AddDetailf("status %d", resp.StatusCode)

	// The generated server reports {"status": "..."} on its health route.
	if status := gjson.GetBytes(body, "status"); status.Exists() {
		result.AddDetailf("server status: %s", status.String())
	}

	return result
}
