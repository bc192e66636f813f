package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	resetFlags(rootCmd)
	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Value.Type() == "stringSlice" || f.Value.Type() == "intSlice" {
			_ = f.Value.Set("")
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// fakePython writes an executable shell script that stands in for the
// Python interpreter. The default script accepts every import.
func fakePython(t *testing.T, script string) string {
	t.Helper()
	if script == "" {
		script = `if [ "$1" = "--version" ]; then echo "Python 3.11.4"; fi
exit 0`
	}
	path := filepath.Join(t.TempDir(), "python3")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return path
}

// absentPath returns a path that is guaranteed not to exist, for --env-file.
func absentPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "absent")
}

func captureStdout(t *testing.T, f func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w

	f()

	_ = w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestVersionFlag(t *testing.T) {
	output, err := executeCommand("--version")
	require.NoError(t, err)
	assert.Contains(t, output, "fiori-setup")
}

func TestHelpFlag(t *testing.T) {
	output, err := executeCommand("--help")
	require.NoError(t, err)
	assert.Contains(t, output, "fiori-setup")
	for _, sub := range []string{"deps", "server", "key"} {
		assert.Contains(t, output, sub)
	}
}

func TestServerCommand(t *testing.T) {
	t.Run("healthy endpoint", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		_, err := executeCommand("server", "--url", ts.URL)
		assert.NoError(t, err)
	})

	t.Run("wrong status code", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer ts.Close()

		_, err := executeCommand("server", "--url", ts.URL)
		assert.ErrorIs(t, err, ErrCheckFailed)
	})

	t.Run("expected status code", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))
		defer ts.Close()

		_, err := executeCommand("server", "--url", ts.URL, "--status", "204")
		assert.NoError(t, err)
	})

	t.Run("server not running", func(t *testing.T) {
		_, err := executeCommand("server", "--url", "http://127.0.0.1:1/health", "--timeout", "200ms")
		assert.ErrorIs(t, err, ErrCheckFailed)
	})

	t.Run("rejects positional args", func(t *testing.T) {
		_, err := executeCommand("server", "http://localhost:3000/health")
		assert.Error(t, err)
	})
}

func TestKeyCommand(t *testing.T) {
	t.Run("key already set", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test1234567890")
		_, err := executeCommand("key", "--env-file", absentPath(t))
		assert.NoError(t, err)
	})

	t.Run("missing key with no-input", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "")
		require.NoError(t, os.Unsetenv("OPENAI_API_KEY"))

		_, err := executeCommand("key", "--no-input", "--env-file", absentPath(t))
		assert.ErrorIs(t, err, ErrCheckFailed)
	})

	t.Run("custom variable", func(t *testing.T) {
		t.Setenv("FIORI_ALT_KEY", "sk-alt")
		_, err := executeCommand("key", "--var", "FIORI_ALT_KEY", "--env-file", absentPath(t))
		assert.NoError(t, err)
	})
}

func TestDepsCommand(t *testing.T) {
	t.Run("all packages importable", func(t *testing.T) {
		_, err := executeCommand("deps", "--python", fakePython(t, ""))
		assert.NoError(t, err)
	})

	t.Run("interpreter missing", func(t *testing.T) {
		_, err := executeCommand("deps", "--python", "/nonexistent/python3")
		assert.ErrorIs(t, err, ErrCheckFailed)
	})

	t.Run("one package missing", func(t *testing.T) {
		script := `case "$2" in *langgraph*) exit 1 ;; esac
exit 0`
		_, err := executeCommand("deps", "--python", fakePython(t, script))
		assert.ErrorIs(t, err, ErrCheckFailed)
	})

	t.Run("min-python enforced", func(t *testing.T) {
		_, err := executeCommand("deps", "--python", fakePython(t, ""), "--min-python", "3.10")
		assert.NoError(t, err)

		_, err = executeCommand("deps", "--python", fakePython(t, ""), "--min-python", "3.12")
		assert.ErrorIs(t, err, ErrCheckFailed)
	})

	t.Run("invalid min-python", func(t *testing.T) {
		_, err := executeCommand("deps", "--python", fakePython(t, ""), "--min-python", "not-a-version")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrCheckFailed)
	})

	t.Run("custom package list", func(t *testing.T) {
		script := `case "$2" in "import requests") exit 0 ;; esac
exit 1`
		_, err := executeCommand("deps", "--python", fakePython(t, script), "--package", "requests")
		assert.NoError(t, err)
	})
}

func TestSetupPipeline(t *testing.T) {
	t.Run("all checks pass", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"status":"healthy"}`))
		}))
		defer ts.Close()

		t.Setenv("OPENAI_API_KEY", "sk-test1234567890")
		python := fakePython(t, "")
		envFile := absentPath(t)

		var err error
		stdout := captureStdout(t, func() {
			_, err = executeCommand("--python", python, "--url", ts.URL, "--env-file", envFile)
		})

		require.NoError(t, err)
		assert.Contains(t, stdout, "Setup Summary")
		assert.Contains(t, stdout, "python run_tests.py")
		assert.Contains(t, stdout, "python demo.py")
	})

	t.Run("failing server fails the run", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "sk-test1234567890")
		python := fakePython(t, "")
		envFile := absentPath(t)

		var err error
		stdout := captureStdout(t, func() {
			_, err = executeCommand(
				"--python", python,
				"--url", "http://127.0.0.1:1/health",
				"--timeout", "200ms",
				"--env-file", envFile,
			)
		})

		assert.ErrorIs(t, err, ErrSetupIncomplete)
		assert.Contains(t, stdout, "Setup Summary")
		assert.NotContains(t, stdout, "python run_tests.py")
		assert.Contains(t, stdout, "Please fix the issues above before running tests")
	})

	t.Run("missing key fails the run without hanging", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		t.Setenv("OPENAI_API_KEY", "")
		require.NoError(t, os.Unsetenv("OPENAI_API_KEY"))

		var err error
		captureStdout(t, func() {
			_, err = executeCommand(
				"--python", fakePython(t, ""),
				"--url", ts.URL,
				"--env-file", absentPath(t),
				"--no-input",
			)
		})

		assert.ErrorIs(t, err, ErrSetupIncomplete)
	})

	t.Run("identical reruns give identical outcomes", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer ts.Close()

		t.Setenv("OPENAI_API_KEY", "sk-test1234567890")
		python := fakePython(t, "")
		envFile := absentPath(t)

		for i := 0; i < 2; i++ {
			var err error
			captureStdout(t, func() {
				_, err = executeCommand("--python", python, "--url", ts.URL, "--env-file", envFile)
			})
			assert.NoError(t, err, "run %d", i+1)
		}
	})

	t.Run("rejects positional args", func(t *testing.T) {
		_, err := executeCommand("unexpected-arg")
		assert.Error(t, err)
	})
}

func TestSubcommandHelp(t *testing.T) {
	for _, subcmd := range []string{"deps", "server", "key"} {
		t.Run(subcmd, func(t *testing.T) {
			output, err := executeCommand(subcmd, "--help")
			require.NoError(t, err)
			assert.NotEmpty(t, output)
		})
	}
}
