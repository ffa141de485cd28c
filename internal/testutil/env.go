// Package testutil provides shared test helpers for claude-run tests.
package testutil

import (
	"bytes"
	"testing"

	"github.com/xdg/claude-run/internal/config"
	"github.com/xdg/claude-run/internal/term"
)

// ProviderVars are the variables the wizard sets in the process environment.
var ProviderVars = []string{"ANTHROPIC_BASE_URL", "ANTHROPIC_API_KEY"}

// IsolateConfig points the config directory at a fresh temp dir for the
// duration of the test and returns it.
func IsolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.DirEnvVar, dir)
	config.SetDir("")
	return dir
}

// ClearProviderEnv empties ProviderVars and restores them when the test
// ends, so tests that apply settings to the process do not leak.
func ClearProviderEnv(t *testing.T) {
	t.Helper()
	for _, name := range ProviderVars {
		t.Setenv(name, "")
	}
}

// CaptureTerm redirects term output to buffers with color off and restores
// the defaults when the test ends.
func CaptureTerm(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	stdout, stderr = &bytes.Buffer{}, &bytes.Buffer{}
	term.SetOutput(stdout)
	term.SetErrOutput(stderr)
	term.SetColorEnabled(false)
	t.Cleanup(term.Reset)
	return stdout, stderr
}
