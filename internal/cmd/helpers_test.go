package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/xdg/claude-run/internal/config"
	"github.com/xdg/claude-run/internal/envvar"
	"github.com/xdg/claude-run/internal/launcher"
	"github.com/xdg/claude-run/internal/testutil"
)

type mockPersister struct {
	persisted []envvar.Var
	removed   []string
}

func (m *mockPersister) Persist(_ context.Context, vars []envvar.Var) (envvar.Result, error) {
	m.persisted = vars
	return envvar.Result{Target: "~/.bashrc"}, nil
}

func (m *mockPersister) Remove(_ context.Context, names []string) (envvar.Result, error) {
	m.removed = names
	return envvar.Result{Target: "~/.bashrc"}, nil
}

type mockLauncher struct {
	specs []launcher.Spec
	err   error
}

func (m *mockLauncher) Launch(_ context.Context, spec launcher.Spec) error {
	m.specs = append(m.specs, spec)
	return m.err
}

// testEnv isolates the config directory and the variables the wizard sets,
// and captures term output.
func testEnv(t *testing.T) (stdout, stderr *bytes.Buffer) {
	t.Helper()
	testutil.IsolateConfig(t)
	testutil.ClearProviderEnv(t)
	return testutil.CaptureTerm(t)
}

// writeSavedState writes a state with a saved glm configuration.
func writeSavedState(t *testing.T, key string) *config.State {
	t.Helper()
	st := config.Default()
	st.SetProviderKey("glm", key)
	st.RecordLastUsed(config.LastUsed{
		Provider:  "glm",
		ModelName: "GLM",
		BaseURL:   "https://open.bigmodel.cn/api/anthropic",
		Mode:      config.ModeTemp,
		Timestamp: "2026-10-01 09:00:00",
	})
	if err := config.Write(st); err != nil {
		t.Fatalf("config.Write() error = %v", err)
	}
	return st
}
