package envvar

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/xdg/claude-run/internal/clog"
)

// CommandRunner runs an external command to completion.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands with os/exec, capturing output for errors.
type ExecRunner struct{}

// Run executes name with args and includes its output in any error.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(out.String()); msg != "" {
			return fmt.Errorf("%s: %w: %s", name, err, msg)
		}
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// SetxPersister stores variables in the Windows user environment.
// New console windows see them; the current one does not.
type SetxPersister struct {
	Runner CommandRunner
}

// NewSetxPersister returns a SetxPersister. A nil runner uses ExecRunner.
func NewSetxPersister(r CommandRunner) *SetxPersister {
	if r == nil {
		r = ExecRunner{}
	}
	return &SetxPersister{Runner: r}
}

const setxTarget = "user environment (setx)"

// Persist runs setx once per variable, stopping at the first failure.
func (p *SetxPersister) Persist(ctx context.Context, vars []Var) (Result, error) {
	res := Result{Target: setxTarget}
	for _, v := range vars {
		if err := p.Runner.Run(ctx, "setx", v.Name, v.Value); err != nil {
			return res, fmt.Errorf("setx %s failed, administrator rights may be required: %w", v.Name, err)
		}
		clog.Info("envvar: setx %s", v.Name)
	}
	return res, nil
}

// Remove deletes the variables from HKCU\Environment.
func (p *SetxPersister) Remove(ctx context.Context, names []string) (Result, error) {
	res := Result{Target: setxTarget}
	var failed []string
	for _, name := range names {
		if err := p.Runner.Run(ctx, "reg", "delete", `HKCU\Environment`, "/F", "/V", name); err != nil {
			clog.Warn("envvar: reg delete %s: %v", name, err)
			failed = append(failed, name)
		}
	}
	if len(failed) > 0 {
		return res, fmt.Errorf("could not remove %s from the user environment", strings.Join(failed, ", "))
	}
	return res, nil
}
