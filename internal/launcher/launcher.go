// Package launcher starts the Claude CLI as a child process with the
// configured environment and the terminal handed over to it.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/xdg/claude-run/internal/clog"
)

// DefaultCommand is the CLI started after setup.
const DefaultCommand = "claude"

// InstallHint tells users how to get the CLI when it is missing.
const InstallHint = "npm install -g @anthropic-ai/claude-code"

// ErrNotInstalled is returned when the command is not on PATH.
var ErrNotInstalled = errors.New("command not found on PATH")

// ExitError reports a non-zero exit from the child.
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Command, e.Code)
}

// Spec describes what to run.
type Spec struct {
	Command string
	Args    []string
	// Env is the complete child environment. Nil inherits os.Environ().
	Env []string
}

// Launcher runs a Spec to completion.
type Launcher interface {
	Launch(ctx context.Context, spec Spec) error
}

// ExecLauncher runs commands with os/exec, wiring the child to Stdin,
// Stdout and Stderr.
type ExecLauncher struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	// LookPath resolves the command. Defaults to exec.LookPath.
	LookPath func(string) (string, error)
}

// New returns an ExecLauncher attached to the process's standard streams.
func New() *ExecLauncher {
	return &ExecLauncher{
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		LookPath: exec.LookPath,
	}
}

// Launch resolves spec.Command, runs it and waits. A missing executable
// returns an error wrapping ErrNotInstalled; a non-zero exit returns
// *ExitError.
func (l *ExecLauncher) Launch(ctx context.Context, spec Spec) error {
	command := spec.Command
	if command == "" {
		command = DefaultCommand
	}

	lookPath := l.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	path, err := lookPath(command)
	if err != nil {
		clog.Debug("launcher: lookup %s: %v", command, err)
		return fmt.Errorf("%s: %w", command, ErrNotInstalled)
	}

	cmd := exec.CommandContext(ctx, path, spec.Args...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr
	cmd.Env = spec.Env

	clog.Info("launcher: starting %s %s", path, strings.Join(spec.Args, " "))
	err = cmd.Run()
	if err == nil {
		clog.Info("launcher: %s exited cleanly", command)
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		clog.Info("launcher: %s exited with code %d", command, exitErr.ExitCode())
		return &ExitError{Command: command, Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("start %s: %w", command, err)
}

// ManualInstructions returns the lines printed when launching fails.
func ManualInstructions(command string) []string {
	if command == "" {
		command = DefaultCommand
	}
	return []string{
		"To start it yourself, run in this terminal:",
		"  " + command,
		"",
		"To check the environment first:",
		`  eval "$(claude-run env)" && echo $ANTHROPIC_BASE_URL`,
	}
}
