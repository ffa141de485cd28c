package cmd

import (
	"errors"
	"fmt"

	"github.com/xdg/claude-run/internal/launcher"
)

// ExitCodeError carries a process exit code back to main.
type ExitCodeError struct {
	Code int
}

// NewExitCodeError returns an ExitCodeError for code.
func NewExitCodeError(code int) *ExitCodeError {
	return &ExitCodeError{Code: code}
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// launchExitError converts a launched command's non-zero exit into an
// ExitCodeError so claude-run exits with the same code. Other errors are
// returned unchanged.
func launchExitError(err error) error {
	var exitErr *launcher.ExitError
	if errors.As(err, &exitErr) {
		return NewExitCodeError(exitErr.Code)
	}
	return err
}
