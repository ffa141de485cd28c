package cmd

import (
	"errors"
	"testing"

	"github.com/xdg/claude-run/internal/launcher"
)

func TestExitCodeError(t *testing.T) {
	t.Run("NewExitCodeError creates error with code", func(t *testing.T) {
		err := NewExitCodeError(42)
		if err.Code != 42 {
			t.Errorf("Code = %d, want 42", err.Code)
		}
	})

	t.Run("Error returns formatted message", func(t *testing.T) {
		err := NewExitCodeError(42)
		want := "exit code 42"
		if err.Error() != want {
			t.Errorf("Error() = %q, want %q", err.Error(), want)
		}
	})

	t.Run("errors.As matches wrapped ExitCodeError", func(t *testing.T) {
		inner := NewExitCodeError(5)
		wrapped := errors.Join(errors.New("wrapper"), inner)
		var exitErr *ExitCodeError
		if !errors.As(wrapped, &exitErr) {
			t.Fatal("errors.As failed to match wrapped ExitCodeError")
		}
		if exitErr.Code != 5 {
			t.Errorf("Code = %d, want 5", exitErr.Code)
		}
	})
}

func TestLaunchExitError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantSame bool
	}{
		{
			name:     "child exit",
			err:      &launcher.ExitError{Command: "claude", Code: 3},
			wantCode: 3,
		},
		{
			name:     "other error",
			err:      errors.New("boom"),
			wantSame: true,
		},
		{
			name:     "nil",
			err:      nil,
			wantSame: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := launchExitError(tc.err)
			if tc.wantSame {
				if got != tc.err {
					t.Errorf("launchExitError() = %v, want %v", got, tc.err)
				}
				return
			}
			var exitErr *ExitCodeError
			if !errors.As(got, &exitErr) || exitErr.Code != tc.wantCode {
				t.Errorf("launchExitError() = %v, want exit code %d", got, tc.wantCode)
			}
		})
	}
}
