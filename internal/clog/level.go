// Package clog provides leveled operational logging for claude-run.
// This is distinct from user-facing output (see internal/term): the wizard
// talks to the user through term, and records what it did through clog.
//
// Log levels:
//   - Debug: Verbose diagnostic information, only with --debug
//   - Info: Normal operational events (config loaded, variables applied)
//   - Warn: Best-effort steps that failed (profile write, config save)
//   - Error: Failures that abort the wizard
//
// Output destinations:
//   - File: enabled with --debug or --log-file
//   - Stderr: only with --verbose, so log lines never interleave with prompts
package clog

import "strings"

// Level represents the severity of a log message.
type Level int

const (
	// LevelDebug is for verbose diagnostic information.
	LevelDebug Level = iota
	// LevelInfo is for normal operational events.
	LevelInfo
	// LevelWarn is for unexpected conditions that don't stop the wizard.
	LevelWarn
	// LevelError is for failures that stop the wizard.
	LevelError
)

// String returns the uppercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a level string (case-insensitive).
// Unrecognized strings return LevelInfo and ok=false.
func ParseLevel(s string) (level Level, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, true
	case "info":
		return LevelInfo, true
	case "warn", "warning":
		return LevelWarn, true
	case "error", "err":
		return LevelError, true
	default:
		return LevelInfo, false
	}
}
