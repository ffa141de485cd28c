package clog

import (
	"io"
	"os"
)

// std is the global logger instance used by package-level functions.
var std = NewLogger()

// Options controls Configure.
type Options struct {
	// Path is the log file. Empty disables file logging.
	Path string
	// Debug lowers the level to LevelDebug.
	Debug bool
	// Verbose mirrors every logged line to stderr instead of nothing.
	Verbose bool
}

// Configure sets up the global logger.
func Configure(opts Options) error {
	level := LevelInfo
	if opts.Debug {
		level = LevelDebug
	}
	std.SetLevel(level)

	if opts.Verbose {
		std.SetErrOutput(os.Stderr, level)
	} else {
		std.SetErrOutput(nil, LevelWarn)
	}

	if opts.Path != "" {
		f, err := OpenLogFile(opts.Path)
		if err != nil {
			return err
		}
		std.SetFileOutput(f)
	}
	return nil
}

// Debug logs a debug message using the global logger.
func Debug(format string, args ...any) {
	std.Debug(format, args...)
}

// Info logs an informational message using the global logger.
func Info(format string, args ...any) {
	std.Info(format, args...)
}

// Warn logs a warning message using the global logger.
func Warn(format string, args ...any) {
	std.Warn(format, args...)
}

// Error logs an error message using the global logger.
func Error(format string, args ...any) {
	std.Error(format, args...)
}

// Close closes the file writer if it implements io.Closer.
func Close() error {
	std.mu.Lock()
	defer std.mu.Unlock()

	if closer, ok := std.fileWriter.(io.Closer); ok {
		err := closer.Close()
		std.fileWriter = nil
		return err
	}
	return nil
}

// Reset restores the global logger to its default state.
func Reset() {
	std = NewLogger()
}

// TestLogger returns a debug-level logger writing to w.
func TestLogger(w io.Writer) *Logger {
	l := NewLogger()
	l.SetFileOutput(w)
	l.SetLevel(LevelDebug)
	return l
}

// ReplaceGlobal replaces the global logger and returns the previous one.
func ReplaceGlobal(l *Logger) *Logger {
	old := std
	std = l
	return old
}
