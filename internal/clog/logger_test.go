package clog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := TestLogger(&buf)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	output := buf.String()
	for _, want := range []string{
		"[DEBUG] debug message",
		"[INFO] info message",
		"[WARN] warn message",
		"[ERROR] error message",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger()
	l.SetFileOutput(&buf)
	l.SetLevel(LevelWarn)

	l.Debug("hidden debug")
	l.Info("hidden info")
	l.Warn("shown warn")

	output := buf.String()
	if strings.Contains(output, "hidden") {
		t.Errorf("messages below level should be filtered, got: %s", output)
	}
	if !strings.Contains(output, "shown warn") {
		t.Errorf("expected warn message, got: %s", output)
	}
}

func TestLogger_FileLineHasTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := TestLogger(&buf)
	l.now = func() time.Time { return time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC) }

	l.Info("applied %d variables", 2)

	want := "2026-10-16T09:30:00Z [INFO] applied 2 variables\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestLogger_ErrMirrorRespectsLevel(t *testing.T) {
	var file, stderr bytes.Buffer
	l := TestLogger(&file)
	l.SetErrOutput(&stderr, LevelWarn)

	l.Info("only in file")
	l.Warn("in both")

	if strings.Contains(stderr.String(), "only in file") {
		t.Errorf("info should not reach stderr mirror, got: %s", stderr.String())
	}
	if stderr.String() != "[WARN] in both\n" {
		t.Errorf("stderr = %q, want %q", stderr.String(), "[WARN] in both\n")
	}
	if !strings.Contains(file.String(), "only in file") {
		t.Errorf("file should receive info, got: %s", file.String())
	}
}

func TestLogger_NoOutputs(t *testing.T) {
	l := NewLogger()
	// Must not panic with nothing attached.
	l.Error("nowhere")
}

func TestOpenLogFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "run.log")

	f, err := OpenLogFile(path)
	if err != nil {
		t.Fatalf("OpenLogFile() error = %v", err)
	}
	defer func() { _ = f.Close() }()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("log file mode = %o, want 600", info.Mode().Perm())
	}
}

func TestDefaultLogPath_XDGStateHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	want := filepath.Join(dir, "claude-run", "claude-run.log")
	if got := DefaultLogPath(); got != want {
		t.Errorf("DefaultLogPath() = %q, want %q", got, want)
	}
}
