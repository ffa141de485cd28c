package term

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
)

func TestPrint(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Print("hello")

	if buf.String() != "hello" {
		t.Errorf("Print() = %q, want %q", buf.String(), "hello")
	}
}

func TestPrintf(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Printf("count: %d", 42)

	if buf.String() != "count: 42" {
		t.Errorf("Printf() = %q, want %q", buf.String(), "count: 42")
	}
}

func TestPrintln(t *testing.T) {
	defer Reset()

	var buf bytes.Buffer
	SetOutput(&buf)

	Println("hello", "world")

	if buf.String() != "hello world\n" {
		t.Errorf("Println() = %q, want %q", buf.String(), "hello world\n")
	}
}

func TestWarnAndError(t *testing.T) {
	defer Reset()
	SetColorEnabled(false)

	var buf bytes.Buffer
	SetErrOutput(&buf)

	Warn("could not write %s", "~/.bashrc")
	Error("launch failed")

	want := "Warning: could not write ~/.bashrc\nError: launch failed\n"
	if buf.String() != want {
		t.Errorf("stderr = %q, want %q", buf.String(), want)
	}
}

func TestSilent(t *testing.T) {
	defer Reset()

	var out, errOut bytes.Buffer
	SetOutput(&out)
	SetErrOutput(&errOut)
	SetSilent(true)

	if !IsSilent() {
		t.Fatal("IsSilent() = false after SetSilent(true)")
	}

	Print("a")
	Printf("b")
	Println("c")
	Warn("still shown")

	if out.Len() != 0 {
		t.Errorf("silent mode should suppress stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "still shown") {
		t.Errorf("silent mode should not suppress warnings, got %q", errOut.String())
	}
	if Stdout() != io.Discard {
		t.Error("Stdout() should be io.Discard when silent")
	}
}

func TestStyles_NoColor(t *testing.T) {
	defer Reset()
	SetColorEnabled(false)

	for name, fn := range map[string]func(string) string{
		"Bold": Bold, "Dim": Dim, "Green": Green, "Red": Red,
		"Yellow": Yellow, "Blue": Blue, "Cyan": Cyan,
	} {
		if got := fn("x"); got != "x" {
			t.Errorf("%s(\"x\") = %q with color off, want plain", name, got)
		}
	}
}

func TestStyles_Color(t *testing.T) {
	defer Reset()
	SetColorEnabled(true)

	for name, fn := range map[string]func(string) string{
		"Bold": Bold, "Dim": Dim, "Green": Green, "Red": Red,
		"Yellow": Yellow, "Blue": Blue, "Cyan": Cyan,
	} {
		got := fn("ok")
		if !strings.Contains(got, "\x1b[") || !strings.Contains(got, "ok") {
			t.Errorf("%s(\"ok\") = %q with color on, want styled", name, got)
		}
	}
	if got := Green("ok"); !strings.Contains(got, "32") {
		t.Errorf("Green() = %q, want the ANSI green code", got)
	}
}

func TestBox_ContainsTitleAndLines(t *testing.T) {
	defer Reset()
	SetColorEnabled(false)

	out := Box("Summary", "Provider: GLM", "Mode: temp")

	for _, want := range []string{"Summary", "Provider: GLM", "Mode: temp"} {
		if !strings.Contains(out, want) {
			t.Errorf("Box() missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Split(out, "\n"); len(lines) != 5 {
		t.Errorf("Box() should be 3 content lines plus borders, got %d lines:\n%s", len(lines), out)
	}
}

func TestBox_NoEscapesWithoutColor(t *testing.T) {
	defer Reset()
	SetColorEnabled(false)

	if out := Box("Summary", "line"); strings.Contains(out, "\x1b[") {
		t.Errorf("Box() = %q, want no escape sequences with color off", out)
	}
}

func TestColorEnabled_FollowsSetting(t *testing.T) {
	defer Reset()

	SetColorEnabled(true)
	if !ColorEnabled() {
		t.Error("ColorEnabled() = false after SetColorEnabled(true)")
	}
	SetColorEnabled(false)
	if ColorEnabled() {
		t.Error("ColorEnabled() = true after SetColorEnabled(false)")
	}
}

func TestDetectColor_FollowsIsTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	t.Setenv("NO_COLOR", "")
	if got, want := detectColor(f), IsTerminal(f); got != want {
		t.Errorf("detectColor(file) = %v, IsTerminal = %v", got, want)
	}

	t.Setenv("NO_COLOR", "1")
	if detectColor(f) {
		t.Error("detectColor() = true with NO_COLOR set")
	}
}
