package term

import (
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

var colorOn atomic.Bool

// renderer styles all term output. Its color profile follows colorOn.
var renderer = lipgloss.NewRenderer(os.Stdout)

func init() {
	SetColorEnabled(detectColor(os.Stdout))
}

func detectColor(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return IsTerminal(f)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetColorEnabled overrides color detection.
func SetColorEnabled(enabled bool) {
	colorOn.Store(enabled)
	if enabled {
		renderer.SetColorProfile(termenv.ANSI)
	} else {
		renderer.SetColorProfile(termenv.Ascii)
	}
}

// ColorEnabled reports whether styled output is enabled.
func ColorEnabled() bool {
	return colorOn.Load()
}

var (
	boldStyle   = renderer.NewStyle().Bold(true)
	dimStyle    = renderer.NewStyle().Faint(true)
	greenStyle  = renderer.NewStyle().Foreground(lipgloss.Color("2"))
	redStyle    = renderer.NewStyle().Foreground(lipgloss.Color("1"))
	yellowStyle = renderer.NewStyle().Foreground(lipgloss.Color("3"))
	blueStyle   = renderer.NewStyle().Foreground(lipgloss.Color("4"))
	cyanStyle   = renderer.NewStyle().Foreground(lipgloss.Color("6"))
)

func render(style lipgloss.Style, s string) string {
	if !colorOn.Load() {
		return s
	}
	return style.Render(s)
}

// Bold returns s in bold.
func Bold(s string) string { return render(boldStyle, s) }

// Dim returns s dimmed. Used for hints and masked values.
func Dim(s string) string { return render(dimStyle, s) }

// Green returns s in green.
func Green(s string) string { return render(greenStyle, s) }

// Red returns s in red.
func Red(s string) string { return render(redStyle, s) }

// Yellow returns s in yellow.
func Yellow(s string) string { return render(yellowStyle, s) }

// Blue returns s in blue.
func Blue(s string) string { return render(blueStyle, s) }

// Cyan returns s in cyan.
func Cyan(s string) string { return render(cyanStyle, s) }

// Box renders a rounded box with a title line followed by body lines.
func Box(title string, lines ...string) string {
	titleStyle := renderer.NewStyle().Bold(true)
	box := renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if colorOn.Load() {
		titleStyle = titleStyle.Foreground(lipgloss.Color("6"))
		box = box.BorderForeground(lipgloss.Color("6"))
	}

	body := make([]string, 0, len(lines)+1)
	if title != "" {
		body = append(body, titleStyle.Render(title))
	}
	body = append(body, lines...)
	return box.Render(strings.Join(body, "\n"))
}

// Banner prints a boxed title to stdout followed by a blank line.
func Banner(title string) {
	Println(Box(title))
	Println()
}
