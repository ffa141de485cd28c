// Package prompt provides interfaces and implementations for interactive
// user prompts, designed for testability with mock implementations.
//
// The stdin implementations share one *bufio.Reader (see NewLineReader) so
// answers piped in ahead of time are not swallowed by an earlier prompt's
// read buffer.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrTooManyAttempts is returned when input keeps failing validation.
var ErrTooManyAttempts = errors.New("too many invalid attempts")

// MaxAttempts bounds re-prompting in InputPrompter.
const MaxAttempts = 3

// NewLineReader wraps r for use by the stdin prompters. Passing an existing
// *bufio.Reader returns it unchanged.
func NewLineReader(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// readLine reads one line, treating EOF after partial input as a line.
// EOF with no input at all is returned as io.ErrUnexpectedEOF so a closed
// stdin does not silently accept every default.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line == "" {
				return "", fmt.Errorf("failed to read input: %w", io.ErrUnexpectedEOF)
			}
			return strings.TrimSpace(line), nil
		}
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Prompter presents numbered options and returns the selection.
type Prompter interface {
	// Prompt displays a prompt with numbered options and returns the
	// zero-based index of the selected option. If the user presses Enter
	// without input, defaultIdx is returned.
	Prompt(prompt string, options []string, defaultIdx int) (int, error)
}

// StdinPrompter implements Prompter on a line reader and writer.
type StdinPrompter struct {
	In  *bufio.Reader
	Out io.Writer
}

// NewStdinPrompter creates a StdinPrompter that reads from r and writes to w.
func NewStdinPrompter(r io.Reader, w io.Writer) *StdinPrompter {
	return &StdinPrompter{In: NewLineReader(r), Out: w}
}

// Prompt displays the prompt and a 1-indexed option list, marks the default,
// and reads the user's choice.
func (p *StdinPrompter) Prompt(prompt string, options []string, defaultIdx int) (int, error) {
	if len(options) == 0 {
		return 0, fmt.Errorf("no options provided")
	}
	if defaultIdx < 0 || defaultIdx >= len(options) {
		return 0, fmt.Errorf("default index %d out of range [0, %d)", defaultIdx, len(options))
	}

	_, _ = fmt.Fprintln(p.Out, prompt)
	for i, opt := range options {
		suffix := ""
		if i == defaultIdx {
			suffix = " (default)"
		}
		_, _ = fmt.Fprintf(p.Out, "  %d. %s%s\n", i+1, opt, suffix)
	}
	_, _ = fmt.Fprintf(p.Out, "Enter selection [%d]: ", defaultIdx+1)

	input, err := readLine(p.In)
	if err != nil {
		return 0, err
	}
	if input == "" {
		return defaultIdx, nil
	}

	selection, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("invalid selection %q: must be a number", input)
	}
	idx := selection - 1
	if idx < 0 || idx >= len(options) {
		return 0, fmt.Errorf("selection %d out of range (1-%d)", selection, len(options))
	}
	return idx, nil
}

// YesNoPrompter asks yes/no questions.
type YesNoPrompter interface {
	// PromptYesNo displays a yes/no prompt and returns the user's response.
	// If the user presses Enter without input, defaultYes determines the result.
	PromptYesNo(prompt string, defaultYes bool) (bool, error)
}

// StdinYesNoPrompter implements YesNoPrompter on a line reader and writer.
type StdinYesNoPrompter struct {
	In  *bufio.Reader
	Out io.Writer
}

// NewStdinYesNoPrompter creates a StdinYesNoPrompter that reads from r and writes to w.
func NewStdinYesNoPrompter(r io.Reader, w io.Writer) *StdinYesNoPrompter {
	return &StdinYesNoPrompter{In: NewLineReader(r), Out: w}
}

// PromptYesNo accepts y/yes and n/no in any case. Empty input returns
// defaultYes.
func (p *StdinYesNoPrompter) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	_, _ = fmt.Fprint(p.Out, prompt)

	input, err := readLine(p.In)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(input) {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	case "n", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid input %q: expected y/n", input)
	}
}

// InputPrompter reads a free-form line.
type InputPrompter interface {
	// PromptInput displays prompt and reads a trimmed line. If validate is
	// non-nil, invalid input is reported and the prompt repeated, up to
	// MaxAttempts times.
	PromptInput(prompt string, validate func(string) error) (string, error)
}

// StdinInputPrompter implements InputPrompter on a line reader and writer.
type StdinInputPrompter struct {
	In  *bufio.Reader
	Out io.Writer
}

// NewStdinInputPrompter creates a StdinInputPrompter that reads from r and writes to w.
func NewStdinInputPrompter(r io.Reader, w io.Writer) *StdinInputPrompter {
	return &StdinInputPrompter{In: NewLineReader(r), Out: w}
}

// PromptInput reads a line, re-prompting while validate rejects it.
func (p *StdinInputPrompter) PromptInput(prompt string, validate func(string) error) (string, error) {
	for attempt := 1; attempt <= MaxAttempts; attempt++ {
		_, _ = fmt.Fprint(p.Out, prompt)

		input, err := readLine(p.In)
		if err != nil {
			return "", err
		}
		if validate == nil {
			return input, nil
		}
		verr := validate(input)
		if verr == nil {
			return input, nil
		}
		_, _ = fmt.Fprintf(p.Out, "  %v\n", verr)
	}
	return "", ErrTooManyAttempts
}
