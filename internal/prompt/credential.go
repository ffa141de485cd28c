package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// CredentialReader reads secrets without echoing them.
type CredentialReader interface {
	// ReadCredential displays a prompt and reads a credential with hidden
	// input where the terminal allows it.
	ReadCredential(prompt string) (string, error)
}

// TerminalCredentialReader reads with echo disabled when In is a terminal.
// Otherwise, such as when input is piped, it reads a plain line from Lines.
type TerminalCredentialReader struct {
	In    *os.File
	Lines *bufio.Reader
	Out   io.Writer
}

// NewTerminalCredentialReader creates a TerminalCredentialReader. lines must
// be the same reader the other prompters use for in.
func NewTerminalCredentialReader(in *os.File, lines *bufio.Reader, out io.Writer) *TerminalCredentialReader {
	return &TerminalCredentialReader{In: in, Lines: lines, Out: out}
}

// ReadCredential displays the prompt and reads the credential.
func (r *TerminalCredentialReader) ReadCredential(prompt string) (string, error) {
	_, _ = fmt.Fprint(r.Out, prompt)

	fd := int(r.In.Fd())
	if !term.IsTerminal(fd) {
		return readLine(r.Lines)
	}

	credential, err := term.ReadPassword(fd)
	if err != nil {
		return "", fmt.Errorf("failed to read credential: %w", err)
	}
	// ReadPassword swallows the newline
	_, _ = fmt.Fprintln(r.Out)

	return string(credential), nil
}
