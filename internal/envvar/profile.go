package envvar

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xdg/claude-run/internal/clog"
	"github.com/xdg/claude-run/internal/pathutil"
)

// ProfileCandidates are checked in order; the first that exists is used.
var ProfileCandidates = []string{".bashrc", ".zshrc", ".bash_profile", ".profile"}

const (
	blockStart = "# >>> claude-run >>>"
	blockEnd   = "# <<< claude-run <<<"
)

// ProfilePersister writes export lines to a shell profile inside a marked
// block. Running it again replaces the block instead of appending another.
type ProfilePersister struct {
	Home string
	// Path forces a specific profile file instead of searching Home.
	Path string
	Now  func() time.Time
}

// NewProfilePersister returns a persister searching home for a profile.
func NewProfilePersister(home string) *ProfilePersister {
	return &ProfilePersister{Home: home, Now: time.Now}
}

// ProfilePath returns the file Persist will write: Path if set, else the
// first existing candidate in Home, else ~/.bashrc.
func (p *ProfilePersister) ProfilePath() string {
	if p.Path != "" {
		return pathutil.ExpandHome(p.Path)
	}
	for _, name := range ProfileCandidates {
		full := filepath.Join(p.Home, name)
		if _, err := os.Stat(full); err == nil {
			return full
		}
		clog.Debug("envvar: profile candidate %s not found", full)
	}
	return filepath.Join(p.Home, ProfileCandidates[0])
}

// Persist writes vars to the profile.
func (p *ProfilePersister) Persist(_ context.Context, vars []Var) (Result, error) {
	path := p.ProfilePath()
	res := Result{Target: pathutil.ContractHome(path)}

	content, perm, err := readProfile(path)
	if err != nil {
		return res, err
	}

	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	block := renderBlock(vars, now().UTC())

	updated, replaced := replaceBlock(content, block)
	if !replaced {
		updated = appendBlock(content, block)
	}

	if err := os.WriteFile(path, []byte(updated), perm); err != nil {
		return res, fmt.Errorf("write %s: %w", path, err)
	}
	clog.Info("envvar: wrote %d variables to %s (replaced=%v)", len(vars), path, replaced)
	return res, nil
}

// Remove deletes the claude-run block from the profile. The names are
// ignored; the block only ever holds variables this tool wrote.
func (p *ProfilePersister) Remove(_ context.Context, _ []string) (Result, error) {
	path := p.ProfilePath()
	res := Result{Target: pathutil.ContractHome(path)}

	content, perm, err := readProfile(path)
	if err != nil {
		return res, err
	}
	updated, found := replaceBlock(content, "")
	if !found {
		return res, nil
	}
	if err := os.WriteFile(path, []byte(updated), perm); err != nil {
		return res, fmt.Errorf("write %s: %w", path, err)
	}
	clog.Info("envvar: removed block from %s", path)
	return res, nil
}

// readProfile returns the file content and the mode to write it back with.
// A missing file reads as empty with user-only permissions, since the block
// holds an API key.
func readProfile(path string) (string, os.FileMode, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", 0o600, nil
	}
	if err != nil {
		return "", 0, fmt.Errorf("stat %s: %w", path, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), info.Mode().Perm(), nil
}

func renderBlock(vars []Var, at time.Time) string {
	var b strings.Builder
	b.WriteString(blockStart + "\n")
	fmt.Fprintf(&b, "# Claude Code environment variables - %s\n", at.Format(time.RFC3339))
	for _, v := range vars {
		fmt.Fprintf(&b, "export %s=%s\n", v.Name, shellQuote(v.Value))
	}
	b.WriteString(blockEnd + "\n")
	return b.String()
}

// replaceBlock swaps the first marked block in content for block. An empty
// block deletes it along with one preceding blank line.
func replaceBlock(content, block string) (string, bool) {
	start := strings.Index(content, blockStart)
	if start < 0 {
		return content, false
	}
	endRel := strings.Index(content[start:], blockEnd)
	if endRel < 0 {
		return content, false
	}
	end := start + endRel + len(blockEnd)
	if end < len(content) && content[end] == '\n' {
		end++
	}

	if block == "" && start > 0 && strings.HasSuffix(content[:start], "\n\n") {
		start--
	}
	return content[:start] + block + content[end:], true
}

func appendBlock(content, block string) string {
	switch {
	case content == "":
		return block
	case strings.HasSuffix(content, "\n"):
		return content + "\n" + block
	default:
		return content + "\n\n" + block
	}
}

// shellQuote wraps s in double quotes, escaping the characters that stay
// special inside them.
func shellQuote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "$", `\$`, "`", "\\`")
	return `"` + r.Replace(s) + `"`
}
