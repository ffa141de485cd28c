package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/xdg/claude-run/internal/pathutil"
)

// DirEnvVar overrides the configuration directory.
const DirEnvVar = "CLAUDE_RUN_HOME"

var (
	dirMu       sync.Mutex
	dirOverride string
)

// SetDir overrides the configuration directory for this process. An empty
// string restores the default lookup.
func SetDir(dir string) {
	dirMu.Lock()
	defer dirMu.Unlock()
	dirOverride = dir
}

// Dir returns the configuration directory: the SetDir override, then
// $CLAUDE_RUN_HOME, then ~/.claude-run.
func Dir() string {
	dirMu.Lock()
	override := dirOverride
	dirMu.Unlock()

	if override != "" {
		return pathutil.ExpandHome(override)
	}
	if env := os.Getenv(DirEnvVar); env != "" {
		return pathutil.ExpandHome(env)
	}
	return pathutil.ExpandHome("~/.claude-run")
}

// EnsureDir creates the configuration directory with user-only access.
func EnsureDir() error {
	if err := os.MkdirAll(Dir(), 0o700); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}
	return nil
}

// Path returns the state file path.
func Path() string {
	return filepath.Join(Dir(), "config.json")
}

// CatalogPath returns the optional user provider catalog path.
func CatalogPath() string {
	return filepath.Join(Dir(), "providers.yaml")
}
