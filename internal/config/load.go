package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/xdg/claude-run/internal/clog"
)

// Load reads the state file. A missing file yields Default(). A file that
// does not parse or validate also yields Default(), with a logged warning,
// so a damaged file never blocks the wizard; the next Write replaces it.
// Only read failures such as permission errors are returned.
func Load() (*State, error) {
	path := Path()
	clog.Debug("config: loading state from %s", path)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			clog.Debug("config: no state file, using defaults")
			return Default(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	st, err := Parse(data)
	if err == nil {
		err = Validate(st)
	}
	if err != nil {
		clog.Warn("config: ignoring unusable state file %s: %v", path, err)
		return Default(), nil
	}
	return st, nil
}
