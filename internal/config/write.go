package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Write replaces the state file with st. The directory is created if
// needed and the file is written with 0600 permissions via a temp file
// and rename, so an interrupted write never leaves a truncated file.
func Write(st *State) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	data, err := Marshal(st)
	if err != nil {
		return err
	}

	path := Path()
	tmp, err := os.CreateTemp(filepath.Dir(path), ".config-*.json")
	if err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write config: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Reset removes the state file. A missing file is not an error.
func Reset() error {
	if err := os.Remove(Path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove config: %w", err)
	}
	return nil
}
