package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestWrite_CreatesDirAndFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")
	t.Setenv(DirEnvVar, dir)

	if err := Write(Default()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	info, err := os.Stat(filepath.Join(dir, "config.json"))
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if runtime.GOOS != "windows" && info.Mode().Perm() != 0o600 {
		t.Errorf("file mode = %o, want 600", info.Mode().Perm())
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only config.json, found %d entries", len(entries))
	}
}

func TestWrite_Overwrites(t *testing.T) {
	t.Setenv(DirEnvVar, t.TempDir())

	first := Default()
	first.SetProviderKey("glm", "old")
	if err := Write(first); err != nil {
		t.Fatal(err)
	}

	second := Default()
	second.SetProviderKey("glm", "new")
	if err := Write(second); err != nil {
		t.Fatal(err)
	}

	got, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if got.ProviderKey("glm") != "new" {
		t.Errorf("glm key = %q, want new", got.ProviderKey("glm"))
	}
}

func TestReset(t *testing.T) {
	t.Setenv(DirEnvVar, t.TempDir())

	if err := Reset(); err != nil {
		t.Fatalf("Reset() on missing file error = %v", err)
	}
	if err := Write(Default()); err != nil {
		t.Fatal(err)
	}
	if err := Reset(); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if _, err := os.Stat(Path()); !os.IsNotExist(err) {
		t.Errorf("config file still exists after Reset: %v", err)
	}
}
