package credential

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"

	"github.com/xdg/claude-run/internal/config"
)

func TestKeyringStore_RoundTrip(t *testing.T) {
	keyring.MockInit()
	s := NewKeyringStore()

	if _, err := s.Get("glm"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() on empty keychain error = %v, want ErrNotFound", err)
	}

	if err := s.Set("glm", "sk-g"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := s.Get("glm")
	if err != nil || got != "sk-g" {
		t.Fatalf("Get() = %q, %v", got, err)
	}

	if err := s.Set("glm", "sk-g2"); err != nil {
		t.Fatalf("Set() overwrite error = %v", err)
	}
	if got, _ := s.Get("glm"); got != "sk-g2" {
		t.Errorf("Get() after overwrite = %q", got)
	}

	if err := s.Delete("glm"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := s.Delete("glm"); err != nil {
		t.Errorf("Delete() of missing key error = %v", err)
	}
}

func TestKeyringStore_ServiceOverride(t *testing.T) {
	keyring.MockInit()
	t.Setenv(ServiceEnvVar, "claude-run-test")

	s := NewKeyringStore()
	if err := s.Set("kimi", "sk-k"); err != nil {
		t.Fatal(err)
	}

	got, err := keyring.Get("claude-run-test", "kimi")
	if err != nil || got != "sk-k" {
		t.Errorf("key not stored under override service: %q, %v", got, err)
	}
}

func TestOpen_FileByDefault(t *testing.T) {
	s, err := Open(config.Default())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, ok := s.(*FileStore); !ok {
		t.Errorf("Open() = %T, want *FileStore", s)
	}
}

func TestOpen_Keyring(t *testing.T) {
	keyring.MockInit()

	s, err := Open(&config.State{KeyStorage: config.KeyStorageKeyring})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if _, ok := s.(*KeyringStore); !ok {
		t.Errorf("Open() = %T, want *KeyringStore", s)
	}
}

func TestOpen_KeyringUnavailableFallsBack(t *testing.T) {
	keyring.MockInitWithError(errors.New("no secret service"))
	defer keyring.MockInit()

	s, err := Open(&config.State{KeyStorage: config.KeyStorageKeyring})
	if err == nil {
		t.Error("Open() should report the keychain failure")
	}
	if _, ok := s.(*FileStore); !ok {
		t.Errorf("Open() = %T, want *FileStore fallback", s)
	}
}
