package credential

import (
	"errors"
	"testing"

	"github.com/xdg/claude-run/internal/config"
)

func TestFileStore(t *testing.T) {
	st := config.Default()
	st.SetProviderBaseURL("custom", "https://relay.example.com")
	s := NewFileStore(st)

	if _, err := s.Get("custom"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get() on empty store error = %v, want ErrNotFound", err)
	}

	if err := s.Set("custom", "sk-c"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := s.Get("custom")
	if err != nil || got != "sk-c" {
		t.Fatalf("Get() = %q, %v", got, err)
	}
	if st.ProviderKey("custom") != "sk-c" {
		t.Error("FileStore should write through to the state")
	}

	if err := s.Delete("custom"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := s.Get("custom"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete error = %v, want ErrNotFound", err)
	}
	if st.ProviderBaseURL("custom") != "https://relay.example.com" {
		t.Error("Delete should keep the saved base URL")
	}
}
