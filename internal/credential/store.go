// Package credential stores provider API keys.
//
// Two backends exist:
//   - FileStore keeps keys in config.json next to the rest of the state.
//     This is the default and matches what earlier releases wrote.
//   - KeyringStore keeps keys in the system keychain (macOS Keychain,
//     Windows Credential Manager, Secret Service on Linux).
package credential

import (
	"errors"

	"github.com/xdg/claude-run/internal/config"
)

// ErrNotFound is returned when no key is stored for a provider.
var ErrNotFound = errors.New("no API key stored for provider")

// Store reads and writes API keys by provider ID.
type Store interface {
	Get(providerID string) (string, error)
	Set(providerID, key string) error
	Delete(providerID string) error
	Name() string
}

// FileStore stores keys in the in-memory state. Changes reach disk when the
// caller writes the state with config.Write.
type FileStore struct {
	State *config.State
}

// NewFileStore returns a FileStore backed by st.
func NewFileStore(st *config.State) *FileStore {
	return &FileStore{State: st}
}

// Get returns the key for providerID or ErrNotFound.
func (s *FileStore) Get(providerID string) (string, error) {
	key := s.State.ProviderKey(providerID)
	if key == "" {
		return "", ErrNotFound
	}
	return key, nil
}

// Set stores key for providerID.
func (s *FileStore) Set(providerID, key string) error {
	s.State.SetProviderKey(providerID, key)
	return nil
}

// Delete clears the key for providerID, keeping any saved base URL.
func (s *FileStore) Delete(providerID string) error {
	s.State.SetProviderKey(providerID, "")
	return nil
}

// Name describes the backend for user messages.
func (s *FileStore) Name() string {
	return "config file (" + config.Path() + ")"
}
