package credential

import (
	"errors"
	"fmt"
	"os"

	"github.com/zalando/go-keyring"
)

// ServiceName is the keychain service keys are stored under. Each provider
// ID is an account within it.
const ServiceName = "claude-run"

// ServiceEnvVar overrides ServiceName, mainly for test isolation.
const ServiceEnvVar = "CLAUDE_RUN_KEYRING_SERVICE"

// KeyringStore stores keys in the system keychain.
type KeyringStore struct {
	service string
}

// NewKeyringStore returns a store using ServiceName, or $CLAUDE_RUN_KEYRING_SERVICE.
func NewKeyringStore() *KeyringStore {
	service := ServiceName
	if env := os.Getenv(ServiceEnvVar); env != "" {
		service = env
	}
	return &KeyringStore{service: service}
}

// Get returns the key for providerID or ErrNotFound.
func (s *KeyringStore) Get(providerID string) (string, error) {
	key, err := keyring.Get(s.service, providerID)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("keychain get %s: %w", providerID, err)
	}
	return key, nil
}

// Set stores key for providerID, replacing any previous key.
func (s *KeyringStore) Set(providerID, key string) error {
	if err := keyring.Set(s.service, providerID, key); err != nil {
		return fmt.Errorf("keychain set %s: %w", providerID, err)
	}
	return nil
}

// Delete removes the key for providerID. A missing key is not an error.
func (s *KeyringStore) Delete(providerID string) error {
	err := keyring.Delete(s.service, providerID)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("keychain delete %s: %w", providerID, err)
	}
	return nil
}

// Name describes the backend for user messages.
func (s *KeyringStore) Name() string {
	return "system keychain"
}

// Check verifies that the keychain is usable by writing, reading back and
// deleting a throwaway entry. Headless Linux without a Secret Service
// daemon fails here.
func (s *KeyringStore) Check() error {
	const account = "__claude-run-check__"
	if err := keyring.Set(s.service, account, "ok"); err != nil {
		return fmt.Errorf("keychain unavailable: %w", err)
	}
	defer func() { _ = keyring.Delete(s.service, account) }()

	if _, err := keyring.Get(s.service, account); err != nil {
		return fmt.Errorf("keychain unavailable: %w", err)
	}
	return nil
}
