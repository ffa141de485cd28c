package config

import (
	"fmt"

	"github.com/xdg/claude-run/internal/provider"
)

// Validate checks field values that later steps rely on.
func Validate(st *State) error {
	switch st.LastUsed.Mode {
	case "", ModeTemp, ModePerm:
	default:
		return fmt.Errorf("lastUsed.mode: must be %q or %q, got %q", ModeTemp, ModePerm, st.LastUsed.Mode)
	}

	switch st.KeyStorage {
	case "", KeyStorageFile, KeyStorageKeyring:
	default:
		return fmt.Errorf("keyStorage: must be %q or %q, got %q", KeyStorageFile, KeyStorageKeyring, st.KeyStorage)
	}

	if st.LastUsed.BaseURL != "" {
		if err := provider.ValidateBaseURL(st.LastUsed.BaseURL); err != nil {
			return fmt.Errorf("lastUsed.baseUrl: %w", err)
		}
	}
	for id, ps := range st.Providers {
		if ps.BaseURL == "" {
			continue
		}
		if err := provider.ValidateBaseURL(ps.BaseURL); err != nil {
			return fmt.Errorf("providers.%s.baseUrl: %w", id, err)
		}
	}
	return nil
}
