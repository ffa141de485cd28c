package wizard

import (
	"errors"
	"fmt"

	"github.com/xdg/claude-run/internal/config"
	"github.com/xdg/claude-run/internal/credential"
	"github.com/xdg/claude-run/internal/envvar"
	"github.com/xdg/claude-run/internal/provider"
)

// ErrNoSavedConfig is returned when there is no usable saved configuration.
var ErrNoSavedConfig = errors.New("no saved configuration; run claude-run to set one up")

// ResolveSaved rebuilds the last applied settings from the state and the
// credential store. A saved configuration exists only when a provider was
// recorded and a key is stored for it.
//
// The base URL comes from, in order: lastUsed.baseUrl, the custom relay's
// stored URL, the catalog entry.
func ResolveSaved(cat *provider.Catalog, st *config.State, store credential.Store) (envvar.Settings, error) {
	lu := st.LastUsed
	if lu.Provider == "" {
		return envvar.Settings{}, ErrNoSavedConfig
	}

	key, err := store.Get(lu.Provider)
	if errors.Is(err, credential.ErrNotFound) {
		return envvar.Settings{}, ErrNoSavedConfig
	}
	if err != nil {
		return envvar.Settings{}, fmt.Errorf("read saved key for %s: %w", lu.Provider, err)
	}

	p, known := cat.Lookup(lu.Provider)

	baseURL := lu.BaseURL
	if baseURL == "" && lu.Provider == provider.CustomID {
		baseURL = st.ProviderBaseURL(provider.CustomID)
	}
	if baseURL == "" && known {
		baseURL = p.BaseURL
	}
	if baseURL == "" {
		return envvar.Settings{}, fmt.Errorf("saved provider %q has no base URL: %w", lu.Provider, ErrNoSavedConfig)
	}

	mode, err := envvar.ParseMode(lu.Mode)
	if err != nil {
		mode = envvar.ModeTemp
	}

	name := lu.ModelName
	if name == "" {
		if known {
			name = p.Label(baseURL)
		} else {
			name = lu.Provider
		}
	}

	keyEnv := provider.DefaultKeyEnv
	if known {
		keyEnv = p.CredentialEnv()
	}

	return envvar.Settings{
		Provider:     lu.Provider,
		ProviderName: name,
		BaseURL:      baseURL,
		Mode:         mode,
		APIKey:       key,
		KeyEnv:       keyEnv,
	}, nil
}
