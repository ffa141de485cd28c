// Package config stores claude-run's persisted state: the last configuration
// the wizard applied and the credentials saved per provider. The state is a
// JSON document at ~/.claude-run/config.json.
package config

// Mode values recorded in LastUsed.Mode.
const (
	ModeTemp = "temp"
	ModePerm = "perm"
)

// KeyStorage values.
const (
	KeyStorageFile    = "file"
	KeyStorageKeyring = "keyring"
)

// State is the document stored in config.json.
type State struct {
	LastUsed   LastUsed                 `json:"lastUsed" yaml:"lastUsed"`
	Providers  map[string]ProviderState `json:"providers" yaml:"providers"`
	KeyStorage string                   `json:"keyStorage,omitempty" yaml:"keyStorage,omitempty"`
}

// LastUsed records the most recent configuration the wizard applied.
type LastUsed struct {
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"`
	// ModelName is the label shown to the user, e.g. "GLM" or
	// "Custom (https://relay.example.com)".
	ModelName string `json:"modelName,omitempty" yaml:"modelName,omitempty"`
	BaseURL   string `json:"baseUrl,omitempty" yaml:"baseUrl,omitempty"`
	Mode      string `json:"mode,omitempty" yaml:"mode,omitempty"`
	Timestamp string `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
}

// ProviderState holds what is remembered for one provider.
type ProviderState struct {
	APIKey  string `json:"apiKey,omitempty" yaml:"apiKey,omitempty"`
	BaseURL string `json:"baseUrl,omitempty" yaml:"baseUrl,omitempty"`
}

// Default returns an empty state.
func Default() *State {
	return &State{Providers: make(map[string]ProviderState)}
}

// TimestampLayout is the layout of LastUsed.Timestamp.
const TimestampLayout = "2006-01-02 15:04:05"

// HasLastUsed reports whether a previous run recorded a provider.
func (s *State) HasLastUsed() bool {
	return s.LastUsed.Provider != ""
}

// RecordLastUsed replaces LastUsed.
func (s *State) RecordLastUsed(lu LastUsed) {
	s.LastUsed = lu
}

// ProviderKey returns the API key stored in the file for id.
func (s *State) ProviderKey(id string) string {
	return s.Providers[id].APIKey
}

// SetProviderKey stores an API key for id.
func (s *State) SetProviderKey(id, key string) {
	s.ensureProviders()
	ps := s.Providers[id]
	ps.APIKey = key
	s.Providers[id] = ps
}

// ProviderBaseURL returns the base URL remembered for id.
func (s *State) ProviderBaseURL(id string) string {
	return s.Providers[id].BaseURL
}

// SetProviderBaseURL remembers a base URL for id. Only the custom relay
// needs this; catalog providers have fixed URLs.
func (s *State) SetProviderBaseURL(id, baseURL string) {
	s.ensureProviders()
	ps := s.Providers[id]
	ps.BaseURL = baseURL
	s.Providers[id] = ps
}

// Forget removes everything stored for id. If id was the last used
// provider, LastUsed is cleared too. Returns false if nothing was stored.
func (s *State) Forget(id string) bool {
	_, had := s.Providers[id]
	delete(s.Providers, id)
	if s.LastUsed.Provider == id {
		s.LastUsed = LastUsed{}
		had = true
	}
	return had
}

// UsesKeyring reports whether API keys live in the system keychain.
func (s *State) UsesKeyring() bool {
	return s.KeyStorage == KeyStorageKeyring
}

func (s *State) ensureProviders() {
	if s.Providers == nil {
		s.Providers = make(map[string]ProviderState)
	}
}
