// Package provider holds the catalog of upstream endpoints the wizard can
// point the Claude CLI at. Every provider speaks the Anthropic API, so
// selecting one only changes the base URL and the credential variable.
package provider

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/xdg/claude-run/internal/envvar"
)

// DefaultKeyEnv is the credential variable used when a provider does not
// name its own.
const DefaultKeyEnv = envvar.DefaultKeyVar

// CustomID identifies the user-supplied relay entry.
const CustomID = "custom"

// Provider is a named upstream API endpoint.
type Provider struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	DisplayName string `yaml:"display_name,omitempty"`
	BaseURL     string `yaml:"base_url,omitempty"`
	KeyEnv      string `yaml:"key_env,omitempty"`
	// Custom providers have no fixed base URL; the user supplies one.
	Custom bool `yaml:"custom,omitempty"`
}

// Label returns the name shown in summaries. Custom providers include the
// base URL the user entered.
func (p Provider) Label(baseURL string) string {
	if p.Custom {
		return fmt.Sprintf("%s (%s)", p.Name, baseURL)
	}
	return p.Name
}

// MenuName returns the name shown in the selection menu.
func (p Provider) MenuName() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Name
}

// CredentialEnv returns KeyEnv or DefaultKeyEnv.
func (p Provider) CredentialEnv() string {
	if p.KeyEnv != "" {
		return p.KeyEnv
	}
	return DefaultKeyEnv
}

// ValidateBaseURL checks that s is an absolute http(s) URL.
func ValidateBaseURL(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return fmt.Errorf("base URL cannot be empty")
	}
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL %q (example: https://api.example.com/v1): %w", s, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid URL %q: scheme must be http or https (example: https://api.example.com/v1)", s)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid URL %q: missing host (example: https://api.example.com/v1)", s)
	}
	return nil
}

var validEnvName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateKeyEnv checks that name can be exported by a shell and does not
// clash with the base URL variable.
func ValidateKeyEnv(name string) error {
	if !validEnvName.MatchString(name) {
		return fmt.Errorf("%q is not a valid environment variable name", name)
	}
	if name == envvar.BaseURLVar {
		return fmt.Errorf("%q is reserved for the base URL", name)
	}
	return nil
}
