// Package envvar turns a chosen provider configuration into environment
// variables and applies them: to the current process, to the user's shell
// profile on Unix, or to the user environment via setx on Windows.
package envvar

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// BaseURLVar is read by the Claude CLI to pick the API endpoint.
const BaseURLVar = "ANTHROPIC_BASE_URL"

// DefaultKeyVar holds the API key unless a provider names another variable.
const DefaultKeyVar = "ANTHROPIC_API_KEY"

// Mode says how long the variables should live.
type Mode string

const (
	// ModeTemp sets variables for this process and its children only.
	ModeTemp Mode = "temp"
	// ModePerm also persists them for future shells.
	ModePerm Mode = "perm"
)

// ParseMode accepts "temp"/"perm" and the longer "temporary"/"permanent".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "temp", "temporary":
		return ModeTemp, nil
	case "perm", "permanent":
		return ModePerm, nil
	default:
		return "", fmt.Errorf("invalid mode %q: must be temp or perm", s)
	}
}

// Settings is a fully resolved configuration ready to apply.
type Settings struct {
	Provider     string
	ProviderName string
	BaseURL      string
	Mode         Mode
	APIKey       string
	// KeyEnv is the variable that receives APIKey.
	KeyEnv string
}

// Var is one environment variable assignment.
type Var struct {
	Name   string
	Value  string
	Secret bool
}

// Display returns the value, masked if secret.
func (v Var) Display() string {
	if v.Secret {
		return Mask(v.Value)
	}
	return v.Value
}

// Vars returns the variables for s, base URL first.
func Vars(s Settings) []Var {
	keyEnv := s.KeyEnv
	if keyEnv == "" {
		keyEnv = DefaultKeyVar
	}
	return []Var{
		{Name: BaseURLVar, Value: s.BaseURL},
		{Name: keyEnv, Value: s.APIKey, Secret: true},
	}
}

// Mask hides a secret for display. Empty values stay visibly empty.
func Mask(value string) string {
	if value == "" {
		return "(not set)"
	}
	return "***[hidden]***"
}

// ApplyProcess sets vars in the current process environment so any child
// started afterwards inherits them.
func ApplyProcess(vars []Var) error {
	for _, v := range vars {
		if err := os.Setenv(v.Name, v.Value); err != nil {
			return fmt.Errorf("set %s: %w", v.Name, err)
		}
	}
	return nil
}

// Merge returns base with vars applied, replacing existing entries of the
// same name. The result is sorted for stable output.
func Merge(base []string, vars []Var) []string {
	env := make(map[string]string, len(base)+len(vars))
	for _, kv := range base {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[name] = value
	}
	for _, v := range vars {
		env[v.Name] = v.Value
	}

	out := make([]string, 0, len(env))
	for name, value := range env {
		out = append(out, name+"="+value)
	}
	sort.Strings(out)
	return out
}
