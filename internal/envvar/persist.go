package envvar

import (
	"context"
	"runtime"
)

// Result describes where a Persister wrote.
type Result struct {
	// Target is a human-readable location, e.g. "~/.bashrc" or
	// "user environment (setx)".
	Target string
}

// Persister makes variables outlive the current process.
type Persister interface {
	Persist(ctx context.Context, vars []Var) (Result, error)
	// Remove undoes Persist for the named variables.
	Remove(ctx context.Context, names []string) (Result, error)
}

// ForPlatform returns the persister for goos. An empty goos means the
// running platform. home is the user's home directory for profile files.
func ForPlatform(goos, home string) Persister {
	if goos == "" {
		goos = runtime.GOOS
	}
	if goos == "windows" {
		return NewSetxPersister(nil)
	}
	return NewProfilePersister(home)
}
