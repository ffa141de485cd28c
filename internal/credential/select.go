package credential

import (
	"github.com/xdg/claude-run/internal/clog"
	"github.com/xdg/claude-run/internal/config"
)

// Open returns the store configured in st. When the keychain is requested
// but unusable, it falls back to a FileStore and returns the keychain error so
// the caller can tell the user.
func Open(st *config.State) (Store, error) {
	if !st.UsesKeyring() {
		return NewFileStore(st), nil
	}

	ks := NewKeyringStore()
	if err := ks.Check(); err != nil {
		clog.Warn("credential: %v; falling back to config file", err)
		return NewFileStore(st), err
	}
	return ks, nil
}
