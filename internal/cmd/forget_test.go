package cmd

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"

	"github.com/xdg/claude-run/internal/config"
	"github.com/xdg/claude-run/internal/credential"
	"github.com/xdg/claude-run/internal/envvar"
)

func TestForgetCmd(t *testing.T) {
	testEnv(t)
	writeSavedState(t, "sk")

	old := forgetProfile
	forgetProfile = false
	defer func() { forgetProfile = old }()

	if err := runForget(forgetCmd, []string{"glm"}); err != nil {
		t.Fatalf("forget returned error: %v", err)
	}

	st, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if st.ProviderKey("glm") != "" {
		t.Error("key should be removed")
	}
	if st.HasLastUsed() {
		t.Error("lastUsed should be cleared when it named the forgotten provider")
	}
}

func TestForgetCmd_Profile(t *testing.T) {
	testEnv(t)
	writeSavedState(t, "sk")

	pers := &mockPersister{}
	oldPersister, oldProfile := setupPersister, forgetProfile
	setupPersister, forgetProfile = pers, true
	defer func() { setupPersister, forgetProfile = oldPersister, oldProfile }()

	if err := runForget(forgetCmd, []string{"glm"}); err != nil {
		t.Fatalf("forget returned error: %v", err)
	}
	if len(pers.removed) != 2 || pers.removed[0] != envvar.BaseURLVar || pers.removed[1] != "ANTHROPIC_API_KEY" {
		t.Errorf("removed = %v", pers.removed)
	}
}

func TestForgetCmd_UnknownProvider(t *testing.T) {
	stdout, _ := testEnv(t)
	writeSavedState(t, "sk")

	old := forgetProfile
	forgetProfile = false
	defer func() { forgetProfile = old }()

	if err := runForget(forgetCmd, []string{"nope"}); err != nil {
		t.Fatalf("forget returned error: %v", err)
	}
	if got := stdout.String(); got == "" {
		t.Error("expected a message")
	}
	st, _ := config.Load()
	if st.ProviderKey("glm") != "sk" {
		t.Error("other providers must be untouched")
	}
}

func TestForgetCmd_Keyring(t *testing.T) {
	testEnv(t)
	keyring.MockInit()

	st := config.Default()
	st.KeyStorage = config.KeyStorageKeyring
	st.SetProviderBaseURL("custom", "https://relay.example.com")
	if err := config.Write(st); err != nil {
		t.Fatal(err)
	}
	if err := credential.NewKeyringStore().Set("custom", "sk-kc"); err != nil {
		t.Fatal(err)
	}

	old := forgetProfile
	forgetProfile = false
	defer func() { forgetProfile = old }()

	if err := runForget(forgetCmd, []string{"custom"}); err != nil {
		t.Fatalf("forget returned error: %v", err)
	}
	if _, err := credential.NewKeyringStore().Get("custom"); !errors.Is(err, credential.ErrNotFound) {
		t.Errorf("keychain Get() error = %v, want ErrNotFound", err)
	}
	loaded, _ := config.Load()
	if loaded.ProviderBaseURL("custom") != "" {
		t.Error("custom base URL should be forgotten")
	}
}
