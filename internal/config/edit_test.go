package config

import (
	"strings"
	"testing"
)

func TestGetValue(t *testing.T) {
	st := Default()
	st.RecordLastUsed(LastUsed{Provider: "glm", Mode: ModeTemp})
	st.SetProviderKey("glm", "sk-g")

	tests := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{"lastUsed.mode", "temp", true},
		{"lastUsed.provider", "glm", true},
		{"providers.glm.apiKey", "sk-g", true},
		{"lastUsed.timestamp", "", false},
		{"lastUsed.mode.deeper", "", false},
		{"nothing", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok, err := GetValue(st, tt.key)
			if err != nil {
				t.Fatalf("GetValue() error = %v", err)
			}
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("GetValue(%q) = (%q, %v), want (%q, %v)", tt.key, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestGetValue_Object(t *testing.T) {
	st := Default()
	st.RecordLastUsed(LastUsed{Provider: "glm"})

	got, ok, err := GetValue(st, "lastUsed")
	if err != nil || !ok {
		t.Fatalf("GetValue(lastUsed) = %q, %v, %v", got, ok, err)
	}
	if !strings.Contains(got, `"provider": "glm"`) {
		t.Errorf("object should render as JSON, got %s", got)
	}
}

func TestSetValue(t *testing.T) {
	st := Default()

	updated, err := SetValue(st, "providers.custom.baseUrl", "https://relay.example.com")
	if err != nil {
		t.Fatalf("SetValue() error = %v", err)
	}
	if updated.ProviderBaseURL("custom") != "https://relay.example.com" {
		t.Errorf("custom base URL = %q", updated.ProviderBaseURL("custom"))
	}

	updated, err = SetValue(updated, "keyStorage", KeyStorageKeyring)
	if err != nil {
		t.Fatalf("SetValue(keyStorage) error = %v", err)
	}
	if !updated.UsesKeyring() {
		t.Error("keyStorage not applied")
	}

	if st.ProviderBaseURL("custom") != "" {
		t.Error("SetValue must not mutate its input")
	}
}

func TestSetValue_Rejects(t *testing.T) {
	tests := map[string][2]string{
		"unknown top-level key": {"lastUzed.mode", "temp"},
		"unknown nested key":    {"lastUsed.colour", "blue"},
		"object replaced":       {"lastUsed", "glm"},
		"invalid mode":          {"lastUsed.mode", "forever"},
		"invalid url":           {"providers.custom.baseUrl", "relay"},
		"empty key":             {" . ", "x"},
	}

	for name, kv := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := SetValue(Default(), kv[0], kv[1]); err == nil {
				t.Errorf("SetValue(%q, %q) expected error", kv[0], kv[1])
			}
		})
	}
}
