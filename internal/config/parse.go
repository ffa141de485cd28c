package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Parse decodes a state document. Unknown fields are rejected.
// Empty input returns Default().
func Parse(data []byte) (*State, error) {
	st := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return st, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(st); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if st.Providers == nil {
		st.Providers = make(map[string]ProviderState)
	}
	return st, nil
}

// Marshal encodes a state document with two-space indentation.
func Marshal(st *State) ([]byte, error) {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return append(data, '\n'), nil
}
