package config

import (
	"encoding/json"
	"fmt"
	"strings"
)

// GetValue returns the value at a dotted key such as "lastUsed.mode".
// Objects are returned as indented JSON. The second result is false when
// the key does not exist.
func GetValue(st *State, key string) (string, bool, error) {
	doc, err := toDocument(st)
	if err != nil {
		return "", false, err
	}

	var cur any = doc
	for _, part := range splitKey(key) {
		obj, ok := cur.(map[string]any)
		if !ok {
			return "", false, nil
		}
		cur, ok = obj[part]
		if !ok {
			return "", false, nil
		}
	}

	if s, ok := cur.(string); ok {
		return s, true, nil
	}
	data, err := json.MarshalIndent(cur, "", "  ")
	if err != nil {
		return "", false, fmt.Errorf("encode %s: %w", key, err)
	}
	return string(data), true, nil
}

// SetValue stores a string at a dotted key and returns the resulting state.
// Missing intermediate objects are created. The result must still decode
// as a State and pass Validate, so typos in key names are rejected.
func SetValue(st *State, key, value string) (*State, error) {
	parts := splitKey(key)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty key")
	}

	doc, err := toDocument(st)
	if err != nil {
		return nil, err
	}

	obj := doc
	for _, part := range parts[:len(parts)-1] {
		next, ok := obj[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			obj[part] = next
		}
		obj = next
	}
	obj[parts[len(parts)-1]] = value

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("set %s: %w", key, err)
	}
	updated, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("set %s: %w", key, err)
	}
	if err := Validate(updated); err != nil {
		return nil, fmt.Errorf("set %s: %w", key, err)
	}
	return updated, nil
}

func toDocument(st *State) (map[string]any, error) {
	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return doc, nil
}

func splitKey(key string) []string {
	var parts []string
	for _, p := range strings.Split(key, ".") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
