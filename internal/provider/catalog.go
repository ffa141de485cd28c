package provider

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// builtins is the menu order shown to users. custom must stay last.
var builtins = []Provider{
	{ID: "glm", Name: "GLM", DisplayName: "GLM (智谱清言)", BaseURL: "https://open.bigmodel.cn/api/anthropic"},
	{ID: "qwen", Name: "QWEN", DisplayName: "QWEN (通义千问)", BaseURL: "https://dashscope.aliyuncs.com/api/v1/anthropic"},
	{ID: "kimi", Name: "Kimi", DisplayName: "Kimi (月之暗面)", BaseURL: "https://api.moonshot.cn/anthropic"},
	{ID: "deepseek", Name: "DeepSeek", DisplayName: "DeepSeek", BaseURL: "https://api.deepseek.com/anthropic"},
	{ID: CustomID, Name: "Custom", DisplayName: "自定义中转站 (Custom Relay)", Custom: true},
}

var validID = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]*$`)

// Catalog is an ordered set of providers.
type Catalog struct {
	providers []Provider
}

// Builtin returns the catalog of built-in providers.
func Builtin() *Catalog {
	c := &Catalog{providers: make([]Provider, len(builtins))}
	copy(c.providers, builtins)
	return c
}

// All returns the providers in menu order.
func (c *Catalog) All() []Provider {
	out := make([]Provider, len(c.providers))
	copy(out, c.providers)
	return out
}

// IDs returns provider IDs in menu order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.providers))
	for i, p := range c.providers {
		ids[i] = p.ID
	}
	return ids
}

// Lookup returns the provider with the given ID.
func (c *Catalog) Lookup(id string) (Provider, bool) {
	for _, p := range c.providers {
		if p.ID == id {
			return p, true
		}
	}
	return Provider{}, false
}

// Index returns the menu position of id, or -1.
func (c *Catalog) Index(id string) int {
	for i, p := range c.providers {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// add replaces a provider with the same ID, or inserts p before the custom
// entry.
func (c *Catalog) add(p Provider) {
	if i := c.Index(p.ID); i >= 0 {
		c.providers[i] = p
		return
	}
	at := c.Index(CustomID)
	if at < 0 {
		c.providers = append(c.providers, p)
		return
	}
	c.providers = append(c.providers, Provider{})
	copy(c.providers[at+1:], c.providers[at:])
	c.providers[at] = p
}

// catalogFile is the layout of providers.yaml.
type catalogFile struct {
	Providers []Provider `yaml:"providers"`
}

// LoadCatalog returns the built-in catalog merged with the user catalog at
// path. A missing file is not an error.
func LoadCatalog(path string) (*Catalog, error) {
	c := Builtin()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return c, nil
		}
		return nil, fmt.Errorf("read provider catalog: %w", err)
	}

	extra, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("load provider catalog %s: %w", path, err)
	}
	for _, p := range extra {
		c.add(p)
	}
	return c, nil
}

// ParseCatalog decodes and validates a providers.yaml document.
// Unknown fields are rejected so typos surface early.
func ParseCatalog(data []byte) ([]Provider, error) {
	var f catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode YAML: %w", err)
	}

	seen := make(map[string]bool)
	for i, p := range f.Providers {
		field := fmt.Sprintf("providers[%d]", i)
		if !validID.MatchString(p.ID) {
			return nil, fmt.Errorf("%s.id: %q must be lowercase letters, digits, '-' or '_'", field, p.ID)
		}
		if p.ID == CustomID {
			return nil, fmt.Errorf("%s.id: %q is reserved", field, CustomID)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%s.id: duplicate id %q", field, p.ID)
		}
		seen[p.ID] = true
		if p.Name == "" {
			return nil, fmt.Errorf("%s.name: required", field)
		}
		if p.Custom {
			return nil, fmt.Errorf("%s.custom: only the built-in %q entry may be custom", field, CustomID)
		}
		if err := ValidateBaseURL(p.BaseURL); err != nil {
			return nil, fmt.Errorf("%s.base_url: %w", field, err)
		}
		if p.KeyEnv != "" {
			if err := ValidateKeyEnv(p.KeyEnv); err != nil {
				return nil, fmt.Errorf("%s.key_env: %w", field, err)
			}
		}
	}
	return f.Providers, nil
}
