// Package config provides the optional on-disk domain configuration the
// pipeline's DomainConfigLoader contract consumes (§6, §10): a YAML file
// overriding head-noun-to-IRI specializations, loaded and hot-reloaded
// outside the deterministic core.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk domain specialization table. It never carries the
// pipeline's per-call options (createTier2, strict, ...): those are the
// caller's concern at each Build, not a file on disk.
type Config struct {
	// ProcessRootWords maps a lower-cased head noun to the compact IRI the
	// EntityExtractor's cascade step 6 should resolve it to, specializing
	// or overriding the built-in lexicon tables for one project's domain
	// vocabulary (e.g. "stent" -> "cco:Artifact").
	ProcessRootWords map[string]string `yaml:"processRootWords"`
}

// DefaultConfig returns an empty domain config: no specializations, so the
// EntityExtractor's cascade falls through to its built-in lexicon tables.
func DefaultConfig() *Config {
	return &Config{ProcessRootWords: map[string]string{}}
}

// Validate checks that every configured IRI looks like a compact IRI
// (prefix:local); it does not resolve prefixes against vocabulary/context,
// since a domain config may reference a prefix this module's vocabulary
// packages do not define.
func (c *Config) Validate() error {
	for head, iri := range c.ProcessRootWords {
		if iri == "" {
			return fmt.Errorf("processRootWords[%q]: empty IRI", head)
		}
		if !hasCompactIRIShape(iri) {
			return fmt.Errorf("processRootWords[%q]: %q is not a compact IRI (prefix:local)", head, iri)
		}
	}
	return nil
}

func hasCompactIRIShape(iri string) bool {
	for i, r := range iri {
		if r == ':' {
			return i > 0 && i < len(iri)-1
		}
	}
	return false
}

// LoadFromFile loads a domain config from a YAML file, decoding it over
// the default (empty) config. A missing or unreadable file, malformed
// YAML, or an entry that fails Validate is returned as an error.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read domain config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse domain config file: %w", err)
	}
	if cfg.ProcessRootWords == nil {
		cfg.ProcessRootWords = map[string]string{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge overlays other's entries onto c, other's values winning on key
// collision; a nil other is a no-op.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	for head, iri := range other.ProcessRootWords {
		c.ProcessRootWords[head] = iri
	}
}

// ProcessRootWord implements the entity.DomainConfigLoader contract
// directly on Config, so a loaded snapshot can be passed to entity.New
// without an adapter.
func (c *Config) ProcessRootWord(head string) (string, bool) {
	iri, ok := c.ProcessRootWords[head]
	return iri, ok
}
