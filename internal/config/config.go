// Package config provides configuration types and defaults for filtergen.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// DanglingPolicy selects how pads left unconnected by the expression are
// treated after resolution.
type DanglingPolicy string

const (
	// DanglingExpose exposes unmatched pads as graph boundary pads.
	DanglingExpose DanglingPolicy = "expose"
	// DanglingStrict rejects graphs whose named link labels are left
	// unmatched. Unlabeled chain-edge pads are always legal boundaries.
	DanglingStrict DanglingPolicy = "strict"
)

// UnknownFilterPolicy selects how filter names absent from the catalog are
// treated.
type UnknownFilterPolicy string

const (
	// UnknownReject fails resolution on the first unknown filter name.
	UnknownReject UnknownFilterPolicy = "reject"
	// UnknownAssume accepts unknown filters with a 1-in/1-out arity and
	// reports each one as a warning.
	UnknownAssume UnknownFilterPolicy = "assume"
)

// ParseDanglingPolicy parses a string into a DanglingPolicy.
func ParseDanglingPolicy(s string) (DanglingPolicy, error) {
	switch strings.ToLower(s) {
	case "expose":
		return DanglingExpose, nil
	case "strict":
		return DanglingStrict, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: expose, strict)", ErrInvalidDanglingPolicy, s)
	}
}

// ParseUnknownFilterPolicy parses a string into an UnknownFilterPolicy.
func ParseUnknownFilterPolicy(s string) (UnknownFilterPolicy, error) {
	switch strings.ToLower(s) {
	case "reject":
		return UnknownReject, nil
	case "assume":
		return UnknownAssume, nil
	default:
		return "", fmt.Errorf("%w: %q (valid: reject, assume)", ErrInvalidUnknownFilterPolicy, s)
	}
}

// Config holds the compiler configuration.
type Config struct {
	// Dangling selects the dangling-pad policy.
	Dangling DanglingPolicy `toml:"dangling_policy"`

	// UnknownFilters selects the unknown-filter policy.
	UnknownFilters UnknownFilterPolicy `toml:"unknown_filters"`

	// OutputPath is where the rendered text is written. Empty means stdout.
	OutputPath string `toml:"output"`

	// Verbose enables debug logging.
	Verbose bool `toml:"verbose"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Dangling:       DanglingExpose,
		UnknownFilters: UnknownReject,
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if _, err := ParseDanglingPolicy(string(c.Dangling)); err != nil {
		return err
	}
	if _, err := ParseUnknownFilterPolicy(string(c.UnknownFilters)); err != nil {
		return err
	}
	return nil
}

// Load reads a TOML configuration file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
