// Package config provides configuration types and defaults for filtergen.
package config

import "errors"

// Sentinel errors for configuration validation.
var (
	// ErrInvalidDanglingPolicy indicates an unknown dangling-pad policy name.
	ErrInvalidDanglingPolicy = errors.New("invalid dangling-pad policy")

	// ErrInvalidUnknownFilterPolicy indicates an unknown unknown-filter policy name.
	ErrInvalidUnknownFilterPolicy = errors.New("invalid unknown-filter policy")
)
