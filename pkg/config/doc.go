// Package config centralizes the translator's resource ceilings and
// output preferences: a single, validated, cloneable struct with a secure
// set of defaults, even though this module does no network I/O of its own.
//
// # Basic usage
//
//	cfg := config.Default()
//	cfg.MaxNodes = 2000
//	if err := cfg.Validate(); err != nil {
//	    // handle invalid configuration
//	}
package config
