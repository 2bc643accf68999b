// Package config loads, normalizes, and validates tidy configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the CLI needs: the category rule table, the default category, log output,
// and the directories used for log and lock files.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, lowercased extensions, and clear validation errors.
package config
