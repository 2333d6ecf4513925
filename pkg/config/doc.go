// Package config handles configuration management for dotf.
// It layers embedded defaults, the user's config.toml, DOTF_* environment
// variables and command-line overrides with koanf.
package config
