// Package config loads and validates application configuration from
// config.yml, .env and environment variable overrides.
package config
