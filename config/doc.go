// Package config handles application configuration loading and validation.
//
// Configuration is read from a YAML (.yml/.yaml) or TOML (.toml) file, filled
// with defaults for anything left unset, and validated using struct tags.
package config
