package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for a config file with an unsupported extension.
var ErrUnknownFormat = errors.New("config: unknown config format")

// Load reads, defaults and validates the configuration at path.
// A relative network path is resolved against the config file's directory.
func Load(path string) (AppConfig, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yml" && ext != ".yaml" && ext != ".toml" {
		return AppConfig{}, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return AppConfig{}, err
	}

	var cfg AppConfig
	if ext == ".toml" {
		_, err = toml.Decode(string(data), &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return AppConfig{}, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if cfg.Network.Path != "" && !filepath.IsAbs(cfg.Network.Path) {
		cfg.Network.Path = filepath.Join(filepath.Dir(path), cfg.Network.Path)
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}

	return cfg, nil
}

// Default returns a configuration for the given network file with every
// other field at its default.
func Default(networkPath string) AppConfig {
	cfg := AppConfig{Network: NetworkConfig{Path: networkPath}}
	cfg.ApplyDefaults()

	return cfg
}

// ApplyDefaults fills unset fields. Search.Timeout has no default: zero means
// unbounded. CacheSize is defaulted only when the key is absent.
func (cfg *AppConfig) ApplyDefaults() {
	if cfg.Search.Strategy == "" {
		cfg.Search.Strategy = DefaultStrategy
	}
	if cfg.Search.ReachabilityCheck == nil {
		enabled := true
		cfg.Search.ReachabilityCheck = &enabled
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if cfg.Server.CacheSize == nil {
		size := DefaultCacheSize
		cfg.Server.CacheSize = &size
	}
	if cfg.Server.CacheTTL == 0 {
		cfg.Server.CacheTTL = DefaultCacheTTL
	}
}

// Validate checks struct constraints.
func (cfg AppConfig) Validate() error {
	if err := validator.New().Struct(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}
