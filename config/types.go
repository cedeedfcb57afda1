package config

import "time"

// NetworkConfig locates the network data file.
type NetworkConfig struct {
	Path string `yaml:"path" toml:"path" validate:"required"`
}

// SearchConfig tunes route searches.
type SearchConfig struct {
	Strategy      string        `yaml:"strategy" toml:"strategy" validate:"oneof=distance stops optimal"`
	MaxExpansions int           `yaml:"maxExpansions" toml:"maxExpansions" validate:"gte=0"`
	// Timeout bounds each query; 0 leaves queries unbounded.
	Timeout       time.Duration `yaml:"timeout" toml:"timeout" validate:"gte=0"`
	// ReachabilityCheck runs a hop-count reachability test before searching.
	ReachabilityCheck *bool `yaml:"reachabilityCheck" toml:"reachabilityCheck"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Addr           string        `yaml:"addr" toml:"addr" validate:"required,hostname_port"`
	// CacheSize is the route cache capacity; an explicit 0 disables the cache.
	CacheSize      *int          `yaml:"cacheSize" toml:"cacheSize" validate:"omitnil,gte=0"`
	CacheTTL       time.Duration `yaml:"cacheTTL" toml:"cacheTTL" validate:"gte=0"`
	AllowedOrigins []string      `yaml:"allowedOrigins" toml:"allowedOrigins" validate:"dive,required"`
}

// MetricsConfig toggles Prometheus collection.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled" toml:"enabled"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Network NetworkConfig `yaml:"network" toml:"network"`
	Search  SearchConfig  `yaml:"search" toml:"search"`
	Server  ServerConfig  `yaml:"server" toml:"server"`
	Metrics MetricsConfig `yaml:"metrics" toml:"metrics"`
}

// Defaults.
const (
	DefaultStrategy  = "distance"
	DefaultAddr      = "127.0.0.1:8080"
	DefaultCacheSize = 1024
	DefaultCacheTTL  = time.Hour
)
