package config

import (
	"fmt"
	"time"

	"github.com/geolens-io/geolens/internal/fetch"
)

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
	Cache    CacheConfig    `yaml:"cache"`
	Registry RegistryConfig `yaml:"registry"`
	Sources  SourcesConfig  `yaml:"sources"`
}

// Duration accepts YAML values like "30m" or "10s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// CacheConfig holds the shared TTL cache settings.
type CacheConfig struct {
	TTL Duration `yaml:"ttl"`
}

// RegistryConfig holds the bulk country list endpoints, tried in order.
type RegistryConfig struct {
	Endpoints []string `yaml:"endpoints"`
}

// SourcesConfig holds the per-category provider chains.
type SourcesConfig struct {
	AttemptTimeout Duration                          `yaml:"attempt_timeout"`
	TopN           int                               `yaml:"top_n"`
	Categories     map[string][]fetch.ProviderConfig `yaml:"categories"`
}

// FetchConfig converts the YAML-facing settings into the fetcher's config.
func (s SourcesConfig) FetchConfig() fetch.Config {
	return fetch.Config{
		AttemptTimeout: time.Duration(s.AttemptTimeout),
		TopN:           s.TopN,
		Categories:     s.Categories,
	}
}
