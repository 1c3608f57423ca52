package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"

	"github.com/geolens-io/geolens/internal/cache"
)

// Load reads configuration from a YAML file.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = Duration(cache.DefaultTTL)
	}
	if cfg.Sources.AttemptTimeout == 0 {
		cfg.Sources.AttemptTimeout = Duration(10 * time.Second)
	}
	if cfg.Sources.TopN == 0 {
		cfg.Sources.TopN = 10
	}
	if len(cfg.Registry.Endpoints) == 0 {
		cfg.Registry.Endpoints = []string{
			"https://restcountries.com/v3.1/all?fields=name,cca3,population,area,capital,region,subregion,languages,currencies,flag,latlng",
		}
	}
}
