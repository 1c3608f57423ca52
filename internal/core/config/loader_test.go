package config

import (
	"os"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp("", "config_*.yaml")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	if _, err := tmpFile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write to temp file: %v", err)
	}
	tmpFile.Close()
	return tmpFile.Name()
}

func TestLoad_EnvSubstitution(t *testing.T) {
	os.Setenv("TEST_MIRROR_URL", "https://mirror.example.com/countries.json")
	defer os.Unsetenv("TEST_MIRROR_URL")

	path := writeConfig(t, `
registry:
  endpoints:
    - ${TEST_MIRROR_URL}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Registry.Endpoints[0] != "https://mirror.example.com/countries.json" {
		t.Errorf("Expected substituted endpoint, got %s", cfg.Registry.Endpoints[0])
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
logging:
  level: debug
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
	if time.Duration(cfg.Cache.TTL) != 30*time.Minute {
		t.Errorf("Expected default TTL 30m, got %v", time.Duration(cfg.Cache.TTL))
	}
	if cfg.Sources.TopN != 10 {
		t.Errorf("Expected default top-N 10, got %d", cfg.Sources.TopN)
	}
	if time.Duration(cfg.Sources.AttemptTimeout) != 10*time.Second {
		t.Errorf("Expected default attempt timeout 10s, got %v", time.Duration(cfg.Sources.AttemptTimeout))
	}
	if len(cfg.Registry.Endpoints) == 0 {
		t.Error("Expected a default registry endpoint")
	}
}

func TestLoad_Durations(t *testing.T) {
	path := writeConfig(t, `
cache:
  ttl: 5m
sources:
  attempt_timeout: 3s
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if time.Duration(cfg.Cache.TTL) != 5*time.Minute {
		t.Errorf("Expected TTL 5m, got %v", time.Duration(cfg.Cache.TTL))
	}
	if time.Duration(cfg.Sources.AttemptTimeout) != 3*time.Second {
		t.Errorf("Expected attempt timeout 3s, got %v", time.Duration(cfg.Sources.AttemptTimeout))
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	path := writeConfig(t, `
cache:
  ttl: soon
`)

	if _, err := Load(path); err == nil {
		t.Fatal("Expected error for unparseable duration")
	}
}

func TestLoad_Providers(t *testing.T) {
	path := writeConfig(t, `
sources:
  categories:
    population:
      - name: worldbank
        kind: worldbank
        url: https://api.worldbank.org/v2/country/all/indicator/SP.POP.TOTL?format=json
      - name: restcountries
        kind: restcountries
        url: https://restcountries.com/v3.1/all?fields=name,cca3,population
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	chain := cfg.Sources.Categories["population"]
	if len(chain) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(chain))
	}
	if chain[0].Name != "worldbank" || chain[1].Kind != "restcountries" {
		t.Errorf("Provider order not preserved: %+v", chain)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load("/does/not/exist.yaml"); err == nil {
		t.Fatal("Expected error for missing config file")
	}
}
