// Package config carries the tunables for the extraction call. Compiled-in
// defaults can be overridden by an optional YAML file; a missing file is not
// an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for model invocation and retry behavior.
const (
	DefaultModel           = "gemini-2.5-flash"
	DefaultTemperature     = 0.1 // low temperature for deterministic output
	DefaultMaxOutputTokens = 65536

	DefaultMaxRetries        = 3
	DefaultInitialRetryDelay = 2 * time.Second
	DefaultMaxRetryDelay     = 32 * time.Second
	DefaultRetryBackoff      = 2
)

// FileName is the override file probed at each search location.
const FileName = "bill2csv.yaml"

// Config holds model and retry settings.
type Config struct {
	Model           string  `yaml:"model"`
	Temperature     float32 `yaml:"temperature"`
	MaxOutputTokens int32   `yaml:"max_output_tokens"`

	MaxRetries        int           `yaml:"max_retries"`
	InitialRetryDelay time.Duration `yaml:"initial_retry_delay"`
	MaxRetryDelay     time.Duration `yaml:"max_retry_delay"`
	RetryBackoff      int           `yaml:"retry_backoff"`
}

// Default returns the compiled-in configuration.
func Default() Config {
	return Config{
		Model:             DefaultModel,
		Temperature:       DefaultTemperature,
		MaxOutputTokens:   DefaultMaxOutputTokens,
		MaxRetries:        DefaultMaxRetries,
		InitialRetryDelay: DefaultInitialRetryDelay,
		MaxRetryDelay:     DefaultMaxRetryDelay,
		RetryBackoff:      DefaultRetryBackoff,
	}
}

// Load returns the defaults overlaid with the first override file found at
// the standard locations (./bill2csv.yaml, ~/.bill2csv/config.yaml). A file
// that exists but does not parse is an error; absence is not.
func Load() (Config, error) {
	cfg := Default()
	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
		}
		break
	}
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, filepath.Join(cwd, FileName))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".bill2csv", "config.yaml"))
	}
	return paths
}
