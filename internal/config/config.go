// Package config loads optional resolver defaults from a YAML file.
// Explicit command-line flags always take precedence over file values.
package config

import (
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ccstack/ccfeed/internal/errors"
	"github.com/ccstack/ccfeed/internal/feed"
	"github.com/ccstack/ccfeed/internal/resolve"
)

// Config holds resolver defaults.
type Config struct {
	// Endpoint overrides the products feed endpoint.
	Endpoint string `yaml:"endpoint,omitempty"`

	// Channels are the default feed channels.
	Channels []string `yaml:"channels,omitempty"`

	// Platforms are the default deployment platforms.
	Platforms []string `yaml:"platforms,omitempty"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Endpoint:  feed.DefaultEndpoint,
		Channels:  resolve.DefaultChannels,
		Platforms: resolve.DefaultPlatforms,
	}
}

// Load reads a config file and fills unset keys with the built-in defaults.
// An empty path returns the defaults without touching the filesystem.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError(path, err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, errors.NewConfigError(path, err)
	}

	if fileCfg.Endpoint != "" {
		cfg.Endpoint = fileCfg.Endpoint
	}
	if len(fileCfg.Channels) > 0 {
		cfg.Channels = fileCfg.Channels
	}
	if len(fileCfg.Platforms) > 0 {
		cfg.Platforms = fileCfg.Platforms
	}
	return cfg, nil
}
