// Package config loads the optional tmconv.yaml settings file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where Load looks when no explicit path is given.
const DefaultPath = "tmconv.yaml"

// Config holds tool-wide settings. Flags override file values.
type Config struct {
	Output OutputConfig `mapstructure:"output"`
	Server ServerConfig `mapstructure:"server"`
}

// OutputConfig controls default serialization.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// ServerConfig controls the serve subcommand.
type ServerConfig struct {
	Port  string      `mapstructure:"port"`
	Redis RedisConfig `mapstructure:"redis"`
}

// RedisConfig configures the optional conversion cache.
// An empty Addr disables caching.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Output: OutputConfig{Format: "json"},
		Server: ServerConfig{Port: "8080"},
	}
}

// Load reads a YAML settings file and decodes it over the defaults.
// A missing file at the default path is not an error; the defaults apply.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.StringToTimeDurationHookFunc(),
		Result:     &cfg,
	})
	if err != nil {
		return cfg, fmt.Errorf("failed to build config decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return cfg, fmt.Errorf("failed to decode config: %w", err)
	}

	return cfg, nil
}
