// Package config loads application configuration from file and environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the settings the application needs at startup.
type Config struct {
	DataDir  string `mapstructure:"data_dir"`
	LogLevel string `mapstructure:"log_level"`
	NoColor  bool   `mapstructure:"no_color"`
}

// Config validation errors.
var (
	ErrDataDirEmpty    = errors.New("data_dir must not be empty")
	ErrLogLevelUnknown = errors.New("unknown log_level")
)

var knownLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.DataDir == "" {
		return ErrDataDirEmpty
	}
	if !knownLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("%w: %q", ErrLogLevelUnknown, c.LogLevel)
	}
	return nil
}

// DBPath returns the slot database location inside the data directory.
func (c Config) DBPath() string {
	return filepath.Join(c.DataDir, "tessera.db")
}

// Load reads configuration from $TESSERA_CONFIG or ~/.tessera/config.yaml,
// with TESSERA_-prefixed environment variables taking precedence. A missing
// config file is fine; defaults apply.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	v.SetDefault("data_dir", filepath.Join(home, ".tessera"))
	v.SetDefault("log_level", "info")
	v.SetDefault("no_color", false)

	if path := os.Getenv("TESSERA_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(home, ".tessera"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TESSERA")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
