// Package config loads prepdrill configuration from an optional YAML file
// and PREPDRILL_* environment variables, with defaults in code.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the full application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Engine   EngineConfig   `mapstructure:"engine"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// DatabaseConfig locates the SQLite database.
type DatabaseConfig struct {
	// Path to the database file. Empty means the XDG default.
	Path string `mapstructure:"path"`
}

// EngineConfig tunes the sequencing engine.
type EngineConfig struct {
	// HistoryWindow caps how many recent attempts feed the estimator.
	HistoryWindow int `mapstructure:"history_window"`

	// PoolMultiplier scales the candidate pool request relative to the
	// requested sequence length.
	PoolMultiplier int `mapstructure:"pool_multiplier"`

	// DefaultCount is the sequence length used when the caller gives none.
	DefaultCount int `mapstructure:"default_count"`

	// AdaptiveDifficulty enables the in-pass difficulty pacing by default.
	AdaptiveDifficulty bool `mapstructure:"adaptive_difficulty"`

	// RecentSeenLimit caps how many previously served item IDs feed the
	// novelty criterion.
	RecentSeenLimit int `mapstructure:"recent_seen_limit"`
}

// LoggingConfig controls diagnostic output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Format string `mapstructure:"format"` // console or json
}

// Load reads configuration from path (optional) and the environment.
// A missing config file is not an error; env vars and defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("database.path", "")
	v.SetDefault("engine.history_window", 20)
	v.SetDefault("engine.pool_multiplier", 2)
	v.SetDefault("engine.default_count", 10)
	v.SetDefault("engine.adaptive_difficulty", true)
	v.SetDefault("engine.recent_seen_limit", 50)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetEnvPrefix("PREPDRILL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("prepdrill")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/prepdrill")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
