// Package config loads, validates, and hot-reloads the gocalc
// configuration shared by the CLI, MCP, and HTTP surfaces.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultPrecision renders results with the shortest exact representation.
const DefaultPrecision = -1

// Config is one immutable configuration snapshot. Reloads produce a new
// snapshot; nothing mutates a Config after Load returns it.
type Config struct {
	// Precision is the decimal places for text output, -1 for shortest.
	Precision int `mapstructure:"precision" validate:"gte=-1,lte=15"`

	Log    LogConfig    `mapstructure:"log"`
	HTTP   HTTPConfig   `mapstructure:"http"`
	Limits LimitsConfig `mapstructure:"limits"`
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// HTTPConfig controls the gocalc-server listener.
type HTTPConfig struct {
	Addr            string        `mapstructure:"addr" validate:"required"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// LimitsConfig caps batch workloads.
type LimitsConfig struct {
	MaxWorksheetEntries int `mapstructure:"max_worksheet_entries" validate:"gt=0"`
}

// Default returns the built-in configuration snapshot, the one Load yields
// when no file and no environment overrides are present.
func Default() *Config {
	return &Config{
		Precision: DefaultPrecision,
		Log: LogConfig{
			Level: "info",
			JSON:  false,
		},
		HTTP: HTTPConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Limits: LimitsConfig{
			MaxWorksheetEntries: 1000,
		},
	}
}

var configValidate = validator.New()

// Validate checks the snapshot against its declared bounds.
func (c *Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Load reads the configuration. An explicit path must exist; with an empty
// path, gocalc.yaml is searched in the working directory and
// $HOME/.config/gocalc, and a missing file yields the defaults. Environment
// variables with the GOCALC_ prefix override file values
// (GOCALC_LOG_LEVEL, GOCALC_HTTP_ADDR, ...).
func Load(path string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("precision", def.Precision)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.json", def.Log.JSON)
	v.SetDefault("http.addr", def.HTTP.Addr)
	v.SetDefault("http.read_timeout", def.HTTP.ReadTimeout)
	v.SetDefault("http.write_timeout", def.HTTP.WriteTimeout)
	v.SetDefault("http.shutdown_timeout", def.HTTP.ShutdownTimeout)
	v.SetDefault("limits.max_worksheet_entries", def.Limits.MaxWorksheetEntries)

	v.SetEnvPrefix("GOCALC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("gocalc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "gocalc"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
