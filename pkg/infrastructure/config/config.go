// Package config loads runtime configuration from environment variables
// with an optional env-file fallback.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds everything the dashboard needs at startup
type Config struct {
	APIBaseURL        string        `mapstructure:"API_BASE_URL"`
	HTTPTimeout       time.Duration `mapstructure:"HTTP_TIMEOUT"`
	RefreshInterval   time.Duration `mapstructure:"REFRESH_INTERVAL"`
	ReconcileDelay    time.Duration `mapstructure:"RECONCILE_DELAY"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	LowStockThreshold int64         `mapstructure:"LOW_STOCK_THRESHOLD"`
}

// Load reads configuration from the given env file, or from ./app.env if
// path is empty. Environment variables override file values; missing files
// fall back to defaults.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("API_BASE_URL", "https://braminventory-backend.onrender.com")
	v.SetDefault("HTTP_TIMEOUT", "10s")
	v.SetDefault("REFRESH_INTERVAL", "3s")
	v.SetDefault("RECONCILE_DELAY", "400ms")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOW_STOCK_THRESHOLD", 5)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("app")
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL cannot be empty")
	}
	return &cfg, nil
}
