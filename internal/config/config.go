package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration.
type Config struct {
	Env       string        `envconfig:"QUESTIONARI_ENV" default:"development"`
	Addr      string        `envconfig:"QUESTIONARI_ADDR" default:":8080"`
	DBPath    string        `envconfig:"QUESTIONARI_DB_PATH" default:"questionari.db"`
	StaticDir string        `envconfig:"QUESTIONARI_STATIC_DIR" default:""`
	// NoticeTTL is how long transient success notices stay up before the UI
	// returns to the list.
	NoticeTTL time.Duration `envconfig:"QUESTIONARI_NOTICE_TTL" default:"2s"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	validEnvs := map[string]bool{
		"development": true,
		"production":  true,
		"test":        true,
	}
	if !validEnvs[c.Env] {
		return fmt.Errorf("invalid environment: %s (must be one of: development, production, test)", c.Env)
	}
	if c.DBPath == "" {
		return fmt.Errorf("QUESTIONARI_DB_PATH must not be empty")
	}
	if c.NoticeTTL < 0 {
		return fmt.Errorf("QUESTIONARI_NOTICE_TTL must be non-negative")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
