// Package config loads ci-report settings from an optional YAML file,
// a local .env file and the process environment.
package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"cireport/internal/errors"
	"cireport/internal/rtdb"
)

// HistoryDSNEnv enables the publication history when set.
const HistoryDSNEnv = "CI_REPORT_HISTORY_DSN"

type Config struct {
	// DatabaseURL is the Realtime Database endpoint.
	DatabaseURL string `yaml:"database_url"`
	// HistoryDSN enables the PostgreSQL publication history when set.
	HistoryDSN string `yaml:"history_dsn"`
	// Timeout bounds one publish. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout"`
}

func Default() *Config {
	return &Config{DatabaseURL: rtdb.DefaultURL}
}

// Load reads path (if non-empty) over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("read config file: %s", path), err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("parse config file: %s", path), err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = rtdb.DefaultURL
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.DatabaseURL != "" && !strings.HasPrefix(c.DatabaseURL, "https://") && !strings.HasPrefix(c.DatabaseURL, "http://") {
		return errors.ConfigError(fmt.Sprintf("database_url must be an http(s) URL, got %q", c.DatabaseURL), nil)
	}
	if c.Timeout < 0 {
		return errors.ConfigError("timeout must not be negative", nil)
	}
	return nil
}

// LoadDotEnv loads KEY=VALUE pairs from files (default ".env") into the
// environment. Variables already set win; missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return errors.ConfigError("load "+f, err)
		}
	}
	return nil
}
