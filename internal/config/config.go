// Package config loads loginform settings from the environment.
//
// A .env file in the working directory is read first when present; real
// environment variables win over it. Recognised variables:
//
//	LOGINFORM_STATE_DIR   directory holding the session flag (default ~/.loginform)
//	LOGINFORM_LOG_FILE    log destination; logging is off when empty
//	LOGINFORM_LOG_LEVEL   debug|info|warn|error (default info)
//	LOGINFORM_ALT_SCREEN  run the TUI in the alternate screen (default true)
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/naveenspark/loginform/internal/logging"
)

// Config holds runtime settings.
type Config struct {
	StateDir  string `env:"LOGINFORM_STATE_DIR"`
	LogFile   string `env:"LOGINFORM_LOG_FILE"`
	LogLevel  string `env:"LOGINFORM_LOG_LEVEL" envDefault:"info"`
	AltScreen bool   `env:"LOGINFORM_ALT_SCREEN" envDefault:"true"`
}

// userHomeDir is swapped in tests.
var userHomeDir = os.UserHomeDir

// Load reads .env (if any) and the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, fmt.Errorf("config.Load: read .env: %w", err)
		}
	}
	return parse(env.Options{})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("config.Load: parse env: %w", err)
	}
	if err := cfg.Sanitize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Sanitize fills derived defaults and rejects unusable values.
func (c *Config) Sanitize() error {
	if c.StateDir == "" {
		home, err := userHomeDir()
		if err != nil {
			return fmt.Errorf("config.Sanitize: get home dir: %w", err)
		}
		c.StateDir = filepath.Join(home, ".loginform")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config.Sanitize: %w", err)
	}
	return nil
}
