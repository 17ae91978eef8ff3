package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config controls runtime behavior for the console.
type Config struct {
	APIBaseURL   string `env:"HRCONSOLE_API_URL"`
	DataDir      string `env:"HRCONSOLE_DATA_DIR"`
	LogPath      string `env:"HRCONSOLE_LOG_PATH"`
	StyleVariant string `env:"HRCONSOLE_THEME"`
	ASCIIOnly    bool   `env:"HRCONSOLE_ASCII"`
	Debug        bool   `env:"HRCONSOLE_DEBUG"`
}

func DefaultConfig() Config {
	return Config{
		StyleVariant: "indigo_suite",
	}
}

// FromEnv layers HRCONSOLE_* environment variables over the defaults.
// Command-line flags are applied afterwards by the caller.
func FromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return errors.New("API base URL is required (flag -api or HRCONSOLE_API_URL)")
	}
	c.APIBaseURL = strings.TrimRight(strings.TrimSpace(c.APIBaseURL), "/")
	if !strings.HasPrefix(c.APIBaseURL, "http://") && !strings.HasPrefix(c.APIBaseURL, "https://") {
		return fmt.Errorf("API base URL %q must be http(s)", c.APIBaseURL)
	}

	switch c.StyleVariant {
	case "", "indigo_suite", "slate_ledger":
	default:
		return fmt.Errorf("invalid style variant %q", c.StyleVariant)
	}
	if c.StyleVariant == "" {
		c.StyleVariant = "indigo_suite"
	}

	if c.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return errors.New("cannot resolve user home directory")
		}
		c.DataDir = filepath.Join(home, ".local", "share", "hrconsole")
	}
	return nil
}
