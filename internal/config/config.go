// Package config loads the revise configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"revise/internal/srs"
)

// Config holds the settings for the CLI and reminder daemon. A missing
// config file yields Default(); individual zero values are filled with
// defaults after parsing.
type Config struct {
	DBPath                string   `toml:"db_path"`
	DueLimit              int      `toml:"due_limit"`
	ReviewRetries         int      `toml:"review_retries"`
	Ladder                []int    `toml:"ladder"`
	RemindIntervalMinutes int      `toml:"remind_interval_minutes"`
	RemindOwners          []string `toml:"remind_owners"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	home, _ := os.UserHomeDir()
	return Config{
		DBPath:                filepath.Join(home, ".revise", "revise.db"),
		DueLimit:              20,
		ReviewRetries:         3,
		RemindIntervalMinutes: 60,
	}
}

// DefaultPath resolves the config file location: $REVISE_CONFIG, else
// ~/.revise/config.toml.
func DefaultPath() string {
	if env := os.Getenv("REVISE_CONFIG"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".revise", "config.toml")
}

// Load reads the config file at path, filling defaults for unset fields.
// A missing file is not an error; a malformed or invalid one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.DBPath == "" {
		c.DBPath = def.DBPath
	}
	if c.DueLimit == 0 {
		c.DueLimit = def.DueLimit
	}
	if c.ReviewRetries == 0 {
		c.ReviewRetries = def.ReviewRetries
	}
	if c.RemindIntervalMinutes == 0 {
		c.RemindIntervalMinutes = def.RemindIntervalMinutes
	}
}

// Validate checks field ranges, including any ladder override.
func (c Config) Validate() error {
	if c.DueLimit < 1 {
		return fmt.Errorf("due_limit %d must be at least 1", c.DueLimit)
	}
	if c.ReviewRetries < 1 {
		return fmt.Errorf("review_retries %d must be at least 1", c.ReviewRetries)
	}
	if c.RemindIntervalMinutes < 1 {
		return fmt.Errorf("remind_interval_minutes %d must be at least 1", c.RemindIntervalMinutes)
	}
	if len(c.Ladder) > 0 {
		if err := srs.Ladder(c.Ladder).Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SRSLadder returns the configured ladder override, or nil when the
// default should apply.
func (c Config) SRSLadder() srs.Ladder {
	if len(c.Ladder) == 0 {
		return nil
	}
	return srs.Ladder(c.Ladder)
}
