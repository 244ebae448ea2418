// Package config loads settings from an optional YAML file and the
// environment. Flags may still override the result at the CLI layer.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is resolved relative to the working directory.
const DefaultPath = "tictac.yml"

type Config struct {
	Theme string `yaml:"theme" env:"TICTAC_THEME" env-default:"auto"`

	// NoColor forces the mono theme. Inline renders in the main screen
	// buffer instead of the alternate screen, leaving the final frame in
	// the scrollback. Both default off; cleanenv re-applies env-default to
	// zero-valued fields, so defaults here must be the zero value.
	NoColor bool `yaml:"no-color" env:"TICTAC_NO_COLOR" env-default:"false"`
	Inline  bool `yaml:"inline" env:"TICTAC_INLINE" env-default:"false"`
}

// Load reads the config file at path when it exists and falls back to
// environment-only configuration when it does not. A present but unreadable
// file is an error; a missing one is not.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := cleanenv.ReadEnv(cfg); err != nil {
				return nil, fmt.Errorf("read env: %w", err)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("stat config: %w", err)
	}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}
