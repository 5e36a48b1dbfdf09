// Package config reads the dfamin command settings from the environment.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Representative selection strategies.
const (
	RepresentativeMin       = "min"
	RepresentativeFirstSeen = "first-seen"
)

// Config holds the command defaults. Flags override these values.
type Config struct {
	Input          string `env:"DFAMIN_INPUT" envDefault:"dfa.yaml"`
	Output         string `env:"DFAMIN_OUTPUT" envDefault:"min.yaml"`
	Format         string `env:"DFAMIN_FORMAT"`
	LogLevel       string `env:"DFAMIN_LOG_LEVEL" envDefault:"info"`
	LogFormat      string `env:"DFAMIN_LOG_FORMAT" envDefault:"text"`
	Representative string `env:"DFAMIN_REPRESENTATIVE" envDefault:"min"`
}

// Load reads envFiles (if any) into the process environment and then parses
// Config from it. A missing default .env file is not an error.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		// The .env file is optional.
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return Config{}, errors.Join(ErrLoadingEnvFile, err)
	}

	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that have a fixed set of choices.
func (c Config) Validate() error {
	switch c.Representative {
	case RepresentativeMin, RepresentativeFirstSeen:
	default:
		return fmt.Errorf("%w: representative must be %q or %q, got %q",
			ErrInvalidConfig, RepresentativeMin, RepresentativeFirstSeen, c.Representative)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format must be text or json, got %q", ErrInvalidConfig, c.LogFormat)
	}
	return nil
}
