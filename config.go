package colorwheel

import (
	"errors"
	"fmt"

	"fortio.org/colorwheel/codec"
	"fortio.org/log"
	"fortio.org/struct2env"
)

const DefaultWidth = 194

var (
	ErrInvalidWidth = errors.New("width must be > 0")
	ErrInvalidColor = errors.New("invalid color, must be #RRGGBB or #RGB")
)

// Config is the construction configuration of a [Widget].
type Config struct {
	InitialColor  string `env:"INITIAL_COLOR"`
	Width         int    `env:"WIDTH"`
	OnColorChange Target `env:"-"`
}

// DefaultConfig is [DefaultColor] at [DefaultWidth], with no link.
func DefaultConfig() Config {
	return Config{InitialColor: DefaultColor, Width: DefaultWidth}
}

// Validate checks the width is positive and the initial color parses.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w, got %d", ErrInvalidWidth, c.Width)
	}
	if _, ok := codec.Unpack(c.InitialColor); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidColor, c.InitialColor)
	}
	return nil
}

// EnvConfig returns the default configuration overridden by environment
// variables (e.g. with prefix "COLORWHEEL_": COLORWHEEL_WIDTH and
// COLORWHEEL_INITIAL_COLOR).
func EnvConfig(prefix string) (Config, error) {
	cfg := DefaultConfig()
	errs := struct2env.SetFromEnv(prefix, &cfg)
	if len(errs) > 0 {
		for _, err := range errs {
			log.Errf("Error setting config from env: %v", err)
		}
		return cfg, errors.Join(errs...)
	}
	return cfg, cfg.Validate()
}
