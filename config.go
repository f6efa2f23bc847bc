package confetti

import (
	"errors"
	"fmt"
	"time"
)

// Config collects the tunables of one overlay run.
type Config struct {
	Palette       Palette
	Population    int
	Lifetime      time.Duration
	FrameInterval time.Duration
	QuadSize      float32
	// Seed for the particle sampler; 0 picks one from the clock.
	Seed int64
	// ApplyResize reconfigures the presentation surface on every configure
	// event instead of only the first.
	ApplyResize bool
	Debug       bool
}

func DefaultConfig() Config {
	return Config{
		Palette:       DefaultPalette(),
		Population:    200,
		Lifetime:      2500 * time.Millisecond,
		FrameInterval: 16 * time.Millisecond,
		QuadSize:      0.008,
	}
}

func (c Config) Validate() error {
	var errs []error
	if !c.Palette.valid() {
		errs = append(errs, fmt.Errorf("palette: invalid value %d", int(c.Palette)))
	}
	if c.Population < 0 {
		errs = append(errs, fmt.Errorf("population %d: %w", c.Population, ErrNegativePopulation))
	}
	if c.Lifetime <= 0 {
		errs = append(errs, fmt.Errorf("lifetime must be positive, got %s", c.Lifetime))
	}
	if c.FrameInterval < 0 {
		errs = append(errs, fmt.Errorf("frame interval must not be negative, got %s", c.FrameInterval))
	}
	if c.QuadSize <= 0 {
		errs = append(errs, fmt.Errorf("quad size must be positive, got %g", c.QuadSize))
	}
	return errors.Join(errs...)
}

// RandSeed resolves Seed, falling back to the current time.
func (c Config) RandSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
