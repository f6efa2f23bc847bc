package confetti

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 200, cfg.Population)
	assert.Equal(t, 2500*time.Millisecond, cfg.Lifetime)
	assert.Equal(t, 16*time.Millisecond, cfg.FrameInterval)
	assert.False(t, cfg.ApplyResize)
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Population = -3
	cfg.Lifetime = 0
	cfg.QuadSize = 0
	cfg.Palette = Palette(42)

	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrNegativePopulation)
	assert.Contains(t, err.Error(), "lifetime")
	assert.Contains(t, err.Error(), "quad size")
	assert.Contains(t, err.Error(), "palette")
}

func TestConfigRandSeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	assert.Equal(t, int64(7), cfg.RandSeed())

	cfg.Seed = 0
	assert.NotZero(t, cfg.RandSeed())
}
