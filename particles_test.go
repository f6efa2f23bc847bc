package confetti

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateParticles_Count(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, n := range []int{0, 1, 7, 200, 1000} {
		instances, err := GenerateParticles(n, Retro.Colors(), rng)
		require.NoError(t, err)
		assert.Len(t, instances, n)
	}
}

func TestGenerateParticles_ColorsFromPalette(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for _, p := range Palettes() {
		colors := p.Colors()
		instances, err := GenerateParticles(300, colors, rng)
		require.NoError(t, err)
		for _, inst := range instances {
			assert.Contains(t, colors, inst.Color, p.String())
		}
	}
}

func TestGenerateParticles_DirectionsWithinEnvelope(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	s := DefaultSpread
	instances, err := s.Generate(5000, Party.Colors(), rng)
	require.NoError(t, err)

	maxX := s.HorizontalRange * s.HorizontalScale
	for i, inst := range instances {
		dx, dy := inst.Direction.X(), inst.Direction.Y()
		if dx < -maxX || dx > maxX {
			t.Fatalf("instance %d horizontal %f outside [-%f,%f]", i, dx, maxX, maxX)
		}
		x := dx / s.HorizontalScale
		bound := s.VerticalBound(x)
		if dy > bound+2e-3 {
			t.Fatalf("instance %d vertical %f exceeds bound %f for x=%f", i, dy, bound, x)
		}
		if dy < s.VerticalFloor {
			t.Fatalf("instance %d vertical %f below floor %f", i, dy, s.VerticalFloor)
		}
	}
}

func TestGenerateParticles_SingleColorPalette(t *testing.T) {
	only := mgl32.Vec3{0.2, 0.4, 0.6}
	instances, err := GenerateParticles(20, []mgl32.Vec3{only}, rand.New(rand.NewSource(4)))
	require.NoError(t, err)
	for _, inst := range instances {
		assert.Equal(t, only, inst.Color)
	}
}

func TestGenerateParticles_EmptyPaletteFails(t *testing.T) {
	_, err := GenerateParticles(10, nil, rand.New(rand.NewSource(5)))
	assert.ErrorIs(t, err, ErrEmptyPalette)

	_, err = GenerateParticles(0, []mgl32.Vec3{}, rand.New(rand.NewSource(5)))
	assert.ErrorIs(t, err, ErrEmptyPalette)
}

func TestGenerateParticles_NegativeCountFails(t *testing.T) {
	_, err := GenerateParticles(-1, Retro.Colors(), rand.New(rand.NewSource(6)))
	assert.ErrorIs(t, err, ErrNegativePopulation)
}

func TestGenerateParticles_SameSeedSameBurst(t *testing.T) {
	a, err := GenerateParticles(50, Candy.Colors(), rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	b, err := GenerateParticles(50, Candy.Colors(), rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestVerticalBound(t *testing.T) {
	s := DefaultSpread
	assert.InDelta(t, 2.5, s.VerticalBound(0), 1e-6)
	assert.InDelta(t, 0, s.VerticalBound(1), 1e-6)
	assert.InDelta(t, 0, s.VerticalBound(-1.5), 1e-6)
	assert.InDelta(t, 2.165063, s.VerticalBound(0.5), 1e-5)
}
