package confetti

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrEmptyPalette       = errors.New("palette has no colors")
	ErrNegativePopulation = errors.New("particle population must not be negative")
)

// Instance matches the per-instance stream of particles.wgsl (locations 1, 2).
// It is uploaded once and never mutated; motion comes from the time uniform.
type Instance struct {
	Direction mgl32.Vec2 `confetti:"layout" format:"float2" location:"1"`
	Color     mgl32.Vec3 `confetti:"layout" format:"float3" location:"2"`
}

// Spread tunes how launch directions are sampled.
//
// The horizontal sample x is uniform in [-HorizontalRange, HorizontalRange).
// The vertical component is uniform in [VerticalFloor, sqrt(1-x²)*Lift], which
// biases the burst toward a parabolic envelope. The stored horizontal
// direction is x*HorizontalScale.
type Spread struct {
	HorizontalRange float32
	HorizontalScale float32
	Lift            float32
	VerticalFloor   float32
}

// DefaultSpread is the burst used by the overlay.
var DefaultSpread = Spread{
	HorizontalRange: 1.0,
	HorizontalScale: 1.2,
	Lift:            2.5,
	VerticalFloor:   -0.5,
}

// VerticalBound is the upper limit for the vertical component paired with
// horizontal sample x.
func (s Spread) VerticalBound(x float32) float32 {
	r := 1 - float64(x)*float64(x)
	if r < 0 {
		r = 0
	}
	return float32(math.Sqrt(r)) * s.Lift
}

func (s Spread) sample(rng *rand.Rand) mgl32.Vec2 {
	x := -s.HorizontalRange + rng.Float32()*2*s.HorizontalRange
	bound := s.VerticalBound(x)
	y := s.VerticalFloor
	if bound > s.VerticalFloor {
		y += rng.Float32() * (bound - s.VerticalFloor)
	}
	return mgl32.Vec2{x * s.HorizontalScale, y}
}

// GenerateParticles samples n instances with DefaultSpread.
func GenerateParticles(n int, colors []mgl32.Vec3, rng *rand.Rand) ([]Instance, error) {
	return DefaultSpread.Generate(n, colors, rng)
}

// Generate samples n instances, each with a launch direction and a color
// picked uniformly from colors. rng must not be nil.
func (s Spread) Generate(n int, colors []mgl32.Vec3, rng *rand.Rand) ([]Instance, error) {
	if n < 0 {
		return nil, fmt.Errorf("generate %d particles: %w", n, ErrNegativePopulation)
	}
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}

	instances := make([]Instance, n)
	for i := range instances {
		instances[i] = Instance{
			Direction: s.sample(rng),
			Color:     colors[rng.Intn(len(colors))],
		}
	}
	return instances, nil
}
