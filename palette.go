package confetti

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// Palette names a fixed, ordered set of particle colors.
type Palette int

const (
	Party Palette = iota
	Pastel
	Earth
	Neon
	Cool
	Sunset
	Ocean
	Retro
	Forest
	Candy
)

var paletteNames = [...]string{
	Party:  "party",
	Pastel: "pastel",
	Earth:  "earth",
	Neon:   "neon",
	Cool:   "cool",
	Sunset: "sunset",
	Ocean:  "ocean",
	Retro:  "retro",
	Forest: "forest",
	Candy:  "candy",
}

var paletteColors = [...][]mgl32.Vec3{
	Party: {
		{1.0, 0.0, 0.0}, // bright red
		{1.0, 0.5, 0.0}, // vivid orange
		{1.0, 1.0, 0.0}, // bright yellow
		{0.0, 1.0, 0.0}, // neon green
		{0.0, 1.0, 1.0}, // bright cyan
		{0.0, 0.0, 1.0}, // electric blue
		{0.7, 0.0, 1.0}, // vibrant purple
		{1.0, 0.0, 1.0}, // hot pink
		{1.0, 0.2, 0.5}, // neon pink
		{1.0, 0.8, 0.0}, // gold yellow
	},
	Pastel: {
		{1.0, 0.8, 0.8},
		{0.8, 1.0, 0.8},
		{0.8, 0.8, 1.0},
		{1.0, 0.9, 0.7},
		{0.9, 0.8, 1.0},
		{1.0, 0.85, 0.85},
		{0.85, 1.0, 0.85},
		{0.85, 0.85, 1.0},
	},
	Earth: {
		{0.5, 0.3, 0.1}, // brown
		{0.6, 0.4, 0.2}, // tan
		{0.4, 0.5, 0.3}, // olive
		{0.2, 0.3, 0.1},
		{0.8, 0.7, 0.5}, // sand
		{0.3, 0.2, 0.1},
	},
	Neon: {
		{1.0, 0.1, 0.1},
		{1.0, 0.5, 0.0},
		{1.0, 1.0, 0.0},
		{0.0, 1.0, 0.0},
		{0.0, 1.0, 1.0},
		{0.0, 0.1, 1.0},
		{0.6, 0.0, 1.0},
		{1.0, 0.0, 1.0},
	},
	Cool: {
		{0.0, 0.5, 1.0},
		{0.0, 0.7, 0.9},
		{0.0, 0.4, 0.6},
		{0.3, 0.6, 0.8},
		{0.2, 0.3, 0.5},
		{0.5, 0.7, 0.9},
	},
	Sunset: {
		{1.0, 0.4, 0.0},
		{1.0, 0.7, 0.4},
		{0.9, 0.2, 0.3},
		{0.6, 0.0, 0.3}, // maroon
		{0.9, 0.5, 0.1},
		{1.0, 0.3, 0.0},
	},
	Ocean: {
		{0.0, 0.5, 0.7},
		{0.0, 0.7, 0.9},
		{0.2, 0.8, 0.8},
		{0.0, 0.3, 0.5},
		{0.1, 0.6, 0.8},
		{0.3, 0.9, 1.0},
	},
	Retro: {
		{1.0, 0.3, 0.5}, // pink
		{1.0, 0.6, 0.0}, // orange
		{0.9, 0.8, 0.2}, // mustard
		{0.3, 0.7, 0.6}, // teal
		{0.6, 0.3, 0.6}, // purple
		{0.8, 0.4, 0.2}, // burnt sienna
	},
	Forest: {
		{0.0, 0.3, 0.0},
		{0.1, 0.5, 0.1},
		{0.2, 0.6, 0.2},
		{0.4, 0.8, 0.4},
		{0.1, 0.4, 0.1},
		{0.3, 0.5, 0.3},
	},
	Candy: {
		{1.0, 0.7, 0.8},
		{1.0, 0.9, 0.6},
		{0.8, 1.0, 0.7},
		{0.7, 0.8, 1.0},
		{1.0, 0.6, 0.7},
		{0.9, 0.7, 1.0},
	},
}

// UnknownPaletteError is returned by ParsePalette for names outside the table.
type UnknownPaletteError struct {
	Name string
}

func (e *UnknownPaletteError) Error() string {
	return fmt.Sprintf("unknown color palette: %q", e.Name)
}

// DefaultPalette returns Retro.
func DefaultPalette() Palette { return Retro }

// Palettes lists every palette in declaration order.
func Palettes() []Palette {
	out := make([]Palette, len(paletteNames))
	for i := range paletteNames {
		out[i] = Palette(i)
	}
	return out
}

// ParsePalette resolves a case-insensitive palette name. Surrounding
// whitespace is not stripped.
func ParsePalette(name string) (Palette, error) {
	lower := strings.ToLower(name)
	for i, n := range paletteNames {
		if n == lower {
			return Palette(i), nil
		}
	}
	return 0, &UnknownPaletteError{Name: name}
}

func (p Palette) valid() bool { return p >= 0 && int(p) < len(paletteNames) }

func (p Palette) String() string {
	if !p.valid() {
		return fmt.Sprintf("Palette(%d)", int(p))
	}
	return paletteNames[p]
}

// Colors returns a copy of the palette's color table. Unknown values yield nil.
func (p Palette) Colors() []mgl32.Vec3 {
	if !p.valid() {
		return nil
	}
	out := make([]mgl32.Vec3, len(paletteColors[p]))
	copy(out, paletteColors[p])
	return out
}

// Set implements flag.Value.
func (p *Palette) Set(name string) error {
	parsed, err := ParsePalette(name)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

func (p *Palette) UnmarshalText(text []byte) error {
	return p.Set(string(text))
}

func (p Palette) MarshalText() ([]byte, error) {
	if !p.valid() {
		return nil, fmt.Errorf("invalid palette value %d", int(p))
	}
	return []byte(p.String()), nil
}
