package runner

import (
	"math"
	"math/rand"
)

// Star is one background star at a given instant.
type Star struct {
	X, Y       float64
	Size       float64
	Brightness float64 // 0..1
}

// StarField is cosmetic sky decoration. It drifts left with time and wraps
// horizontally. It is owned by a renderer and never touches the simulation.
type StarField struct {
	base  []Star
	phase []float64
	width float64
	drift float64
}

// NewStarField scatters count stars over the sky area [0,width]x[0,skyHeight].
func NewStarField(seed int64, count int, width, skyHeight, drift float64) *StarField {
	rng := rand.New(rand.NewSource(seed))
	f := &StarField{
		base:  make([]Star, count),
		phase: make([]float64, count),
		width: width,
		drift: drift,
	}
	for i := range f.base {
		f.base[i] = Star{
			X:    rng.Float64() * width,
			Y:    rng.Float64() * skyHeight * 0.85,
			Size: 1 + rng.Float64()*1.5,
		}
		f.phase[i] = rng.Float64() * 2 * math.Pi
	}
	return f
}

// At returns the stars as seen t seconds after the field was created.
func (f *StarField) At(t float64) []Star {
	out := make([]Star, len(f.base))
	for i, s := range f.base {
		// Larger stars look closer and drift faster.
		x := s.X - f.drift*t*(s.Size/2)
		if f.width > 0 {
			x = math.Mod(x, f.width)
			if x < 0 {
				x += f.width
			}
		}
		out[i] = Star{
			X:          x,
			Y:          s.Y,
			Size:       s.Size,
			Brightness: 0.55 + 0.45*math.Sin(t*1.7+f.phase[i]),
		}
	}
	return out
}

// Len returns the number of stars.
func (f *StarField) Len() int {
	return len(f.base)
}
