package flock

import (
	"math"
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// Jitter perturbs the cursor direction of one agent at one frame.
type Jitter interface {
	Sample(agent int, frame uint64) geometry.Vector2D
}

func newJitter(p Params, rng *rand.Rand, seed uint64) Jitter {
	if p.Jitter == JitterPerlin {
		return NewPerlinJitter(p.CursorJitter, int64(seed))
	}
	return &UniformJitter{rng: rng, amplitude: p.CursorJitter}
}

// UniformJitter draws each component uniformly in [-amplitude, amplitude].
type UniformJitter struct {
	rng       *rand.Rand
	amplitude float64
}

// NewUniformJitter returns a UniformJitter drawing from rng.
func NewUniformJitter(rng *rand.Rand, amplitude float64) *UniformJitter {
	return &UniformJitter{rng: rng, amplitude: amplitude}
}

func (u *UniformJitter) Sample(int, uint64) geometry.Vector2D {
	return geometry.Vector2D{
		X: (u.rng.Float64()*2 - 1) * u.amplitude,
		Y: (u.rng.Float64()*2 - 1) * u.amplitude,
	}
}

// PerlinJitter follows a smooth noise curve per agent, so the cursor pull
// wobbles instead of flickering from frame to frame.
type PerlinJitter struct {
	x, y      *perlin.Perlin
	amplitude float64
	timeScale float64
}

const (
	perlinAlpha  = 2.
	perlinBeta   = 2.
	perlinOctave = 3
)

// NewPerlinJitter builds two independent noise generators from seed.
func NewPerlinJitter(amplitude float64, seed int64) *PerlinJitter {
	return &PerlinJitter{
		x:         perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctave, seed),
		y:         perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctave, seed+1),
		amplitude: amplitude,
		timeScale: 0.05,
	}
}

func (p *PerlinJitter) Sample(agent int, frame uint64) geometry.Vector2D {
	// lattice points are always 0, hence the half offset
	a := float64(agent) + 0.5
	t := float64(frame) * p.timeScale
	return geometry.Vector2D{
		X: clampUnit(p.x.Noise2D(a, t)) * p.amplitude,
		Y: clampUnit(p.y.Noise2D(a, t)) * p.amplitude,
	}
}

func clampUnit(x float64) float64 {
	return math.Max(-1, math.Min(1, x))
}
