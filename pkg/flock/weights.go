package flock

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// Weights controls how strongly each behavior bends the velocity.
// Passing it into Step allows the host to change rules at every frame.
type Weights struct {
	Cohesion   float64 // moving toward the average position of nearby boids
	Separation float64 // moving away to avoid crowding
	Alignment  float64 // matching velocities with nearby boids
	Avoidance  float64 // moving away from obstacles
}

// DefaultWeights are the starting weights of the reference program.
func DefaultWeights() Weights {
	return Weights{
		Cohesion:   1.2,
		Separation: 1.5,
		Alignment:  1.3,
		Avoidance:  15.0,
	}
}

// Sanitize clamps negative or NaN weights to zero.
// A negative weight turns a behavior into its opposite and feeds back into itself.
func (w Weights) Sanitize() Weights {
	return Weights{
		Cohesion:   nonNegative(w.Cohesion),
		Separation: nonNegative(w.Separation),
		Alignment:  nonNegative(w.Alignment),
		Avoidance:  nonNegative(w.Avoidance),
	}
}

func nonNegative(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	return x
}

// CursorSeek is the optional cursor-following input of a step.
// The zero value disables it.
type CursorSeek struct {
	Enabled bool
	Target  geometry.Vector2D
}
