package flock

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidParams is returned by New when the world parameters cannot drive a simulation.
var ErrInvalidParams = errors.New("invalid flock parameters")

// AvoidanceMode selects which obstacle in range steers an agent away.
type AvoidanceMode string

const (
	// AvoidLast keeps the last obstacle found in range, in insertion order.
	AvoidLast AvoidanceMode = "last"
	// AvoidNearest keeps the closest obstacle in range.
	AvoidNearest AvoidanceMode = "nearest"
)

// JitterMode selects the noise added to the cursor direction in cursor-seek mode.
type JitterMode string

const (
	JitterUniform JitterMode = "uniform"
	JitterPerlin  JitterMode = "perlin"
)

// Params holds the world constants of a simulation. They are set once at
// construction and never change during a run.
type Params struct {
	WorldWidth  float64
	WorldHeight float64
	Population  int

	ProximityRadius float64 // neighborhood for cohesion and alignment
	ObstacleRadius  float64 // shared by every obstacle
	AvoidanceBuffer float64 // added to ObstacleRadius to get the avoidance reach

	MaxSpeed        float64
	SmoothingFactor float64 // per-frame blend rate of each behavior

	SpawnMargin  float64 // inset from the world edges for initial positions
	InitialSpeed float64 // initial velocity components are uniform in [-InitialSpeed, InitialSpeed]

	CursorMinDistance float64 // no cursor pull at or below this distance
	CursorJitter      float64 // amplitude of the jitter added to the cursor direction

	Avoidance AvoidanceMode
	Jitter    JitterMode
}

// DefaultParams returns the values of the reference program:
// 80 boids in a 1080x720 window.
func DefaultParams() Params {
	return Params{
		WorldWidth:        1080,
		WorldHeight:       720,
		Population:        80,
		ProximityRadius:   50,
		ObstacleRadius:    20,
		AvoidanceBuffer:   15,
		MaxSpeed:          2.0,
		SmoothingFactor:   0.1,
		SpawnMargin:       40,
		InitialSpeed:      0.5,
		CursorMinDistance: 1,
		CursorJitter:      0.1,
		Avoidance:         AvoidLast,
		Jitter:            JitterUniform,
	}
}

// SeparationRadius is the tighter neighborhood used by separation.
func (p Params) SeparationRadius() float64 {
	return p.ProximityRadius / 2
}

// AvoidanceReach is the distance under which an obstacle repels an agent.
func (p Params) AvoidanceReach() float64 {
	return p.ObstacleRadius + p.AvoidanceBuffer
}

// Validate reports the first parameter that cannot drive a simulation.
func (p Params) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"WorldWidth", p.WorldWidth},
		{"WorldHeight", p.WorldHeight},
		{"ProximityRadius", p.ProximityRadius},
		{"MaxSpeed", p.MaxSpeed},
	}
	for _, f := range positive {
		if !(f.value > 0) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be a positive finite number, got %v", ErrInvalidParams, f.name, f.value)
		}
	}

	nonNegative := []struct {
		name  string
		value float64
	}{
		{"ObstacleRadius", p.ObstacleRadius},
		{"AvoidanceBuffer", p.AvoidanceBuffer},
		{"SpawnMargin", p.SpawnMargin},
		{"InitialSpeed", p.InitialSpeed},
		{"CursorMinDistance", p.CursorMinDistance},
		{"CursorJitter", p.CursorJitter},
	}
	for _, f := range nonNegative {
		if !(f.value >= 0) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%w: %s must be a non negative finite number, got %v", ErrInvalidParams, f.name, f.value)
		}
	}

	if !(p.SmoothingFactor > 0 && p.SmoothingFactor <= 1) {
		return fmt.Errorf("%w: SmoothingFactor must be in (0, 1], got %v", ErrInvalidParams, p.SmoothingFactor)
	}
	if p.Population < 0 {
		return fmt.Errorf("%w: Population must not be negative, got %d", ErrInvalidParams, p.Population)
	}

	switch p.Avoidance {
	case AvoidLast, AvoidNearest, "":
	default:
		return fmt.Errorf("%w: unknown avoidance mode %q", ErrInvalidParams, p.Avoidance)
	}
	switch p.Jitter {
	case JitterUniform, JitterPerlin, "":
	default:
		return fmt.Errorf("%w: unknown jitter mode %q", ErrInvalidParams, p.Jitter)
	}
	return nil
}
