// Package flock implements the per-frame flocking update of a fixed population
// of boids: cohesion, separation, alignment, obstacle avoidance and an optional
// cursor pull, integrated on a toroidal world.
//
// A Flock is not safe for concurrent use. Hosts call Step from a single
// goroutine, once per rendered frame, and apply obstacle additions between steps.
// The time step is one frame: motion speed depends on the host frame rate.
package flock

import (
	"iter"
	"math/rand/v2"
	"slices"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// Pose is what a renderer needs to draw an agent.
type Pose struct {
	Position geometry.Vector2D
	Heading  float64 // degrees
}

// Flock owns the agents and obstacles of one simulation.
type Flock struct {
	params    Params
	seed      uint64
	rng       *rand.Rand
	jitter    Jitter
	agents    []Agent
	prev      []Agent // read buffer: pre-step state of every agent
	obstacles []geometry.Vector2D
	frame     uint64
}

// New creates a flock of p.Population agents with uniformly random positions
// inside the spawn margin and small random velocities.
// The same seed always produces the same trajectories.
func New(p Params, seed uint64) (*Flock, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Avoidance == "" {
		p.Avoidance = AvoidLast
	}
	if p.Jitter == "" {
		p.Jitter = JitterUniform
	}
	f := &Flock{params: p}
	f.Reset(seed)
	return f, nil
}

// Reset re-seeds the random source, respawns every agent and removes all obstacles.
func (f *Flock) Reset(seed uint64) {
	f.seed = seed
	f.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	f.jitter = newJitter(f.params, f.rng, seed)
	f.agents = f.spawn(f.params.Population)
	f.prev = make([]Agent, 0, len(f.agents))
	f.obstacles = nil
	f.frame = 0
}

func (f *Flock) spawn(n int) []Agent {
	p := f.params
	loX, hiX := spawnRange(p.SpawnMargin, p.WorldWidth)
	loY, hiY := spawnRange(p.SpawnMargin, p.WorldHeight)

	agents := make([]Agent, n)
	for i := range agents {
		pos := geometry.Vector2D{
			X: loX + f.rng.Float64()*(hiX-loX),
			Y: loY + f.rng.Float64()*(hiY-loY),
		}
		vel := geometry.Vector2D{
			X: (f.rng.Float64()*2 - 1) * p.InitialSpeed,
			Y: (f.rng.Float64()*2 - 1) * p.InitialSpeed,
		}
		agents[i] = Agent{
			Position: pos.Wrap(p.WorldWidth, p.WorldHeight),
			Velocity: vel,
			Heading:  vel.HeadingDegrees(),
		}
	}
	return agents
}

// spawnRange drops the margin when it leaves no room to spawn.
func spawnRange(margin, size float64) (float64, float64) {
	if 2*margin >= size {
		return 0, size
	}
	return margin, size - margin
}

// Step advances every agent by one frame.
// All behaviors read the state of the flock as it was before the call, so the
// result does not depend on the order of the agents. When cursor is enabled
// every agent is first pulled toward cursor.Target.
func (f *Flock) Step(w Weights, cursor CursorSeek) {
	w = w.Sanitize()
	f.prev = append(f.prev[:0], f.agents...)

	if cursor.Enabled {
		for i := range f.agents {
			sample := func() geometry.Vector2D { return f.jitter.Sample(i, f.frame) }
			f.agents[i].SeekCursor(cursor.Target, sample, f.params)
		}
	}

	for i := range f.agents {
		f.agents[i].Update(f.prev, i, f.obstacles, w, f.params)
	}
	f.frame++
}

// AddObstacle appends an obstacle. Duplicates are kept.
func (f *Flock) AddObstacle(p geometry.Vector2D) {
	f.obstacles = append(f.obstacles, p)
}

// Snapshot returns the position and heading of every agent.
func (f *Flock) Snapshot() []Pose {
	poses := make([]Pose, len(f.agents))
	for i, a := range f.agents {
		poses[i] = Pose{Position: a.Position, Heading: a.Heading}
	}
	return poses
}

// Agents returns a copy of the full agent state.
func (f *Flock) Agents() []Agent {
	return slices.Clone(f.agents)
}

// All iterates over the agents without copying the slice.
func (f *Flock) All() iter.Seq2[int, Agent] {
	return func(yield func(int, Agent) bool) {
		for i, a := range f.agents {
			if !yield(i, a) {
				return
			}
		}
	}
}

// Obstacles returns a copy of the obstacle positions.
func (f *Flock) Obstacles() []geometry.Vector2D {
	return slices.Clone(f.obstacles)
}

// Len returns the number of agents.
func (f *Flock) Len() int { return len(f.agents) }

// Frame returns the number of steps since creation or the last Reset.
func (f *Flock) Frame() uint64 { return f.frame }

// Seed returns the seed of the current run.
func (f *Flock) Seed() uint64 { return f.seed }

// Params returns the world parameters.
func (f *Flock) Params() Params { return f.params }
