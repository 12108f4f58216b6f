package flock

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// Agent represents a single entity in the flock.
// Boids is an artificial life program, developed by Craig Reynolds in 1986,
// which simulates the flocking behaviour of birds, and related group motion.
// The name "boid" corresponds to a shortened version of "bird-oid object".
// https://en.wikipedia.org/wiki/Boids
// Fields are exported so renderers can read them.
type Agent struct {
	Position geometry.Vector2D
	Velocity geometry.Vector2D
	Heading  float64 // degrees, recomputed from Velocity at the end of every step
}

// Signal is the result of one behavior: a steering vector, or nothing when
// no neighbor or obstacle qualified. An inactive Signal is skipped during
// integration, it is not a zero vector.
type Signal struct {
	vec    geometry.Vector2D
	active bool
}

// NoSignal is the empty behavior result.
var NoSignal = Signal{}

// Steer wraps v into an active Signal.
func Steer(v geometry.Vector2D) Signal {
	return Signal{vec: v, active: true}
}

// Vector returns the steering vector and whether the behavior produced one.
func (s Signal) Vector() (geometry.Vector2D, bool) {
	return s.vec, s.active
}

// Active reports whether the behavior produced a vector.
func (s Signal) Active() bool {
	return s.active
}

// Cohesion steers toward the centroid of the neighbors closer than proximity.
// self is the index of a in flock and is skipped.
func (a *Agent) Cohesion(flock []Agent, self int, proximity float64) Signal {
	var sum geometry.Vector2D
	count := 0
	radiusSq := proximity * proximity
	for j := range flock {
		if j == self {
			continue
		}
		if a.Position.DistanceSquaredTo(flock[j].Position) < radiusSq {
			sum = sum.Add(flock[j].Position)
			count++
		}
	}
	center, ok := geometry.Mean(sum, count)
	if !ok {
		return NoSignal
	}
	return Steer(center.Sub(a.Position))
}

// Separation pushes away from the neighbors closer than proximity/2.
// The result is the plain average of the position differences: it is not
// normalized nor weighted by the inverse distance.
func (a *Agent) Separation(flock []Agent, self int, proximity float64) Signal {
	var sum geometry.Vector2D
	count := 0
	radius := proximity / 2
	radiusSq := radius * radius
	for j := range flock {
		if j == self {
			continue
		}
		if a.Position.DistanceSquaredTo(flock[j].Position) < radiusSq {
			sum = sum.Add(a.Position.Sub(flock[j].Position))
			count++
		}
	}
	away, ok := geometry.Mean(sum, count)
	if !ok {
		return NoSignal
	}
	return Steer(away)
}

// Alignment returns the average velocity of the neighbors closer than proximity.
func (a *Agent) Alignment(flock []Agent, self int, proximity float64) Signal {
	var sum geometry.Vector2D
	count := 0
	radiusSq := proximity * proximity
	for j := range flock {
		if j == self {
			continue
		}
		if a.Position.DistanceSquaredTo(flock[j].Position) < radiusSq {
			sum = sum.Add(flock[j].Velocity)
			count++
		}
	}
	avg, ok := geometry.Mean(sum, count)
	if !ok {
		return NoSignal
	}
	return Steer(avg)
}

// Avoidance returns the unit vector pointing away from an obstacle closer than reach.
// With AvoidLast the last obstacle in range wins, with AvoidNearest the closest one.
// Obstacles sitting exactly on the agent have no direction and are ignored.
func (a *Agent) Avoidance(obstacles []geometry.Vector2D, reach float64, mode AvoidanceMode) Signal {
	result := NoSignal
	best := math.Inf(1)
	for _, o := range obstacles {
		diff := a.Position.Sub(o)
		dist := diff.Len()
		if dist >= reach {
			continue
		}
		away, ok := diff.Unit()
		if !ok {
			continue
		}
		if mode == AvoidNearest {
			if dist >= best {
				continue
			}
			best = dist
		}
		result = Steer(away)
	}
	return result
}

// SeekCursor blends the velocity toward the cursor target then advances the
// agent once by the blended velocity. jitter is only sampled when the target
// is farther than CursorMinDistance.
func (a *Agent) SeekCursor(target geometry.Vector2D, jitter func() geometry.Vector2D, p Params) {
	toCursor := target.Sub(a.Position)
	dist := toCursor.Len()
	if dist > p.CursorMinDistance && dist > 0 {
		dir := toCursor.Add(jitter()).Mul(1 / dist)
		a.Velocity = a.Velocity.Lerp(dir.Mul(p.MaxSpeed), p.SmoothingFactor)
	}
	a.Position = a.Position.Add(a.Velocity)
}

// Update computes the four behaviors of the agent at index self against flock
// and obstacles, then integrates. flock is only read: callers pass the
// pre-step state so that every agent sees the same frame.
func (a *Agent) Update(flock []Agent, self int, obstacles []geometry.Vector2D, w Weights, p Params) {
	behaviors := [...]struct {
		signal Signal
		weight float64
	}{
		{a.Cohesion(flock, self, p.ProximityRadius), w.Cohesion},
		{a.Separation(flock, self, p.ProximityRadius), w.Separation},
		{a.Alignment(flock, self, p.ProximityRadius), w.Alignment},
		{a.Avoidance(obstacles, p.AvoidanceReach(), p.Avoidance), w.Avoidance},
	}

	for _, b := range behaviors {
		steer, ok := b.signal.Vector()
		if !ok {
			continue
		}
		a.Velocity = a.Velocity.Add(steer.Mul(b.weight).Mul(p.SmoothingFactor))
	}

	a.Integrate(p)
}

// Integrate clamps the speed, moves the agent by one frame, wraps it around
// the world edges and refreshes the heading.
func (a *Agent) Integrate(p Params) {
	a.Velocity = a.Velocity.ClampLen(p.MaxSpeed)
	a.Position = a.Position.Add(a.Velocity).Wrap(p.WorldWidth, p.WorldHeight)
	a.Heading = a.Velocity.HeadingDegrees()
}
