package simulation

import (
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

// VectorToProto converts a world vector into its protobuf "Envelope".
func VectorToProto(v geometry.Vector2D) *pb.Vector {
	return &pb.Vector{X: v.X, Y: v.Y}
}

// VectorFromProto treats a missing vector as the origin.
func VectorFromProto(v *pb.Vector) geometry.Vector2D {
	return geometry.Vector2D{X: v.GetX(), Y: v.GetY()}
}

func WeightsToProto(w flock.Weights) *pb.Weights {
	return &pb.Weights{
		Cohesion:   w.Cohesion,
		Separation: w.Separation,
		Alignment:  w.Alignment,
		Avoidance:  w.Avoidance,
	}
}

func WeightsFromProto(w *pb.Weights) flock.Weights {
	return flock.Weights{
		Cohesion:   w.GetCohesion(),
		Separation: w.GetSeparation(),
		Alignment:  w.GetAlignment(),
		Avoidance:  w.GetAvoidance(),
	}
}

// CursorFromProto returns the zero CursorSeek, which is disabled, for a nil message.
func CursorFromProto(c *pb.CursorSeek) flock.CursorSeek {
	return flock.CursorSeek{
		Enabled: c.GetEnabled(),
		Target:  VectorFromProto(c.GetTarget()),
	}
}

// NewStep builds the message that advances the flock actor by one frame.
func NewStep(w flock.Weights, cursor flock.CursorSeek) *pb.Step {
	return &pb.Step{
		Weights: WeightsToProto(w),
		Cursor: &pb.CursorSeek{
			Enabled: cursor.Enabled,
			Target:  VectorToProto(cursor.Target),
		},
	}
}

// SnapshotOf copies the render state of f into a new message.
func SnapshotOf(f *flock.Flock) *pb.Snapshot {
	snap := &pb.Snapshot{
		Frame:     f.Frame(),
		Agents:    make([]*pb.AgentState, 0, f.Len()),
		Obstacles: make([]*pb.Vector, 0, len(f.Obstacles())),
	}
	for _, a := range f.All() {
		snap.Agents = append(snap.Agents, &pb.AgentState{
			Position: VectorToProto(a.Position),
			Velocity: VectorToProto(a.Velocity),
			Heading:  a.Heading,
		})
	}
	for _, o := range f.Obstacles() {
		snap.Obstacles = append(snap.Obstacles, VectorToProto(o))
	}
	return snap
}
