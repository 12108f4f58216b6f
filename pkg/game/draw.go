package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

const (
	boidSize      = 10.0
	boidWingAngle = 2.5 // radians between the tip and each wing
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	boidColor     = color.RGBA{R: 100, G: 200, B: 255, A: 255}
	obstacleColor = color.RGBA{R: 255, A: 255}
)

func init() {
	whiteImage.Fill(color.White)
}

// boidTriangle returns the tip and the two wings of a boid facing heading (degrees).
func boidTriangle(pos geometry.Vector2D, heading float64) [3]geometry.Vector2D {
	angle := heading * math.Pi / 180
	return [3]geometry.Vector2D{
		pos.Add(geometry.NewVectorPolar(boidSize, angle)),
		pos.Add(geometry.NewVectorPolar(boidSize, angle+boidWingAngle)),
		pos.Add(geometry.NewVectorPolar(boidSize, angle-boidWingAngle)),
	}
}

// appendBoidTriangles adds one triangle per agent so the whole flock is drawn
// with a single DrawTriangles call.
func appendBoidTriangles(vertices []ebiten.Vertex, indices []uint16, agents []*pb.AgentState, clr color.RGBA) ([]ebiten.Vertex, []uint16) {
	r, g, b, a := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	for _, agent := range agents {
		base := uint16(len(vertices))
		pos := geometry.Vector2D{X: agent.GetPosition().GetX(), Y: agent.GetPosition().GetY()}
		for _, p := range boidTriangle(pos, agent.GetHeading()) {
			vertices = append(vertices, ebiten.Vertex{
				DstX: float32(p.X), DstY: float32(p.Y),
				SrcX: 1, SrcY: 1,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			})
		}
		indices = append(indices, base, base+1, base+2)
	}
	return vertices, indices
}

// helpMessages are drawn in the bottom right corner, bottom line first.
func helpMessages(follow bool) []string {
	state := "OFF"
	if follow {
		state = "ON"
	}
	return []string{
		"Press X to Place Obstacle Where Your Cursor is",
		"Press Y to Make Boids Flock Towards your Cursor: " + state,
	}
}
