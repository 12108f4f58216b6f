package game

import (
	"math"
	"strings"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
)

func TestBoidTriangle(t *testing.T) {
	pos := geometry.Vector2D{X: 100, Y: 50}
	tests := []struct {
		name    string
		heading float64
		tip     geometry.Vector2D
	}{
		{"East", 0, geometry.Vector2D{X: 110, Y: 50}},
		{"South", 90, geometry.Vector2D{X: 100, Y: 60}},
		{"West", 180, geometry.Vector2D{X: 90, Y: 50}},
		{"North", -90, geometry.Vector2D{X: 100, Y: 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tri := boidTriangle(pos, tt.heading)
			if !tri[0].Eq(tt.tip) {
				t.Errorf("tip = %v; want %v", tri[0], tt.tip)
			}
			for i, p := range tri {
				if d := p.DistanceTo(pos); math.Abs(d-boidSize) > 1e-9 {
					t.Errorf("vertex %d is %v away from the center; want %v", i, d, boidSize)
				}
			}
			// wings are symmetric around the heading
			if math.Abs(tri[1].DistanceTo(tri[0])-tri[2].DistanceTo(tri[0])) > 1e-9 {
				t.Errorf("wings are not symmetric: %v", tri)
			}
		})
	}
}

func TestAppendBoidTriangles(t *testing.T) {
	agents := []*pb.AgentState{
		{Position: &pb.Vector{X: 1, Y: 2}, Heading: 0},
		{Position: &pb.Vector{X: 3, Y: 4}, Heading: 45},
		{}, // missing position draws at the origin
	}
	vertices, indices := appendBoidTriangles(make([]ebiten.Vertex, 0, 4), nil, agents, boidColor)
	if len(vertices) != 9 || len(indices) != 9 {
		t.Fatalf("got %d vertices and %d indices; want 9 and 9", len(vertices), len(indices))
	}
	for i, idx := range indices {
		if int(idx) != i {
			t.Errorf("indices[%d] = %d; want %d", i, idx, i)
		}
	}
	if vertices[0].DstX != 11 || vertices[0].DstY != 2 {
		t.Errorf("first tip at (%v, %v); want (11, 2)", vertices[0].DstX, vertices[0].DstY)
	}
}

func TestHelpMessages(t *testing.T) {
	if msgs := helpMessages(true); !strings.HasSuffix(msgs[1], "ON") {
		t.Errorf("follow on: %q", msgs[1])
	}
	if msgs := helpMessages(false); !strings.HasSuffix(msgs[1], "OFF") || !strings.HasPrefix(msgs[0], "Press X") {
		t.Errorf("follow off: %q", msgs)
	}
}
