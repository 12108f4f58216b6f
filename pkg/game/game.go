// Package game is the ebiten host of the flock: it reads the user input,
// tells the flock actor to step once per tick and draws the latest snapshot.
package game

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
)

type Game struct {
	ctx        context.Context
	System     actor.ActorSystem
	flockPID   *actor.PID
	snapshotCh chan *pb.Snapshot
	lastState  *pb.Snapshot
	cfg        *simulation.Config
	seed       uint64

	// UI Controls
	panel            *ui.UIPanel
	widgetCohesion   *ui.Slider
	widgetSeparation *ui.Slider
	widgetAlignment  *ui.Slider
	widgetAvoidance  *ui.Slider
	widgetFollow     *ui.Checkbox
	resetRequested   bool

	// reused between frames
	vertices []ebiten.Vertex
	indices  []uint16

	// Timing instrumentation
	updateAvg float64 // Rolling average in ms
	drawAvg   float64
}

// NewGame spawns the flock actor in system and builds the control panel.
func NewGame(ctx context.Context, cfg *simulation.Config, system actor.ActorSystem, seed uint64) (*Game, error) {
	// Buffer to avoid blocking the actor
	snapshotCh := make(chan *pb.Snapshot, 10)

	flockPID, err := simulation.SpawnFlock(ctx, system, simulation.NewFlockActor(snapshotCh, cfg, seed))
	if err != nil {
		return nil, err
	}

	g := &Game{
		ctx:        ctx,
		System:     system,
		flockPID:   flockPID,
		snapshotCh: snapshotCh,
		lastState:  &pb.Snapshot{}, // Avoid nil pointer
		cfg:        cfg,
		seed:       seed,
	}

	w := cfg.InitialWeights()
	panel := ui.NewUIPanel("Boids", 10, 10, 180, 310)
	panel.AddSection("Weights")
	g.widgetCohesion = panel.AddSlider("Cohesion", 0, 3, w.Cohesion)
	g.widgetSeparation = panel.AddSlider("Separation", 0, 3, w.Separation)
	g.widgetAlignment = panel.AddSlider("Alignment", 0, 3, w.Alignment)
	g.widgetAvoidance = panel.AddSlider("Avoidance", 0, 30, w.Avoidance)
	panel.EndSection()
	panel.AddSection("Flock")
	g.widgetFollow = panel.AddCheckbox("Follow cursor", cfg.FollowCursor)
	panel.AddButton("Reset flock", func() { g.resetRequested = true })
	panel.EndSection()
	g.panel = panel

	return g, nil
}

// Weights returns the behavior weights currently selected in the panel.
func (g *Game) Weights() flock.Weights {
	return flock.Weights{
		Cohesion:   g.widgetCohesion.Value,
		Separation: g.widgetSeparation.Value,
		Alignment:  g.widgetAlignment.Value,
		Avoidance:  g.widgetAvoidance.Value,
	}
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.updateAvg = g.updateAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	ptr := ui.CurrentPointer()
	g.panel.Update(ptr)
	cursor := geometry.Vector2D{X: ptr.X, Y: ptr.Y}

	// Keep the most recent snapshot, the actor may have pushed several
	for drained := false; !drained; {
		select {
		case snap := <-g.snapshotCh:
			g.lastState = snap
		default:
			drained = true
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		if err := actor.Tell(g.ctx, g.flockPID, &pb.AddObstacle{Position: simulation.VectorToProto(cursor)}); err != nil {
			return fmt.Errorf("failed to add obstacle: %w", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyY) {
		g.widgetFollow.Toggle()
	}
	if g.resetRequested {
		g.resetRequested = false
		g.seed++
		if err := actor.Tell(g.ctx, g.flockPID, &pb.ResetFlock{Seed: g.seed}); err != nil {
			return fmt.Errorf("failed to reset flock: %w", err)
		}
	}

	step := simulation.NewStep(g.Weights(), flock.CursorSeek{Enabled: g.widgetFollow.Value, Target: cursor})
	if err := actor.Tell(g.ctx, g.flockPID, step); err != nil {
		return fmt.Errorf("failed to step flock: %w", err)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.drawAvg = g.drawAvg*0.95 + float64(time.Since(start).Microseconds())/1000.0*0.05
	}()

	screen.Fill(color.Black)

	for _, o := range g.lastState.GetObstacles() {
		vector.FillCircle(screen, float32(o.GetX()), float32(o.GetY()), float32(g.cfg.ObstacleRadius), obstacleColor, true)
	}

	g.vertices, g.indices = appendBoidTriangles(g.vertices[:0], g.indices[:0], g.lastState.GetAgents(), boidColor)
	if len(g.indices) > 0 {
		screen.DrawTriangles(g.vertices, g.indices, whiteImage, &ebiten.DrawTrianglesOptions{})
	}

	g.panel.Draw(screen)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	for i, msg := range helpMessages(g.widgetFollow.Value) {
		// DebugPrint glyphs are 6 pixels wide
		ebitenutil.DebugPrintAt(screen, msg, w-len(msg)*6-10, h-30-i*20)
	}

	msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\nFrame: %d\nBoids: %d\n\nUpdate: %.2fms\nDraw:   %.2fms",
		ebiten.ActualFPS(),
		ebiten.ActualTPS(),
		g.lastState.GetFrame(),
		len(g.lastState.GetAgents()),
		g.updateAvg,
		g.drawAvg)
	ebitenutil.DebugPrintAt(screen, msg, w-150, 10)
}

func (g *Game) Layout(w, h int) (int, int) { return int(g.cfg.WorldWidth), int(g.cfg.WorldHeight) }
