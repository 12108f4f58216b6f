// Package tui runs the flock in a terminal: one arrow per boid, 'O' for the
// obstacles and a status line with the current weights.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
	"github.com/tochemey/goakt/v3/log"
)

const weightStep = 0.1

// upper bounds of the weights, same ranges as the sliders of the graphical host
var weightMax = flock.Weights{Cohesion: 3, Separation: 3, Alignment: 3, Avoidance: 30}

// App owns the flock and the terminal. It is driven from a single goroutine.
type App struct {
	screen     tcell.Screen
	flock      *flock.Flock
	weights    flock.Weights
	follow     bool
	cursor     geometry.Vector2D
	frameDelay time.Duration
	logger     log.Logger
}

// New wraps an initialized screen. The cursor starts at the world center.
func New(screen tcell.Screen, f *flock.Flock, w flock.Weights, follow bool, frameDelay time.Duration, logger log.Logger) *App {
	p := f.Params()
	return &App{
		screen:     screen,
		flock:      f,
		weights:    w.Sanitize(),
		follow:     follow,
		cursor:     geometry.Vector2D{X: p.WorldWidth / 2, Y: p.WorldHeight / 2},
		frameDelay: frameDelay,
		logger:     logger,
	}
}

// Weights returns the current behavior weights.
func (a *App) Weights() flock.Weights { return a.weights }

// Follow reports whether the boids are pulled toward the cursor.
func (a *App) Follow() bool { return a.follow }

// viewport leaves the last row for the status line.
func (a *App) viewport() Viewport {
	cols, rows := a.screen.Size()
	p := a.flock.Params()
	return Viewport{WorldWidth: p.WorldWidth, WorldHeight: p.WorldHeight, Cols: cols, Rows: max(1, rows-1)}
}

// HandleEvent applies one terminal event and reports whether the app must quit.
func (a *App) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if ev.Key() != tcell.KeyRune {
			return false
		}
		switch r := ev.Rune(); r {
		case 'q':
			return true
		case 'x', 'X':
			a.flock.AddObstacle(a.cursor)
			a.logger.Debugf("Obstacle added at %s", a.cursor)
		case 'y', 'Y':
			a.follow = !a.follow
		case 'r':
			a.flock.Reset(a.flock.Seed() + 1)
		default:
			// shifted digits lower the weight the digit raises
			if i := strings.IndexRune("1234", r); i >= 0 {
				a.adjust(i, weightStep)
			} else if i := strings.IndexRune("!@#$", r); i >= 0 {
				a.adjust(i, -weightStep)
			}
		}

	case *tcell.EventMouse:
		x, y := ev.Position()
		vp := a.viewport()
		if y < vp.Rows {
			a.cursor = vp.World(x, y)
		}
		if ev.Buttons()&tcell.Button1 != 0 && y < vp.Rows {
			a.flock.AddObstacle(a.cursor)
		}

	case *tcell.EventResize:
		a.screen.Sync()
	}
	return false
}

// adjust changes one weight by delta, keeping it within its slider range.
func (a *App) adjust(which int, delta float64) {
	w := &a.weights
	targets := [...]struct {
		v   *float64
		max float64
	}{
		{&w.Cohesion, weightMax.Cohesion},
		{&w.Separation, weightMax.Separation},
		{&w.Alignment, weightMax.Alignment},
		{&w.Avoidance, weightMax.Avoidance},
	}
	t := targets[which]
	*t.v = max(0, min(t.max, *t.v+delta))
}

// Step advances the flock by one frame with the current inputs.
func (a *App) Step() {
	a.flock.Step(a.weights, flock.CursorSeek{Enabled: a.follow, Target: a.cursor})
}

// Draw renders the flock, the obstacles and the status line.
func (a *App) Draw() {
	a.screen.Clear()
	vp := a.viewport()
	if vp.Cols <= 0 {
		a.screen.Show()
		return
	}

	for _, o := range a.flock.Obstacles() {
		x, y := vp.Cell(o)
		a.screen.SetContent(x, y, obstacleRune, nil, obstacleStyle)
	}
	for _, pose := range a.flock.Snapshot() {
		x, y := vp.Cell(pose.Position)
		a.screen.SetContent(x, y, arrowFor(pose.Heading), nil, boidStyle)
	}

	a.drawStatus(vp.Cols, vp.Rows)
	a.screen.Show()
}

func (a *App) drawStatus(cols, row int) {
	follow := "OFF"
	if a.follow {
		follow = "ON"
	}
	w := a.weights
	status := fmt.Sprintf(" frame %d | C %.1f S %.1f A %.1f O %.1f | 1-4 / !@#$ weights | x obstacle | y follow: %s | r reset | q quit ",
		a.flock.Frame(), w.Cohesion, w.Separation, w.Alignment, w.Avoidance, follow)
	x := 0
	for _, r := range status {
		if x >= cols {
			break
		}
		a.screen.SetContent(x, row, r, nil, statusStyle)
		x++
	}
}

// Run steps and draws every frameDelay until ctx is done or the user quits.
func (a *App) Run(ctx context.Context) error {
	a.screen.EnableMouse()
	defer a.screen.DisableMouse()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				// screen finalized
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(a.frameDelay)
	defer ticker.Stop()

	a.logger.Infof("Terminal host started with %d boids", a.flock.Len())
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if a.HandleEvent(ev) {
				a.logger.Infof("Quit after %d frames", a.flock.Frame())
				return nil
			}
		case <-ticker.C:
			a.Step()
			a.Draw()
		}
	}
}
