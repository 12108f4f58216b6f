package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/game"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/simulation"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "", "JSON or TOML config file, defaults are used when empty")
	seed := flag.Uint64("seed", 0, "random seed, overrides the config file (0 keeps the config value)")
	headless := flag.Bool("headless", false, "run without a window and log the final state")
	steps := flag.Int("steps", 1000, "number of frames to simulate in headless mode")
	debug := flag.Bool("debug", false, "enable debug logs")
	flag.Parse()

	level := log.InfoLevel
	if *debug {
		level = log.DebugLevel
	}
	logger := log.New(level, os.Stdout)

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configFile); err != nil {
			logger.Fatalf("💥 %v", err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64N(1<<53) + 1
	}
	logger.Infof("Starting flock of %d boids with seed %d", cfg.NumBoids, cfg.Seed)

	ctx := context.Background()
	system, err := simulation.StartActorSystem(ctx, "FlockingSimulation", logger)
	if err != nil {
		logger.Fatalf("💥 %v", err)
	}
	defer system.Stop(ctx)

	if *headless {
		if err := runHeadless(ctx, system, cfg, *steps, logger); err != nil {
			logger.Errorf("💥 %v", err)
		}
		return
	}

	g, err := game.NewGame(ctx, cfg, system, cfg.Seed)
	if err != nil {
		logger.Errorf("💥 %v", err)
		return
	}
	ebiten.SetWindowSize(int(cfg.WorldWidth*cfg.WindowScale), int(cfg.WorldHeight*cfg.WindowScale))
	ebiten.SetWindowTitle("Boids Flocking Simulator")
	ebiten.SetTPS(max(1, 1000/cfg.FrameDelayMs))
	if err := ebiten.RunGame(g); err != nil {
		logger.Errorf("💥 %v", err)
	}
}

// runHeadless steps the flock actor without rendering and logs the final snapshot.
func runHeadless(ctx context.Context, system actor.ActorSystem, cfg *simulation.Config, steps int, logger log.Logger) error {
	pid, err := simulation.SpawnFlock(ctx, system, simulation.NewFlockActor(nil, cfg, cfg.Seed))
	if err != nil {
		return err
	}

	step := simulation.NewStep(cfg.InitialWeights(), flock.CursorSeek{
		Enabled: cfg.FollowCursor,
		Target:  geometry.Vector2D{X: cfg.WorldWidth / 2, Y: cfg.WorldHeight / 2},
	})
	start := time.Now()
	for range steps {
		if err := actor.Tell(ctx, pid, step); err != nil {
			return err
		}
	}

	// the mailbox is FIFO, the snapshot is taken after the last step
	resp, err := actor.Ask(ctx, pid, &pb.GetSnapshot{}, 30*time.Second)
	if err != nil {
		return err
	}
	snap, ok := resp.(*pb.Snapshot)
	if !ok {
		return fmt.Errorf("unexpected reply %T", resp)
	}

	var maxSpeed float64
	for _, a := range snap.GetAgents() {
		maxSpeed = max(maxSpeed, simulation.VectorFromProto(a.GetVelocity()).Len())
	}
	logger.Infof("✅ %d frames of %d boids in %s (fastest boid %.3f)",
		snap.GetFrame(), len(snap.GetAgents()), time.Since(start).Round(time.Millisecond), maxSpeed)
	return nil
}
