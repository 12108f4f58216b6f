package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/tui"
	"github.com/tochemey/goakt/v3/log"
)

func main() {
	configFile := flag.String("config", "", "JSON or TOML config file, defaults are used when empty")
	seed := flag.Uint64("seed", 0, "random seed, overrides the config file (0 keeps the config value)")
	logFile := flag.String("log", "", "write logs to this file, the terminal is used for drawing")
	flag.Parse()

	// the screen owns stdout, logs are discarded unless a file is given
	var out io.Writer = io.Discard
	if *logFile != "" {
		fh, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.DefaultLogger.Fatalf("💥 failed to open log file: %v", err)
		}
		defer fh.Close()
		out = fh
	}
	logger := log.New(log.InfoLevel, out)

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		var err error
		if cfg, err = simulation.LoadConfig(*configFile); err != nil {
			log.DefaultLogger.Fatalf("💥 %v", err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64N(1<<53) + 1
	}

	f, err := flock.New(cfg.Params(), cfg.Seed)
	if err != nil {
		log.DefaultLogger.Fatalf("💥 %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.DefaultLogger.Fatalf("💥 failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.DefaultLogger.Fatalf("💥 failed to initialize screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	app := tui.New(screen, f, cfg.InitialWeights(), cfg.FollowCursor, time.Duration(cfg.FrameDelayMs)*time.Millisecond, logger)
	err = app.Run(ctx)
	stop()
	screen.Fini()

	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Errorf("💥 %v", err)
		os.Exit(1)
	}
}
