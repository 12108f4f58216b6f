package simulation

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pb"
	"github.com/lao-tseu-is-alive/go-flocking-simulation/pkg/flock"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	"github.com/tochemey/goakt/v3/log"
)

// FlockActor owns the authoritative flock. Every mutation goes through its
// mailbox, so steps and obstacle additions are never interleaved and an
// obstacle sent between two frames is seen by the next step.
type FlockActor struct {
	params flock.Params
	seed   uint64
	flock  *flock.Flock

	// Communication with UI, may be nil
	snapshotCh chan<- *pb.Snapshot

	// --- Benchmark Stats ---
	stepCount   int
	lastLogTime time.Time
}

var _ actor.Actor = (*FlockActor)(nil)

// NewFlockActor creates the actor. The flock itself is built in PreStart.
func NewFlockActor(snapshotCh chan<- *pb.Snapshot, cfg *Config, seed uint64) *FlockActor {
	return &FlockActor{
		params:      cfg.Params(),
		seed:        seed,
		snapshotCh:  snapshotCh,
		lastLogTime: time.Now(),
	}
}

func (a *FlockActor) PreStart(ctx *actor.Context) error {
	f, err := flock.New(a.params, a.seed)
	if err != nil {
		return fmt.Errorf("failed to create flock: %w", err)
	}
	a.flock = f
	ctx.ActorSystem().Logger().Infof("%s is spawning %d boids in a %.0fx%.0f world (seed %d)",
		ctx.ActorName(), f.Len(), a.params.WorldWidth, a.params.WorldHeight, a.seed)
	return nil
}

func (a *FlockActor) PostStop(ctx *actor.Context) error {
	if a.flock == nil {
		return nil
	}
	ctx.ActorSystem().Logger().Infof("%s stopped after %d frames", ctx.ActorName(), a.flock.Frame())
	return nil
}

func (a *FlockActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {
	case *goaktpb.PostStart:
		ctx.Logger().Debug("Flock started")

	case *pb.Step:
		a.flock.Step(WeightsFromProto(msg.GetWeights()), CursorFromProto(msg.GetCursor()))
		a.stepCount++
		a.logBenchmarks(ctx)
		a.pushSnapshot()

	case *pb.AddObstacle:
		pos := VectorFromProto(msg.GetPosition())
		a.flock.AddObstacle(pos)
		ctx.Logger().Debugf("Obstacle added at %s (%d total)", pos, len(a.flock.Obstacles()))

	case *pb.GetSnapshot:
		ctx.Response(SnapshotOf(a.flock))

	case *pb.ResetFlock:
		a.flock.Reset(msg.GetSeed())
		ctx.Logger().Infof("Flock reset with seed %d", msg.GetSeed())
		a.pushSnapshot()

	default:
		ctx.Unhandled()
	}
}

func (a *FlockActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(a.lastLogTime) >= time.Second {
		ctx.Logger().Infof("📊 STEP RATE: %d/sec | Boids: %d | Obstacles: %d | Frame: %d",
			a.stepCount, a.flock.Len(), len(a.flock.Obstacles()), a.flock.Frame())
		a.stepCount = 0
		a.lastLogTime = time.Now()
	}
}

func (a *FlockActor) pushSnapshot() {
	if a.snapshotCh == nil {
		return
	}
	select {
	case a.snapshotCh <- SnapshotOf(a.flock):
	default:
		// UI busy, skip frame
	}
}

// StartActorSystem creates and starts the actor system hosting the flock.
func StartActorSystem(ctx context.Context, name string, logger log.Logger) (actor.ActorSystem, error) {
	system, err := actor.NewActorSystem(name,
		actor.WithLogger(logger),
		actor.WithActorInitMaxRetries(3))
	if err != nil {
		return nil, fmt.Errorf("failed to create actor system: %w", err)
	}
	if err := system.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start actor system: %w", err)
	}
	return system, nil
}

// SpawnFlock spawns a under a unique name.
func SpawnFlock(ctx context.Context, system actor.ActorSystem, a *FlockActor) (*actor.PID, error) {
	pid, err := system.Spawn(ctx, "flock-"+uuid.NewString(), a)
	if err != nil {
		return nil, fmt.Errorf("failed to spawn flock: %w", err)
	}
	return pid, nil
}
