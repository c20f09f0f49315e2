package ecs_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/conefield/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type moveSystem struct {
	Entities ecs.Query[struct {
		*Position
		*Velocity
	}]
}

func (s *moveSystem) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Entities.Values() {
		item.Position.X += item.Velocity.DX * float32(frame.DeltaTime)
		item.Position.Y += item.Velocity.DY * float32(frame.DeltaTime)
	}
}

type countSystem struct {
	Entities ecs.Query[struct{ *Position }]
	Counter  ecs.Singleton[Score]
}

func (s *countSystem) Execute(frame *ecs.UpdateFrame) {
	*s.Counter.Get() += Score(s.Entities.Count())
}

func TestSchedulerWiresQueryFields(t *testing.T) {
	world := newTestWorld()

	id := world.Spawn(Position{X: 0, Y: 0}, Velocity{DX: 10, DY: 5})

	scheduler := ecs.NewScheduler(world)
	scheduler.Register(&moveSystem{})

	scheduler.Once(1.0)

	pos := ecs.ReadComponent[Position](world, id)
	require.NotNil(t, pos)
	assert.InDelta(t, 10.0, pos.X, 1e-6)
	assert.InDelta(t, 5.0, pos.Y, 1e-6)
}

func TestSchedulerWiresSingletonFields(t *testing.T) {
	world := newTestWorld()
	ecs.NewSingleton[Score](world)

	world.Spawn(Position{X: 1, Y: 1})
	world.Spawn(Position{X: 2, Y: 2})

	scheduler := ecs.NewScheduler(world)
	scheduler.Register(&countSystem{})

	scheduler.Once(0.016)
	scheduler.Once(0.016)

	var score *Score
	require.True(t, world.ReadSingleton(&score))
	assert.Equal(t, Score(4), *score)
}

type spawnerSystem struct {
	Entities ecs.Query[struct{ *Position }]
}

func (s *spawnerSystem) Execute(frame *ecs.UpdateFrame) {
	if s.Entities.Count() == 0 {
		frame.Commands.Spawn(Position{X: 1, Y: 1})
	}
}

func TestSchedulerFlushesCommands(t *testing.T) {
	world := newTestWorld()

	scheduler := ecs.NewScheduler(world)
	system := &spawnerSystem{}
	scheduler.Register(system)

	// Frame 1 queues the spawn; it lands after the frame.
	scheduler.Once(0.016)
	scheduler.Once(0.016)

	assert.Equal(t, 1, system.Entities.Count())
}

func TestSchedulerQueriesRefreshedEachFrame(t *testing.T) {
	world := newTestWorld()

	scheduler := ecs.NewScheduler(world)
	system := &moveSystem{}
	scheduler.Register(system)

	scheduler.Once(1.0) // empty world, nothing to move

	id := world.Spawn(Position{X: 0, Y: 0}, Velocity{DX: 1, DY: 0})
	scheduler.Once(1.0)

	pos := ecs.ReadComponent[Position](world, id)
	require.NotNil(t, pos)
	assert.InDelta(t, 1.0, pos.X, 1e-6)
}

func TestSchedulerStats(t *testing.T) {
	world := newTestWorld()

	scheduler := ecs.NewScheduler(world)
	scheduler.Register(&moveSystem{})
	scheduler.Register(&spawnerSystem{})

	scheduler.Once(0.016)
	scheduler.Once(0.016)
	scheduler.Once(0.016)

	stats := scheduler.Stats()
	assert.Equal(t, 2, stats.SystemCount)
	assert.Equal(t, int64(6), stats.TotalExecutions)

	require.Len(t, stats.Systems, 2)
	assert.Equal(t, "moveSystem", stats.Systems[0].Name)
	assert.Equal(t, int64(3), stats.Systems[0].ExecutionCount)
	assert.LessOrEqual(t, stats.Systems[0].MinDuration, stats.Systems[0].MaxDuration)
}

func TestSchedulerRunStopsOnCancel(t *testing.T) {
	world := newTestWorld()

	scheduler := ecs.NewScheduler(world)
	scheduler.Register(&moveSystem{})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx, 5*time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop on context cancellation")
	}

	assert.Greater(t, scheduler.Stats().TotalExecutions, int64(0))
}
