package ecs_test

import (
	"fmt"

	"github.com/plus3/conefield/ecs"
)

type Spin struct {
	Angle float64
	Rate  float64
}

type SpinSystem struct {
	Entities ecs.Query[struct{ *Spin }]
}

func (s *SpinSystem) Execute(frame *ecs.UpdateFrame) {
	for item := range s.Entities.Values() {
		item.Spin.Angle += item.Spin.Rate * frame.DeltaTime
	}
}

// ExampleScheduler shows the full setup of a world and a per-frame system.
// Query fields are initialized at registration and refreshed before every
// tick, so the system body only iterates.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Spin](registry)
	world := ecs.NewWorld(registry)

	world.Spawn(Spin{Angle: 0, Rate: 2})
	world.Spawn(Spin{Angle: 1, Rate: 1})

	scheduler := ecs.NewScheduler(world)
	scheduler.Register(&SpinSystem{})

	scheduler.Once(0.5)

	view := ecs.NewView[struct{ *Spin }](world)
	for item := range view.Values() {
		fmt.Printf("angle=%.1f\n", item.Spin.Angle)
	}

	// Output:
	// angle=1.0
	// angle=1.5
}
