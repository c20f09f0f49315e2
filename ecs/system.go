package ecs

// System is one unit of per-frame behavior. A system struct may declare
// Query and Singleton fields; the scheduler initializes them at
// registration and refreshes the queries before each frame.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame carries the per-tick context handed to every system.
type UpdateFrame struct {
	// DeltaTime is the elapsed wall time since the previous tick, in
	// seconds.
	DeltaTime float64
	Commands  *Commands
	World     *World
}

func newUpdateFrame(dt float64, world *World) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		World:     world,
	}
}
