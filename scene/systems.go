package scene

import (
	"github.com/plus3/conefield/ecs"
)

// ClockSystem accumulates frame delta time into the Clock singleton. It
// must run before the orbit systems.
type ClockSystem struct {
	Clock ecs.Singleton[Clock]
}

func (s *ClockSystem) Execute(frame *ecs.UpdateFrame) {
	s.Clock.Get().Elapsed += frame.DeltaTime
}

// LightOrbitSystem recomputes every light's position from elapsed time.
// Position is a pure function of the clock, never of the previous frame.
type LightOrbitSystem struct {
	Clock  ecs.Singleton[Clock]
	Lights ecs.Query[struct {
		*Transform
		*PointLight
		*LightHue
	}]
}

func (s *LightOrbitSystem) Execute(frame *ecs.UpdateFrame) {
	t := s.Clock.Get().Elapsed
	for item := range s.Lights.Values() {
		item.Transform.Translation = OrbitFor(*item.LightHue).At(t)
	}
}

// CameraOrbitSystem moves the camera along its orbit. The camera component
// keeps facing its target, so no rotation bookkeeping is needed here.
type CameraOrbitSystem struct {
	Clock   ecs.Singleton[Clock]
	Cameras ecs.Query[struct {
		*Transform
		*Camera
	}]
}

func (s *CameraOrbitSystem) Execute(frame *ecs.UpdateFrame) {
	t := s.Clock.Get().Elapsed
	orbit := CameraOrbit()
	for item := range s.Cameras.Values() {
		item.Transform.Translation = orbit.At(t)
	}
}
