// Package scene defines the cone-field scene: its components, the grid
// builder that populates a world, and the systems that animate the light
// and camera from elapsed time.
package scene

import (
	"github.com/plus3/conefield/ecs"
	"github.com/plus3/conefield/geom"
)

//go:generate stringer -type=LightHue

// LightHue marks which orbit variant a light follows.
type LightHue int

const (
	HueRed LightHue = iota
	HueGreen
)

// Transform places an entity in world space. Rotations are applied Y
// first, then X, then the translation.
type Transform struct {
	Translation geom.Vec3
	RotationX   float32
	RotationY   float32
}

// Matrix returns the model matrix for this transform.
func (t Transform) Matrix() geom.Mat4 {
	return geom.Translation(t.Translation).
		Mul(geom.RotationX(t.RotationX)).
		Mul(geom.RotationY(t.RotationY))
}

// Shape selects the procedural mesh for an entity.
type Shape struct {
	// Subdivisions is the radial resolution of the cone.
	Subdivisions int
}

// Material carries PBR-style surface parameters. Only Albedo feeds the
// flat shading; Metallic and Roughness are kept as scene data.
type Material struct {
	Albedo    [4]float32 // RGBA, linear
	Metallic  float32
	Roughness float32
}

// PointLight is an omnidirectional light source.
type PointLight struct {
	Color     [3]float32
	Intensity float32
}

// Camera is a perspective camera that always faces Target.
type Camera struct {
	FovY   float32 // vertical field of view, radians
	Near   float32
	Far    float32
	Target geom.Vec3
	Up     geom.Vec3
}

// Clock is the singleton accumulating elapsed simulation time in seconds.
type Clock struct {
	Elapsed float64
}

// RegisterComponents registers every scene component type.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Shape](registry)
	ecs.RegisterComponent[Material](registry)
	ecs.RegisterComponent[PointLight](registry)
	ecs.RegisterComponent[LightHue](registry)
	ecs.RegisterComponent[Camera](registry)
}
