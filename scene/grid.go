package scene

import (
	"math"

	"github.com/plus3/conefield/ecs"
	"github.com/plus3/conefield/geom"
)

// CellPosition maps a grid index pair to its world-space position. The
// grid is centered on the origin using integer halving, matching the
// placement formula `(index - n/2) * spacing` on both axes; the plane sits
// at z = 0. The mapping is total and injective for spacing != 0.
func CellPosition(row, col, n int, spacing float32) geom.Vec3 {
	return geom.V3(
		float32(row-n/2)*spacing,
		float32(col-n/2)*spacing,
		0,
	)
}

// LightSpec configures one orbiting point light.
type LightSpec struct {
	Hue       LightHue
	Color     [3]float32
	Intensity float32
}

// Config describes a cone-field scene.
type Config struct {
	// GridSize is the edge length n of the n×n cone grid.
	GridSize int
	// Spacing is the world-space distance between neighboring cones.
	Spacing float32
	// Subdivisions is the radial resolution of each cone mesh.
	Subdivisions int
	// Lights lists the orbiting lights to create.
	Lights []LightSpec
}

// DefaultConfig returns the canonical scene: a 201×201 grid with 2.5
// spacing, 7-subdivision cones, and a single red light.
func DefaultConfig() Config {
	return Config{
		GridSize:     201,
		Spacing:      2.5,
		Subdivisions: 7,
		Lights: []LightSpec{
			{Hue: HueRed, Color: [3]float32{1, 0, 0}, Intensity: 10},
		},
	}
}

// WithSecondLight returns the config extended by a green counter-light
// on the axis-swapped orbit.
func (c Config) WithSecondLight() Config {
	c.Lights = append(c.Lights[:len(c.Lights):len(c.Lights)], LightSpec{
		Hue:       HueGreen,
		Color:     [3]float32{0, 1, 0},
		Intensity: 10,
	})
	return c
}

// Build populates the world: one cone entity per grid cell, one entity
// per configured light, and one camera. Lights and the camera spawn at
// their orbit's t=0 position so the first tick does not teleport them.
func Build(world *ecs.World, cfg Config) {
	material := Material{
		Albedo:    [4]float32{1, 1, 1, 0.5},
		Metallic:  0,
		Roughness: 0,
	}

	for row := 0; row < cfg.GridSize; row++ {
		for col := 0; col < cfg.GridSize; col++ {
			world.Spawn(
				Transform{
					Translation: CellPosition(row, col, cfg.GridSize, cfg.Spacing),
					RotationX:   math.Pi,
				},
				Shape{Subdivisions: cfg.Subdivisions},
				material,
			)
		}
	}

	for _, light := range cfg.Lights {
		world.Spawn(
			Transform{Translation: OrbitFor(light.Hue).At(0)},
			PointLight{Color: light.Color, Intensity: light.Intensity},
			light.Hue,
		)
	}

	world.Spawn(
		Transform{Translation: CameraOrbit().At(0)},
		Camera{
			FovY:   math.Pi / 3,
			Near:   0.1,
			Far:    2000,
			Target: geom.V3(0, 0, 0),
			Up:     geom.V3(0, 0, -1),
		},
	)
}
