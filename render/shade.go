package render

import (
	"github.com/plus3/conefield/geom"
	"github.com/plus3/conefield/scene"
)

// Light is a point light snapshot taken at the start of a frame.
type Light struct {
	Position  geom.Vec3
	Color     [3]float32
	Intensity float32
}

const (
	// ambientLevel keeps unlit faces from going fully black.
	ambientLevel = 0.15
	// attenuationRange is the distance at which a light's contribution
	// drops to half its intensity.
	attenuationRange = 100.0
)

// Shade computes the flat color of a face at point with the given outward
// normal: Lambert diffuse per light with a soft distance falloff, clamped
// per channel. Alpha passes through from the albedo.
func Shade(point, normal geom.Vec3, material scene.Material, lights []Light) [4]float32 {
	n := normal.Normalize()

	var diffuse [3]float32
	for _, light := range lights {
		toLight := light.Position.Sub(point)
		dist2 := toLight.Dot(toLight)
		lambert := n.Dot(toLight.Normalize())
		if lambert <= 0 {
			continue
		}

		falloff := light.Intensity / (1 + dist2/(attenuationRange*attenuationRange))
		for i := 0; i < 3; i++ {
			diffuse[i] += lambert * falloff * light.Color[i]
		}
	}

	var out [4]float32
	for i := 0; i < 3; i++ {
		channel := material.Albedo[i] * (ambientLevel + diffuse[i])
		if channel > 1 {
			channel = 1
		}
		out[i] = channel
	}
	out[3] = material.Albedo[3]
	return out
}
