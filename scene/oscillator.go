package scene

import (
	"math"

	"github.com/plus3/conefield/geom"
)

// Oscillator is a pure periodic function of time:
//
//	value(t) = Amplitude * sin(Frequency*t + Phase) + Offset
//
// It holds no state; equal inputs always produce equal outputs.
type Oscillator struct {
	Amplitude float64
	Frequency float64
	Phase     float64
	Offset    float64
}

// At evaluates the oscillator at time t (seconds).
func (o Oscillator) At(t float64) float64 {
	return o.Amplitude*math.Sin(o.Frequency*t+o.Phase) + o.Offset
}

// Period returns the oscillation period 2π/Frequency.
func (o Oscillator) Period() float64 {
	return 2 * math.Pi / o.Frequency
}

// Orbit combines two oscillators into planar motion at a fixed depth.
type Orbit struct {
	X, Y Oscillator
	Z    float32
}

// At returns the orbit position at time t.
func (o Orbit) At(t float64) geom.Vec3 {
	return geom.V3(float32(o.X.At(t)), float32(o.Y.At(t)), o.Z)
}

// Both lights run at angular frequency 10 on a radius-100 circle at
// z = -3; the camera circles at angular frequency 1 on radius 8 at z = -5.
const (
	lightFrequency = 10
	lightRadius    = 100
	lightDepth     = -3

	cameraFrequency = 1
	cameraRadius    = 8
	cameraDepth     = -5
)

// RedLightOrbit returns the red light's path:
// (cos(10t)*100, -sin(10t)*100, -3).
func RedLightOrbit() Orbit {
	return Orbit{
		X: Oscillator{Amplitude: lightRadius, Frequency: lightFrequency, Phase: math.Pi / 2},
		Y: Oscillator{Amplitude: -lightRadius, Frequency: lightFrequency},
		Z: lightDepth,
	}
}

// GreenLightOrbit returns the green light's path, the red orbit with its
// axes swapped: (-sin(10t)*100, cos(10t)*100, -3).
func GreenLightOrbit() Orbit {
	return Orbit{
		X: Oscillator{Amplitude: -lightRadius, Frequency: lightFrequency},
		Y: Oscillator{Amplitude: lightRadius, Frequency: lightFrequency, Phase: math.Pi / 2},
		Z: lightDepth,
	}
}

// CameraOrbit returns the camera's path: (-8*sin(t), 8*cos(t), -5).
func CameraOrbit() Orbit {
	return Orbit{
		X: Oscillator{Amplitude: -cameraRadius, Frequency: cameraFrequency},
		Y: Oscillator{Amplitude: cameraRadius, Frequency: cameraFrequency, Phase: math.Pi / 2},
		Z: cameraDepth,
	}
}

// OrbitFor maps a light hue to its orbit.
func OrbitFor(hue LightHue) Orbit {
	if hue == HueGreen {
		return GreenLightOrbit()
	}
	return RedLightOrbit()
}
