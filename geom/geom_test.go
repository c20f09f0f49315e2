package geom_test

import (
	"math"
	"testing"

	"github.com/plus3/conefield/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVec3Basics(t *testing.T) {
	a := geom.V3(1, 2, 3)
	b := geom.V3(4, 5, 6)

	assert.Equal(t, geom.V3(5, 7, 9), a.Add(b))
	assert.Equal(t, geom.V3(-3, -3, -3), a.Sub(b))
	assert.Equal(t, geom.V3(2, 4, 6), a.Scale(2))
	assert.InDelta(t, 32.0, float64(a.Dot(b)), 1e-6)
}

func TestVec3Cross(t *testing.T) {
	x := geom.V3(1, 0, 0)
	y := geom.V3(0, 1, 0)

	assert.Equal(t, geom.V3(0, 0, 1), x.Cross(y))
	assert.Equal(t, geom.V3(0, 0, -1), y.Cross(x))
}

func TestVec3Normalize(t *testing.T) {
	v := geom.V3(3, 0, 4)
	n := v.Normalize()

	assert.InDelta(t, 1.0, float64(n.Len()), 1e-6)
	assert.InDelta(t, 0.6, float64(n.X), 1e-6)
	assert.InDelta(t, 0.8, float64(n.Z), 1e-6)

	// Zero vector stays zero instead of producing NaN.
	assert.Equal(t, geom.Vec3{}, geom.Vec3{}.Normalize())
}

func TestMat4Identity(t *testing.T) {
	p := geom.V3(1, 2, 3)
	assert.Equal(t, p, geom.Identity().TransformPoint(p))
}

func TestMat4Translation(t *testing.T) {
	m := geom.Translation(geom.V3(10, 20, 30))
	assert.Equal(t, geom.V3(11, 22, 33), m.TransformPoint(geom.V3(1, 2, 3)))

	// Directions ignore translation.
	assert.Equal(t, geom.V3(1, 2, 3), m.TransformDir(geom.V3(1, 2, 3)))
}

func TestMat4RotationX(t *testing.T) {
	m := geom.RotationX(math.Pi / 2)
	got := m.TransformPoint(geom.V3(0, 1, 0))

	assert.InDelta(t, 0.0, float64(got.X), 1e-6)
	assert.InDelta(t, 0.0, float64(got.Y), 1e-6)
	assert.InDelta(t, 1.0, float64(got.Z), 1e-6)
}

func TestMat4RotationY(t *testing.T) {
	m := geom.RotationY(math.Pi)
	got := m.TransformPoint(geom.V3(1, 0, 0))

	assert.InDelta(t, -1.0, float64(got.X), 1e-6)
	assert.InDelta(t, 0.0, float64(got.Z), 1e-6)
}

func TestMat4MulComposes(t *testing.T) {
	translate := geom.Translation(geom.V3(1, 0, 0))
	rotate := geom.RotationY(math.Pi)

	// translate * rotate applies the rotation first.
	m := translate.Mul(rotate)
	got := m.TransformPoint(geom.V3(1, 0, 0))

	assert.InDelta(t, 0.0, float64(got.X), 1e-6)
	assert.InDelta(t, 0.0, float64(got.Z), 1e-6)
}

func TestLookAtCentersTarget(t *testing.T) {
	eye := geom.V3(0, 0, -12)
	view := geom.LookAt(eye, geom.V3(0, 0, 0), geom.V3(0, 1, 0))

	// The target lands on the -Z axis in view space.
	got := view.TransformPoint(geom.V3(0, 0, 0))
	assert.InDelta(t, 0.0, float64(got.X), 1e-5)
	assert.InDelta(t, 0.0, float64(got.Y), 1e-5)
	assert.InDelta(t, -12.0, float64(got.Z), 1e-5)

	// The eye maps to the origin.
	origin := view.TransformPoint(eye)
	assert.InDelta(t, 0.0, float64(origin.Len()), 1e-5)
}

func TestProjectCenterOfView(t *testing.T) {
	eye := geom.V3(0, 0, -12)
	view := geom.LookAt(eye, geom.V3(0, 0, 0), geom.V3(0, 1, 0))
	proj := geom.Perspective(math.Pi/3, 16.0/9.0, 0.1, 2000)
	viewProj := proj.Mul(view)

	x, y, depth, ok := geom.Project(viewProj, geom.V3(0, 0, 0), 1600, 900)
	require.True(t, ok)
	assert.InDelta(t, 800.0, float64(x), 1e-2)
	assert.InDelta(t, 450.0, float64(y), 1e-2)
	assert.Greater(t, depth, float32(0))
}

func TestProjectBehindCamera(t *testing.T) {
	eye := geom.V3(0, 0, -12)
	view := geom.LookAt(eye, geom.V3(0, 0, 0), geom.V3(0, 1, 0))
	proj := geom.Perspective(math.Pi/3, 1, 0.1, 2000)
	viewProj := proj.Mul(view)

	_, _, _, ok := geom.Project(viewProj, geom.V3(0, 0, -30), 800, 800)
	assert.False(t, ok)
}

func TestProjectDepthOrdering(t *testing.T) {
	eye := geom.V3(0, 0, -12)
	view := geom.LookAt(eye, geom.V3(0, 0, 0), geom.V3(0, 1, 0))
	proj := geom.Perspective(math.Pi/3, 1, 0.1, 2000)
	viewProj := proj.Mul(view)

	_, _, nearDepth, ok := geom.Project(viewProj, geom.V3(0, 0, -5), 800, 800)
	require.True(t, ok)
	_, _, farDepth, ok := geom.Project(viewProj, geom.V3(0, 0, 5), 800, 800)
	require.True(t, ok)

	assert.Less(t, nearDepth, farDepth)
}
