// Package mesh generates the procedural shapes placed in the scene.
package mesh

import (
	"math"

	"github.com/plus3/conefield/geom"
)

// Triangle is one flat-shaded face: three counter-clockwise vertices and
// the face normal.
type Triangle struct {
	A, B, C geom.Vec3
	Normal  geom.Vec3
}

// Mesh is a triangle soup in model space.
type Mesh struct {
	Triangles []Triangle
}

// Cone builds a unit cone: apex at (0, 1, 0), base circle of radius 1 in
// the y = 0 plane, with the given number of radial subdivisions. The
// result has 2*subdivisions triangles (side fan plus base fan) and is
// fully determined by subdivisions. Panics for subdivisions < 3.
func Cone(subdivisions int) Mesh {
	if subdivisions < 3 {
		panic("mesh: cone needs at least 3 subdivisions")
	}

	apex := geom.V3(0, 1, 0)
	baseCenter := geom.V3(0, 0, 0)
	down := geom.V3(0, -1, 0)

	ring := make([]geom.Vec3, subdivisions)
	for i := range ring {
		angle := 2 * math.Pi * float64(i) / float64(subdivisions)
		ring[i] = geom.V3(float32(math.Cos(angle)), 0, float32(math.Sin(angle)))
	}

	triangles := make([]Triangle, 0, 2*subdivisions)
	for i := range ring {
		v0 := ring[i]
		v1 := ring[(i+1)%subdivisions]

		side := Triangle{A: apex, B: v1, C: v0}
		side.Normal = faceNormal(side.A, side.B, side.C)
		triangles = append(triangles, side)

		triangles = append(triangles, Triangle{
			A:      baseCenter,
			B:      v0,
			C:      v1,
			Normal: down,
		})
	}

	return Mesh{Triangles: triangles}
}

// faceNormal returns the unit normal of the triangle (a, b, c) with
// counter-clockwise winding.
func faceNormal(a, b, c geom.Vec3) geom.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}
