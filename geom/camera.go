package geom

import "math"

// LookAt builds a right-handed view matrix for a camera at eye looking at
// target, with up orienting the camera roll.
func LookAt(eye, target, up Vec3) Mat4 {
	forward := target.Sub(eye).Normalize()
	right := forward.Cross(up.Normalize()).Normalize()
	trueUp := right.Cross(forward)

	return Mat4{
		{right.X, right.Y, right.Z, -right.Dot(eye)},
		{trueUp.X, trueUp.Y, trueUp.Z, -trueUp.Dot(eye)},
		{-forward.X, -forward.Y, -forward.Z, forward.Dot(eye)},
		{0, 0, 0, 1},
	}
}

// Perspective builds a right-handed perspective projection with the given
// vertical field of view in radians.
func Perspective(fovY, aspect, near, far float32) Mat4 {
	f := float32(1 / math.Tan(float64(fovY)/2))
	return Mat4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, (far + near) / (near - far), 2 * far * near / (near - far)},
		{0, 0, -1, 0},
	}
}

// Project maps a world-space point through a combined view-projection
// matrix into screen coordinates. The returned depth is the view-space
// distance usable for painter's sorting; ok is false when the point is
// behind the camera.
func Project(viewProj Mat4, p Vec3, screenW, screenH float32) (x, y, depth float32, ok bool) {
	clip, w := viewProj.TransformPointW(p)
	if w <= 0 {
		return 0, 0, 0, false
	}

	ndcX := clip.X / w
	ndcY := clip.Y / w

	x = (ndcX + 1) / 2 * screenW
	y = (1 - ndcY) / 2 * screenH
	return x, y, w, true
}
