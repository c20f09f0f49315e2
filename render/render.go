// Package render draws the cone field with a software projection pipeline
// on top of Ebiten: triangles are transformed on the CPU, depth-sorted, and
// handed to DrawTriangles as flat-shaded screen-space geometry.
package render

import (
	"image"
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/conefield/ecs"
	"github.com/plus3/conefield/geom"
	"github.com/plus3/conefield/mesh"
	"github.com/plus3/conefield/scene"
)

// Screen hands the current frame's target image to the render systems as a
// singleton. The game loop must set it before running the render scheduler.
type Screen struct {
	*ebiten.Image
}

var backgroundColor = color.RGBA{87, 92, 133, 255}

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// DrawTriangles indexes vertices with uint16, so a batch flushes before it
// reaches that many vertices.
const maxBatchVertices = 65532

type screenTriangle struct {
	x, y  [3]float32
	shade [4]float32
	depth float32
}

type RenderSystem struct {
	Screen ecs.Singleton[Screen]

	Cameras ecs.Query[struct {
		*scene.Transform
		*scene.Camera
	}]
	Lights ecs.Query[struct {
		*scene.Transform
		*scene.PointLight
	}]
	Cones ecs.Query[struct {
		*scene.Transform
		*scene.Shape
		*scene.Material
	}]

	meshCache map[int]mesh.Mesh
	lights    []Light
	triangles []screenTriangle
	vertices  []ebiten.Vertex
	indices   []uint16
}

func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	screen := s.Screen.Get().Image
	if screen == nil {
		return
	}
	screen.Fill(backgroundColor)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())

	var eye geom.Vec3
	var viewProj geom.Mat4
	haveCamera := false
	for item := range s.Cameras.Values() {
		eye = item.Transform.Translation
		view := geom.LookAt(eye, item.Camera.Target, item.Camera.Up)
		proj := geom.Perspective(item.Camera.FovY, width/height, item.Camera.Near, item.Camera.Far)
		viewProj = proj.Mul(view)
		haveCamera = true
		break
	}
	if !haveCamera {
		return
	}

	s.lights = s.lights[:0]
	for item := range s.Lights.Values() {
		s.lights = append(s.lights, Light{
			Position:  item.Transform.Translation,
			Color:     item.PointLight.Color,
			Intensity: item.PointLight.Intensity,
		})
	}

	s.triangles = s.triangles[:0]
	for item := range s.Cones.Values() {
		model := item.Transform.Matrix()
		for _, tri := range s.meshFor(item.Shape.Subdivisions).Triangles {
			a := model.TransformPoint(tri.A)
			b := model.TransformPoint(tri.B)
			c := model.TransformPoint(tri.C)
			normal := model.TransformDir(tri.Normal)

			center := a.Add(b).Add(c).Scale(1.0 / 3.0)
			if normal.Dot(center.Sub(eye)) >= 0 {
				continue
			}

			ax, ay, ad, ok := geom.Project(viewProj, a, width, height)
			if !ok {
				continue
			}
			bx, by, bd, ok := geom.Project(viewProj, b, width, height)
			if !ok {
				continue
			}
			cx, cy, cd, ok := geom.Project(viewProj, c, width, height)
			if !ok {
				continue
			}

			s.triangles = append(s.triangles, screenTriangle{
				x:     [3]float32{ax, bx, cx},
				y:     [3]float32{ay, by, cy},
				shade: Shade(center, normal, *item.Material, s.lights),
				depth: (ad + bd + cd) / 3,
			})
		}
	}

	// Painter's algorithm: far triangles first so the translucent cones
	// composite correctly.
	sort.Slice(s.triangles, func(i, j int) bool {
		return s.triangles[i].depth > s.triangles[j].depth
	})

	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	for _, tri := range s.triangles {
		if len(s.vertices) >= maxBatchVertices {
			s.flush(screen)
		}
		base := uint16(len(s.vertices))
		for i := 0; i < 3; i++ {
			s.vertices = append(s.vertices, ebiten.Vertex{
				DstX:   tri.x[i],
				DstY:   tri.y[i],
				SrcX:   1,
				SrcY:   1,
				ColorR: tri.shade[0],
				ColorG: tri.shade[1],
				ColorB: tri.shade[2],
				ColorA: tri.shade[3],
			})
		}
		s.indices = append(s.indices, base, base+1, base+2)
	}
	s.flush(screen)
}

func (s *RenderSystem) flush(screen *ebiten.Image) {
	if len(s.indices) == 0 {
		return
	}
	opts := &ebiten.DrawTrianglesOptions{
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
	}
	screen.DrawTriangles(s.vertices, s.indices, whiteSubImage, opts)
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
}

func (s *RenderSystem) meshFor(subdivisions int) mesh.Mesh {
	if s.meshCache == nil {
		s.meshCache = make(map[int]mesh.Mesh)
	}
	m, ok := s.meshCache[subdivisions]
	if !ok {
		m = mesh.Cone(subdivisions)
		s.meshCache[subdivisions] = m
	}
	return m
}
