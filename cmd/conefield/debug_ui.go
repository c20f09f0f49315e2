package main

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/conefield/debugui"
	"github.com/plus3/conefield/ecs"
	"github.com/plus3/conefield/scene"
)

func spawnSceneWindow(world *ecs.World) {
	world.Spawn(debugui.ImguiItem{
		Render: func() {
			imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
			imgui.SetNextWindowSizeV(imgui.NewVec2(300, 220), imgui.CondOnce)

			if imgui.BeginV("Scene", nil, 0) {
				var clock *scene.Clock
				if world.ReadSingleton(&clock) {
					imgui.Text(fmt.Sprintf("Elapsed: %.2f s", clock.Elapsed))
					imgui.Separator()
				}

				lights := ecs.NewView[struct {
					*scene.Transform
					*scene.PointLight
					*scene.LightHue
				}](world)
				for item := range lights.Values() {
					p := item.Transform.Translation
					name := strings.TrimPrefix(item.LightHue.String(), "Hue")
					imgui.Text(fmt.Sprintf("%s light: (%.1f, %.1f, %.1f) i=%.0f",
						name, p.X, p.Y, p.Z, item.PointLight.Intensity))
				}

				imgui.Separator()
				cameras := ecs.NewView[struct {
					*scene.Transform
					*scene.Camera
				}](world)
				for item := range cameras.Values() {
					p := item.Transform.Translation
					imgui.Text(fmt.Sprintf("Camera: (%.1f, %.1f, %.1f)", p.X, p.Y, p.Z))
				}

				imgui.End()
			}
		},
	})
}
