package main

import (
	"flag"
	"log"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/conefield/debugui"
	debugui_ebiten "github.com/plus3/conefield/debugui/ebiten"
	"github.com/plus3/conefield/ecs"
	"github.com/plus3/conefield/render"
	"github.com/plus3/conefield/scene"
)

const (
	ScreenWidth  = 1280
	ScreenHeight = 720
)

func main() {
	gridSize := flag.Int("grid", 201, "cones per grid edge")
	spacing := flag.Float64("spacing", 2.5, "distance between neighboring cones")
	width := flag.Int("width", ScreenWidth, "window width")
	height := flag.Int("height", ScreenHeight, "window height")
	secondLight := flag.Bool("second-light", true, "orbit a green light opposite the red one")
	debug := flag.Bool("debug", false, "show the debug overlay")
	flag.Parse()

	cfg := scene.DefaultConfig()
	cfg.GridSize = *gridSize
	cfg.Spacing = float32(*spacing)
	if *secondLight {
		cfg = cfg.WithSecondLight()
	}

	registry := ecs.NewComponentRegistry()
	scene.RegisterComponents(registry)
	debugui.RegisterComponents(registry)

	world := ecs.NewWorld(registry)

	log.Printf("building %dx%d cone field...", cfg.GridSize, cfg.GridSize)
	scene.Build(world, cfg)

	ecs.NewSingleton[scene.Clock](world)
	screen := ecs.NewSingleton[render.Screen](world)

	scheduler := ecs.NewScheduler(world)
	scheduler.Register(&scene.ClockSystem{})
	scheduler.Register(&scene.LightOrbitSystem{})
	scheduler.Register(&scene.CameraOrbitSystem{})

	renderScheduler := ecs.NewScheduler(world)
	renderScheduler.Register(&render.RenderSystem{})

	game := &Game{
		World:           world,
		Scheduler:       scheduler,
		RenderScheduler: renderScheduler,
		Screen:          screen,
	}

	if *debug {
		backend := ebitenbackend.NewEbitenBackend()
		backend.CreateWindow("Cone Field", *width, *height)
		imgui.CurrentIO().SetIniFilename("")

		ecs.NewSingleton[debugui_ebiten.ImguiBackend](world, debugui_ebiten.ImguiBackend{
			EbitenBackend: backend,
		})
		ecs.NewSingleton[debugui.ImguiInputState](world)
		scheduler.Register(&debugui.ImguiSystem{})

		game.ImguiBackend = ecs.NewSingleton[debugui_ebiten.ImguiBackend](world)
		game.FrameTimer = debugui.NewFrameTimer()
		game.Stats = debugui.SpawnPerformanceStats(world, scheduler, 120)
		spawnSceneWindow(world)
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("Cone Field")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("game loop: %v", err)
	}
}
