package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/conefield/debugui"
	debugui_ebiten "github.com/plus3/conefield/debugui/ebiten"
	"github.com/plus3/conefield/ecs"
	"github.com/plus3/conefield/render"
)

// Game drives two schedulers through Ebiten's loop: the simulation
// scheduler with a fixed timestep in Update, and the render scheduler with
// the current frame's screen in Draw.
type Game struct {
	World           *ecs.World
	Scheduler       *ecs.Scheduler
	RenderScheduler *ecs.Scheduler
	Screen          *ecs.Singleton[render.Screen]

	// Debug overlay, all nil unless -debug is set.
	ImguiBackend *ecs.Singleton[debugui_ebiten.ImguiBackend]
	FrameTimer   *debugui.FrameTimer
	Stats        *debugui.PerformanceStats
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	backend := g.imguiBackend()
	if backend != nil {
		backend.BeginFrame()
	}

	g.Scheduler.Once(1.0 / 60.0)

	if backend != nil {
		backend.EndFrame()
	}
	if g.Stats != nil {
		g.Stats.RecordFrame(g.FrameTimer.DeltaTime())
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Screen.Get().Image = screen
	g.RenderScheduler.Once(0)

	if backend := g.imguiBackend(); backend != nil {
		backend.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if backend := g.imguiBackend(); backend != nil {
		backend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func (g *Game) imguiBackend() *debugui_ebiten.ImguiBackend {
	if g.ImguiBackend == nil {
		return nil
	}
	return g.ImguiBackend.Get()
}
