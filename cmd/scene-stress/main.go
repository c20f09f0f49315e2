package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/conefield/ecs"
	"github.com/plus3/conefield/scene"
)

// Headless stress run: build a cone field and pump the animation systems as
// fast as possible, then report update timing and memory usage.
func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	gridSize := flag.Int("grid", 201, "Cones per grid edge.")
	secondLight := flag.Bool("second-light", true, "Animate the green light as well as the red one.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting cone field stress test...")

	cfg := scene.DefaultConfig()
	cfg.GridSize = *gridSize
	if *secondLight {
		cfg = cfg.WithSecondLight()
	}

	registry := ecs.NewComponentRegistry()
	scene.RegisterComponents(registry)
	world := ecs.NewWorld(registry)

	log.Printf("Building %dx%d cone field...", cfg.GridSize, cfg.GridSize)
	scene.Build(world, cfg)
	ecs.NewSingleton[scene.Clock](world)

	scheduler := ecs.NewScheduler(world)
	scheduler.Register(&scene.ClockSystem{})
	scheduler.Register(&scene.LightOrbitSystem{})
	scheduler.Register(&scene.CameraOrbitSystem{})

	report := &Report{
		Duration:       *duration,
		GridSize:       cfg.GridSize,
		Entities:       world.CollectStats().TotalEntityCount,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running simulation for %s...", *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			updateStart := time.Now()
			scheduler.Once(deltaTime.Seconds())
			updateDuration := time.Since(updateStart)

			report.UpdateTime.Samples = append(report.UpdateTime.Samples, updateDuration)
			report.TotalUpdates++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
