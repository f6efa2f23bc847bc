package main

import (
	"flag"
	"os"
	"runtime"

	"github.com/gekko3d/confetti"
	"github.com/gekko3d/confetti/overlay/app"
)

func init() {
	// GLFW and the surface it hands to wgpu live on the main thread.
	runtime.LockOSThread()
}

func main() {
	cfg := confetti.DefaultConfig()
	flag.Var(&cfg.Palette, "palette", "Color palette: party, pastel, earth, neon, cool, sunset, ocean, retro, forest, candy")
	flag.IntVar(&cfg.Population, "count", cfg.Population, "Number of confetti particles")
	flag.DurationVar(&cfg.Lifetime, "lifetime", cfg.Lifetime, "How long the burst plays")
	flag.DurationVar(&cfg.FrameInterval, "interval", cfg.FrameInterval, "Pause between frames")
	size := flag.Float64("size", float64(cfg.QuadSize), "Edge length of one particle quad in clip space")
	flag.Int64Var(&cfg.Seed, "seed", 0, "Particle seed (0 = from clock)")
	flag.BoolVar(&cfg.ApplyResize, "apply-resize", false, "Reconfigure the surface on every compositor resize")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging and the frame profile")
	flag.Parse()
	cfg.QuadSize = float32(*size)

	runID := confetti.NewRunID()
	log := confetti.NewDefaultLogger("confetti/"+runID, cfg.Debug)

	application := app.New(cfg, app.WithLogger(log), app.WithRunID(runID))
	if _, err := application.Run(); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
