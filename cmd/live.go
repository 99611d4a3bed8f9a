package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/df07/go-live-raytracer/pkg/display"
	"github.com/df07/go-live-raytracer/pkg/renderer"
	"github.com/urfave/cli"
)

// Render interactively in a window. Arrow keys, E and D move the camera.
func RenderLive(ctx *cli.Context) error {
	setupLogging(ctx)
	logHostInfo()

	sc, err := loadScene(ctx)
	if err != nil {
		return err
	}

	spp := ctx.Int("spp")
	if spp <= 0 {
		spp = sc.SamplingConfig.SamplesPerPixel
	}

	config := renderer.ProgressiveConfig{
		MaxSamplesPerPixel: spp,
		NumWorkers:         workerCount(ctx.Int("workers")),
		Seed:               ctx.Uint64("seed"),
	}

	r, err := renderer.NewProgressiveRaytracer(sc, config, logger)
	if err != nil {
		return err
	}
	defer r.Close()

	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return display.Run(sigCtx, r, display.Options{
		Title: "live raytracer - " + sc.Name,
		Scale: ctx.Int("scale"),
		HUD:   !ctx.Bool("no-hud"),
	})
}
