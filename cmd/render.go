package cmd

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/df07/go-live-raytracer/pkg/output"
	"github.com/df07/go-live-raytracer/pkg/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame by accumulating --spp passes and writing the result once.
func RenderFrame(ctx *cli.Context) error {
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

	outFile := ctx.String("out")
	if outFile == "" {
		outFile = defaultOutputPath(ctx.String("scene"), time.Now())
	}

	logger.Noticef("rendering %dx%d at %d samples per pixel with %d workers",
		r.Buffer().Width(), r.Buffer().Height(), spp, r.Workers())

	start := time.Now()
	var slowest time.Duration
	for pass := 0; pass < spp; pass++ {
		result := r.RenderPass()
		if result.Duration > slowest {
			slowest = result.Duration
		}
	}
	elapsed := time.Since(start)

	if err := output.SaveFile(outFile, r.Buffer()); err != nil {
		return err
	}

	logger.Noticef("frame statistics\n%s", formatRenderStats(r.Buffer().Stats(), spp, r.Workers(), slowest, elapsed))
	logger.Noticef("render saved as %s", outFile)

	return nil
}

// defaultOutputPath places renders under output/<scene>/render_<timestamp>.ppm
func defaultOutputPath(sceneRef string, now time.Time) string {
	return filepath.Join("output", sceneBaseName(sceneRef),
		fmt.Sprintf("render_%s.ppm", now.Format("20060102_150405")))
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	return table
}

func formatRenderStats(stats renderer.RenderStats, passes, workers int, slowest, elapsed time.Duration) string {
	var buf bytes.Buffer
	table := newTable(&buf)
	table.SetHeader([]string{"Pixels", "Passes", "Samples/pixel", "Min", "Max", "Workers", "Slowest pass"})
	table.Append([]string{
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", passes),
		fmt.Sprintf("%.1f", stats.AverageSamples),
		fmt.Sprintf("%d", stats.MinSamples),
		fmt.Sprintf("%d", stats.MaxSamplesUsed),
		fmt.Sprintf("%d", workers),
		slowest.String(),
	})
	table.SetFooter([]string{"", "", "", "", "", "TOTAL", elapsed.String()})
	table.Render()

	return buf.String()
}
