package main

import (
	"fmt"
	"os"

	"github.com/df07/go-live-raytracer/cmd"
	"github.com/urfave/cli"
)

var sceneFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "scene, s",
		Value: "default",
		Usage: "built-in scene id, file:<name> from the scenes dir, or a path to a .json scene",
	},
	cli.StringFlag{
		Name:  "scenes-dir",
		Value: "scenes",
		Usage: "directory searched for file:<name> scenes",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "image width in pixels (0 keeps the scene's width)",
	},
	cli.IntFlag{
		Name:  "max-depth",
		Usage: "maximum ray bounces (0 keeps the scene's depth)",
	},
	cli.IntFlag{
		Name:  "spp",
		Usage: "samples per pixel (0 keeps the scene's count)",
	},
	cli.IntFlag{
		Name:  "workers, w",
		Usage: "render goroutines; 0 uses every core, 1 renders serially",
	},
	cli.Uint64Flag{
		Name:  "seed",
		Value: 42,
		Usage: "base seed of the per-pixel random streams",
	},
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "live-raytracer"
	app.Usage = "progressively render sphere scenes and fly the camera around them"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a still frame to a file",
			Description: `
Accumulate --spp samples per pixel and write the image once. The format is
chosen by the extension of --out: .ppm (plain P3) or .png.`,
			Flags: append([]cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output file (default output/<scene>/render_<timestamp>.ppm)",
				},
			}, sceneFlags...),
			Action: cmd.RenderFrame,
		},
		{
			Name:  "live",
			Usage: "render interactively in a window",
			Description: `
Arrow keys move the camera right, left, up and down, E moves forward and D
moves back. Every move restarts the accumulation. Escape quits.`,
			Flags: append([]cli.Flag{
				cli.IntFlag{
					Name:  "scale",
					Value: 1,
					Usage: "window pixels per image pixel",
				},
				cli.BoolFlag{
					Name:  "no-hud",
					Usage: "hide the pass counter",
				},
			}, sceneFlags...),
			Action: cmd.RenderLive,
		},
		{
			Name:  "serve",
			Usage: "serve the live web view",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "port, p",
					Value: 8080,
					Usage: "port to serve on",
				},
				cli.StringFlag{
					Name:  "static",
					Value: "web/static",
					Usage: "directory of static files served at /",
				},
				cli.StringFlag{
					Name:  "scenes-dir",
					Value: "scenes",
					Usage: "directory scanned for JSON scene files",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Usage: "render goroutines per session; 0 uses every core",
				},
			},
			Action: cmd.Serve,
		},
		{
			Name:  "scenes",
			Usage: "list built-in scenes and scene files",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scenes-dir",
					Value: "scenes",
					Usage: "directory scanned for JSON scene files",
				},
			},
			Action: cmd.ListScenes,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
