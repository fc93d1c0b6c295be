package main

import (
	"fmt"
	"os"

	"github.com/df07/go-sphere-tracer/cmd"
	"github.com/df07/go-sphere-tracer/pkg/config"
	"github.com/urfave/cli"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	defaults := config.Default()

	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	configFlag := cli.StringFlag{
		Name:  "config, c",
		Usage: "YAML configuration file; explicit flags override its values",
	}

	app := cli.NewApp()
	app.Name = "sphere-tracer"
	app.Usage = "render sphere scenes using path tracing"
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
			Usage: "render a single frame",
			Description: `
Render a built-in scene or a YAML scene file and write the frame to disk.
The output format is taken from --format or the output file extension
(png, jpeg, bmp, tiff, ppm). A fixed --seed gives a reproducible frame.`,
			Flags: []cli.Flag{
				configFlag,
				cli.IntFlag{
					Name:  "width",
					Value: defaults.Render.Width,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: defaults.Render.Height,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Value: defaults.Render.SamplesPerPixel,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "max-depth",
					Value: defaults.Render.MaxDepth,
					Usage: "maximum number of ray bounces",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: defaults.Render.Workers,
					Usage: "parallel render workers (0 uses every CPU)",
				},
				cli.Int64Flag{
					Name:  "seed",
					Value: defaults.Render.Seed,
					Usage: "random seed (0 picks one from the clock)",
				},
				cli.Float64Flag{
					Name:  "aperture",
					Usage: "override the scene's lens aperture",
				},
				cli.Float64Flag{
					Name:  "vfov",
					Usage: "override the scene's vertical field of view in degrees",
				},
				cli.StringFlag{
					Name:  "scene, s",
					Value: defaults.Scene.Name,
					Usage: "built-in scene name (see the scenes command)",
				},
				cli.StringFlag{
					Name:  "scene-file",
					Usage: "YAML scene file, takes precedence over --scene",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: defaults.Output.Path,
					Usage: "image filename for the rendered frame",
				},
				cli.StringFlag{
					Name:  "format, f",
					Usage: "image format, inferred from --out when empty",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list built-in scenes",
			Action: cmd.ListScenes,
		},
		{
			Name:  "serve",
			Usage: "serve renders over HTTP",
			Flags: []cli.Flag{
				configFlag,
				cli.IntFlag{
					Name:  "port, p",
					Value: defaults.Server.Port,
					Usage: "port to serve on",
				},
				cli.IntFlag{
					Name:  "max-concurrent",
					Value: defaults.Server.MaxConcurrent,
					Usage: "maximum number of renders running at once",
				},
			},
			Action: cmd.Serve,
		},
		{
			Name:  "config",
			Usage: "print the default configuration",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "out, o",
					Usage: "write to this file instead of stdout",
				},
			},
			Action: cmd.DumpConfig,
		},
	}

	return app
}
