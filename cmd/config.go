package cmd

import (
	"github.com/df07/go-sphere-tracer/pkg/config"
	"github.com/urfave/cli"
)

// Load the --config file if given, otherwise the defaults, then apply any
// explicitly set command line flags on top.
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.Default()
	if path := ctx.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
		logger.Infof("loaded configuration from %s", path)
	}

	if ctx.IsSet("width") {
		cfg.Render.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Render.Height = ctx.Int("height")
	}
	if ctx.IsSet("spp") {
		cfg.Render.SamplesPerPixel = ctx.Int("spp")
	}
	if ctx.IsSet("max-depth") {
		cfg.Render.MaxDepth = ctx.Int("max-depth")
	}
	if ctx.IsSet("workers") {
		cfg.Render.Workers = ctx.Int("workers")
	}
	if ctx.IsSet("seed") {
		cfg.Render.Seed = ctx.Int64("seed")
	}
	if ctx.IsSet("aperture") {
		aperture := float32(ctx.Float64("aperture"))
		cfg.Camera.Aperture = &aperture
	}
	if ctx.IsSet("vfov") {
		cfg.Camera.VFov = float32(ctx.Float64("vfov"))
	}
	if ctx.IsSet("scene") {
		cfg.Scene.Name = ctx.String("scene")
		cfg.Scene.File = ""
	}
	if ctx.IsSet("scene-file") {
		cfg.Scene.File = ctx.String("scene-file")
	}
	if ctx.IsSet("out") {
		cfg.Output.Path = ctx.String("out")
	}
	if ctx.IsSet("format") {
		cfg.Output.Format = ctx.String("format")
	}
	if ctx.IsSet("port") {
		cfg.Server.Port = ctx.Int("port")
	}
	if ctx.IsSet("max-concurrent") {
		cfg.Server.MaxConcurrent = ctx.Int("max-concurrent")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Print the default configuration as YAML.
func DumpConfig(ctx *cli.Context) error {
	data, err := config.Default().Marshal()
	if err != nil {
		return err
	}

	if path := ctx.String("out"); path != "" {
		if err := config.Default().Save(path); err != nil {
			return err
		}
		logger.Noticef("wrote default configuration to %s", path)
		return nil
	}

	_, err = ctx.App.Writer.Write(data)
	return err
}
