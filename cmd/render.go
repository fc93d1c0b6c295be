package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/imageio"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/urfave/cli"
)

// Render a still frame.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	format, err := cfg.OutputFormat()
	if err != nil {
		return err
	}

	sc, err := cfg.BuildScene()
	if err != nil {
		return err
	}
	logger.Infof("scene %q with %d spheres", sc.Name, sc.GetPrimitiveCount())

	r, err := renderer.NewRaytracer(sc, cfg.RenderOptions())
	if err != nil {
		return err
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	frame, stats, err := r.Render(renderCtx)
	if err != nil {
		return fmt.Errorf("rendering frame: %w", err)
	}

	// Display stats
	logger.Noticef("frame statistics (seed %d)\n%s", stats.Seed, stats.Table())
	logSystemInfo()

	start := time.Now()
	if err := writeImage(cfg.Output.Path, frame, format); err != nil {
		return err
	}
	logger.Noticef("wrote frame to %s in %d ms", cfg.Output.Path, time.Since(start).Milliseconds())

	return nil
}

func writeImage(path string, frame *renderer.PixelBuffer, format imageio.Format) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}

	if err := imageio.Encode(f, frame, format); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s file: %w", format, err)
	}
	return f.Close()
}
