package cmd

import (
	"github.com/df07/go-sphere-tracer/web/server"
	"github.com/urfave/cli"
)

// Serve renders over HTTP.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	logger.Noticef("visit http://localhost:%d/api/render?scene=default to start rendering", cfg.Server.Port)
	return server.NewServer(cfg.Server).Start()
}
