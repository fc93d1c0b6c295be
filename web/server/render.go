package server

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-sphere-tracer/pkg/imageio"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
	"github.com/labstack/echo/v4"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene    string         // Preset name
	Width    int            // Image width
	Height   int            // Image height
	Samples  int            // Samples per pixel
	MaxDepth int            // Bounce limit
	Seed     int64          // 0 picks a time based seed
	Aperture *float32       // Optional lens aperture override
	Format   imageio.Format // Response encoding
}

// sceneOptions returns the scene overrides for this request
func (r *RenderRequest) sceneOptions() scene.Options {
	return scene.Options{
		AspectRatio: float32(r.Width) / float32(r.Height),
		Aperture:    r.Aperture,
		Seed:        r.Seed,
	}
}

// parseRenderRequest parses query parameters against the server limits
func (s *Server) parseRenderRequest(c echo.Context) (*RenderRequest, error) {
	req := &RenderRequest{Scene: "default", Format: imageio.PNG}
	if name := c.QueryParam("scene"); name != "" {
		req.Scene = name
	}

	var err error
	if req.Width, err = parseIntParam(c, "width", 200, 1, s.cfg.MaxWidth); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(c, "height", 100, 1, s.cfg.MaxHeight); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(c, "samples", 10, 1, s.cfg.MaxSamples); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(c, "maxDepth", integrator.DefaultMaxDepth, 1, 1000); err != nil {
		return nil, err
	}
	if req.Aperture, err = parseFloatParam(c, "aperture", 0, 10); err != nil {
		return nil, err
	}
	if seed := c.QueryParam("seed"); seed != "" {
		if req.Seed, err = strconv.ParseInt(seed, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid seed: %s", seed)
		}
	}
	if format := c.QueryParam("format"); format != "" {
		if req.Format, err = imageio.ParseFormat(format); err != nil {
			return nil, err
		}
	}

	if req.Width*req.Height > 800*600 && req.Samples > 100 {
		logger.Warning("large image with high samples may render slowly")
	}

	return req, nil
}

// handleRender renders a full frame and returns it as an encoded image
func (s *Server) handleRender(c echo.Context) error {
	req, err := s.parseRenderRequest(c)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, "invalid request: "+err.Error())
	}

	preset, err := scene.Lookup(req.Scene)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	select {
	case s.sem <- struct{}{}:
		defer func() { <-s.sem }()
	default:
		return errorJSON(c, http.StatusServiceUnavailable, "too many renders in progress")
	}

	raytracer, err := renderer.NewRaytracer(preset.Build(req.sceneOptions()), renderer.Options{
		Width:           req.Width,
		Height:          req.Height,
		SamplesPerPixel: req.Samples,
		MaxDepth:        req.MaxDepth,
		Seed:            req.Seed,
	})
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	// The request context stops the render when the client goes away
	frame, stats, err := raytracer.Render(c.Request().Context())
	if err != nil {
		if errors.Is(err, c.Request().Context().Err()) {
			logger.Infof("render of %q cancelled by client", req.Scene)
		}
		return errorJSON(c, http.StatusInternalServerError, "render error: "+err.Error())
	}

	var buf bytes.Buffer
	if err := imageio.Encode(&buf, frame, req.Format); err != nil {
		return errorJSON(c, http.StatusInternalServerError, "failed to encode image: "+err.Error())
	}

	h := c.Response().Header()
	h.Set("X-Render-Seed", strconv.FormatInt(stats.Seed, 10))
	h.Set("X-Render-Samples", strconv.FormatInt(stats.TotalSamples, 10))
	h.Set("X-Render-Time-Ms", strconv.FormatInt(stats.RenderTime.Milliseconds(), 10))
	logger.Infof("rendered %q %dx%d at %d spp in %s", req.Scene, req.Width, req.Height, req.Samples, stats.RenderTime)

	return c.Blob(http.StatusOK, req.Format.ContentType(), buf.Bytes())
}
