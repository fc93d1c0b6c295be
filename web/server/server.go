package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-sphere-tracer/pkg/config"
	"github.com/df07/go-sphere-tracer/pkg/log"
	"github.com/df07/go-sphere-tracer/pkg/scene"
	"github.com/labstack/echo/v4"
)

var logger = log.New("server")

// Server handles web requests for the sphere tracer
type Server struct {
	cfg  config.ServerConfig
	echo *echo.Echo
	sem  chan struct{} // bounds concurrent renders
}

// NewServer creates a new web server with its routes registered
func NewServer(cfg config.ServerConfig) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		cfg:  cfg,
		echo: e,
		sem:  make(chan struct{}, cfg.MaxConcurrent),
	}

	e.Use(corsMiddleware)
	e.GET("/api/health", s.handleHealth)
	e.GET("/api/scenes", s.handleScenes)
	e.GET("/api/render", s.handleRender)
	e.GET("/api/inspect", s.handleInspect)

	return s
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start starts the web server and blocks until it fails
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	logger.Noticef("starting web server on http://localhost%s", addr)
	return s.echo.Start(addr)
}

func corsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		c.Response().Header().Set("Access-Control-Allow-Methods", "GET")
		c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")

		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}

		return next(c)
	}
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(c echo.Context) error {
	return c.JSON(http.StatusOK, scene.Presets())
}

func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

// parseIntParam parses an integer query parameter with validation
func parseIntParam(c echo.Context, key string, defaultValue, min, max int) (int, error) {
	value := c.QueryParam(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", key, value)
	}
	if parsed < min || parsed > max {
		return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
	}
	return parsed, nil
}

// parseFloatParam parses a float query parameter with validation
func parseFloatParam(c echo.Context, key string, min, max float64) (*float32, error) {
	value := c.QueryParam(key)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %s", key, value)
	}
	if parsed < min || parsed > max {
		return nil, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
	}
	f := float32(parsed)
	return &f, nil
}
