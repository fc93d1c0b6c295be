package config

import (
	"fmt"
	"os"

	"github.com/df07/go-sphere-tracer/pkg/imageio"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	Render RenderConfig `yaml:"render"`
	Camera CameraConfig `yaml:"camera"`
	Scene  SceneConfig  `yaml:"scene"`
	Output OutputConfig `yaml:"output"`
	Server ServerConfig `yaml:"server"`
}

// RenderConfig contains sampling and parallelism settings
type RenderConfig struct {
	Width           int   `yaml:"width"`
	Height          int   `yaml:"height"`
	SamplesPerPixel int   `yaml:"samples_per_pixel"`
	MaxDepth        int   `yaml:"max_depth"`
	Workers         int   `yaml:"workers"` // 0 means one per CPU
	Seed            int64 `yaml:"seed"`    // 0 means time based
}

// CameraConfig overrides the chosen scene's camera
type CameraConfig struct {
	Aperture *float32 `yaml:"aperture,omitempty"` // nil keeps the scene's aperture
	VFov     float32  `yaml:"vfov,omitempty"`     // degrees, 0 keeps the scene's field of view
}

// SceneConfig selects what to render. File takes precedence over Name.
type SceneConfig struct {
	Name string `yaml:"name"`
	File string `yaml:"file,omitempty"`
}

// OutputConfig describes where the frame is written
type OutputConfig struct {
	Path   string `yaml:"path"`
	Format string `yaml:"format,omitempty"` // empty infers from the path extension
}

// ServerConfig contains the HTTP render service limits
type ServerConfig struct {
	Port          int `yaml:"port"`
	MaxConcurrent int `yaml:"max_concurrent"`
	MaxWidth      int `yaml:"max_width"`
	MaxHeight     int `yaml:"max_height"`
	MaxSamples    int `yaml:"max_samples"`
}

// Default creates a default configuration
func Default() *Config {
	opts := renderer.DefaultOptions()
	return &Config{
		Render: RenderConfig{
			Width:           opts.Width,
			Height:          opts.Height,
			SamplesPerPixel: opts.SamplesPerPixel,
			MaxDepth:        opts.MaxDepth,
			Workers:         0,
			Seed:            0,
		},
		Scene: SceneConfig{
			Name: "default",
		},
		Output: OutputConfig{
			Path: "render.png",
		},
		Server: ServerConfig{
			Port:          8080,
			MaxConcurrent: 2,
			MaxWidth:      1920,
			MaxHeight:     1080,
			MaxSamples:    1000,
		},
	}
}

// Load reads a YAML configuration file on top of the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration on top of the defaults
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, nil
}

// Save writes the configuration to a file
func (c *Config) Save(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Marshal serializes the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("serializing config: %w", err)
	}
	return data, nil
}

// Validate reports the first setting that cannot be rendered
func (c *Config) Validate() error {
	r := c.Render
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("%w: frame size %dx%d", ErrInvalidConfig, r.Width, r.Height)
	case r.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples_per_pixel %d", ErrInvalidConfig, r.SamplesPerPixel)
	case r.MaxDepth <= 0:
		return fmt.Errorf("%w: max_depth %d", ErrInvalidConfig, r.MaxDepth)
	case r.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, r.Workers)
	}

	if c.Camera.Aperture != nil && *c.Camera.Aperture < 0 {
		return fmt.Errorf("%w: aperture %g", ErrInvalidConfig, *c.Camera.Aperture)
	}
	if c.Camera.VFov < 0 || c.Camera.VFov >= 180 {
		return fmt.Errorf("%w: vfov %g", ErrInvalidConfig, c.Camera.VFov)
	}
	if c.Scene.Name == "" && c.Scene.File == "" {
		return fmt.Errorf("%w: no scene selected", ErrInvalidConfig)
	}
	if _, err := c.OutputFormat(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	s := c.Server
	if s.MaxConcurrent <= 0 || s.MaxWidth <= 0 || s.MaxHeight <= 0 || s.MaxSamples <= 0 {
		return fmt.Errorf("%w: server limits must be positive", ErrInvalidConfig)
	}
	return nil
}

// OutputFormat resolves the image format, inferring it from the output path when unset
func (c *Config) OutputFormat() (imageio.Format, error) {
	if c.Output.Format != "" {
		return imageio.ParseFormat(c.Output.Format)
	}
	return imageio.FormatFromPath(c.Output.Path)
}

// RenderOptions converts the render section for the renderer
func (c *Config) RenderOptions() renderer.Options {
	return renderer.Options{
		Width:           c.Render.Width,
		Height:          c.Render.Height,
		SamplesPerPixel: c.Render.SamplesPerPixel,
		MaxDepth:        c.Render.MaxDepth,
		Workers:         c.Render.Workers,
		Seed:            c.Render.Seed,
	}
}

// SceneOptions converts the camera overrides for scene construction
func (c *Config) SceneOptions() scene.Options {
	return scene.Options{
		AspectRatio: float32(c.Render.Width) / float32(c.Render.Height),
		Aperture:    c.Camera.Aperture,
		VFov:        c.Camera.VFov,
		Seed:        c.Render.Seed,
	}
}

// BuildScene loads the scene file if set, otherwise the named preset
func (c *Config) BuildScene() (*scene.Scene, error) {
	opts := c.SceneOptions()
	if c.Scene.File != "" {
		return scene.Load(c.Scene.File, opts)
	}

	preset, err := scene.Lookup(c.Scene.Name)
	if err != nil {
		return nil, err
	}
	return preset.Build(opts), nil
}
