package renderer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
	"github.com/df07/go-sphere-tracer/pkg/log"
)

// ErrInvalidOptions is returned when render options cannot produce a frame
var ErrInvalidOptions = errors.New("invalid render options")

// Scene interface to avoid circular imports
type Scene interface {
	integrator.World
	GetCamera() geometry.Camera
}

// Options contains rendering configuration
type Options struct {
	Width           int   // Frame width in pixels
	Height          int   // Frame height in pixels
	SamplesPerPixel int   // Number of jittered camera rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Workers         int   // Parallel row workers, 0 uses every CPU
	Seed            int64 // Base seed for row samplers, 0 picks one from the clock
}

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{
		Width:           200,
		Height:          100,
		SamplesPerPixel: 100,
		MaxDepth:        integrator.DefaultMaxDepth,
	}
}

// Validate reports the first option that cannot be rendered
func (o Options) Validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return fmt.Errorf("%w: frame size %dx%d", ErrInvalidOptions, o.Width, o.Height)
	case o.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel %d", ErrInvalidOptions, o.SamplesPerPixel)
	case o.MaxDepth < 0:
		return fmt.Errorf("%w: max depth %d", ErrInvalidOptions, o.MaxDepth)
	case o.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalidOptions, o.Workers)
	}
	return nil
}

// Raytracer renders a scene into a PixelBuffer
type Raytracer struct {
	scene      Scene
	opts       Options
	integrator integrator.Integrator
	logger     log.Logger
}

// NewRaytracer creates a new raytracer. A zero seed is replaced by one taken
// from the clock so that Seed reports what was actually used.
func NewRaytracer(scene Scene, opts Options) (*Raytracer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Workers == 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	return &Raytracer{
		scene:      scene,
		opts:       opts,
		integrator: integrator.NewPathTracingIntegrator(opts.MaxDepth),
		logger:     log.New("renderer"),
	}, nil
}

// Seed returns the base seed of this raytracer
func (rt *Raytracer) Seed() int64 {
	return rt.opts.Seed
}

// Options returns the resolved options of this raytracer
func (rt *Raytracer) Options() Options {
	return rt.opts
}

// rowSeed derives the sampler seed for an output row. Rows never share a
// sampler, so the frame is identical whatever the worker count.
func (rt *Raytracer) rowSeed(row int) int64 {
	return rt.opts.Seed + int64(row)
}

// Render traces the full frame. It returns ctx.Err() if the context is
// cancelled before every row is done.
func (rt *Raytracer) Render(ctx context.Context) (*PixelBuffer, RenderStats, error) {
	buffer := NewPixelBuffer(rt.opts.Width, rt.opts.Height)
	stats := RenderStats{
		Width:           rt.opts.Width,
		Height:          rt.opts.Height,
		SamplesPerPixel: rt.opts.SamplesPerPixel,
		Seed:            rt.opts.Seed,
	}

	rt.logger.Infof("rendering %dx%d frame at %d spp with %d workers (seed %d)",
		rt.opts.Width, rt.opts.Height, rt.opts.SamplesPerPixel, rt.opts.Workers, rt.opts.Seed)
	start := time.Now()

	pool := NewWorkerPool(ctx, rt, buffer, rt.opts.Workers)
	pool.Start()
	for row := 0; row < rt.opts.Height; row++ {
		pool.SubmitTask(RowTask{Row: row, Seed: rt.rowSeed(row)})
	}

	workers := make([]WorkerStats, pool.GetNumWorkers())
	for i := range workers {
		workers[i].ID = i
	}

	var renderErr error
	for i := 0; i < rt.opts.Height; i++ {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			renderErr = result.Error
			continue
		}
		w := &workers[result.WorkerID]
		w.Rows++
		w.Samples += result.Samples
		w.RenderTime += result.RenderTime
		stats.TotalSamples += result.Samples
	}
	pool.Stop()

	stats.RenderTime = time.Since(start)
	stats.Workers = workers
	if renderErr != nil {
		rt.logger.Warningf("render aborted after %s: %v", stats.RenderTime, renderErr)
		return nil, stats, renderErr
	}

	rt.logger.Infof("rendered frame in %s (%.0f samples/s)", stats.RenderTime, stats.SamplesPerSecond())
	return buffer, stats, nil
}

// RenderRow traces one output row, counted from the top, into buffer and
// returns the number of camera rays cast
func (rt *Raytracer) RenderRow(row int, buffer *PixelBuffer, sampler core.Sampler) int64 {
	width, height := rt.opts.Width, rt.opts.Height
	spp := rt.opts.SamplesPerPixel
	camera := rt.scene.GetCamera()

	// Image-plane rows run bottom to top
	j := height - 1 - row
	for i := 0; i < width; i++ {
		var colorAccum core.Vec3
		for sample := 0; sample < spp; sample++ {
			s := (float32(i) + sampler.Get1D()) / float32(width)
			t := (float32(j) + sampler.Get1D()) / float32(height)

			ray := camera.GetRay(s, t, sampler)
			colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.scene, sampler))
		}

		r, g, b := toRGB(colorAccum.Mul(1.0 / float32(spp)))
		buffer.SetRGB(i, row, r, g, b)
	}

	return int64(width * spp)
}

// toRGB converts a linear color to 8-bit channels with gamma 2 correction
func toRGB(colorVec core.Vec3) (r, g, b uint8) {
	colorVec = core.Clamp(core.GammaCorrect(colorVec), 0.0, 1.0)
	return uint8(255.99 * colorVec.X()), uint8(255.99 * colorVec.Y()), uint8(255.99 * colorVec.Z())
}
