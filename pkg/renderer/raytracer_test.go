package renderer

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

func render(t *testing.T, sc Scene, opts Options) (*PixelBuffer, RenderStats) {
	t.Helper()
	rt, err := NewRaytracer(sc, opts)
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}
	buf, stats, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return buf, stats
}

func TestRender_DeterministicAcrossWorkerCounts(t *testing.T) {
	sc := scene.NewDefaultScene(scene.Options{})
	opts := Options{Width: 4, Height: 2, SamplesPerPixel: 4, MaxDepth: 50, Seed: 7}

	var reference []uint8
	for _, workers := range []int{1, 2, 4} {
		opts.Workers = workers
		buf, stats := render(t, sc, opts)

		if stats.TotalSamples != 4*2*4 {
			t.Errorf("workers=%d: expected 32 samples, got %d", workers, stats.TotalSamples)
		}
		rows := 0
		for _, w := range stats.Workers {
			rows += w.Rows
		}
		if rows != opts.Height {
			t.Errorf("workers=%d: workers reported %d rows, want %d", workers, rows, opts.Height)
		}

		if reference == nil {
			reference = buf.Pix
			continue
		}
		if !bytes.Equal(reference, buf.Pix) {
			t.Errorf("workers=%d: frame differs from single worker render\n got %v\nwant %v", workers, buf.Pix, reference)
		}
	}
}

func TestRender_SeedChangesFrame(t *testing.T) {
	sc := scene.NewDefaultScene(scene.Options{})
	opts := Options{Width: 16, Height: 8, SamplesPerPixel: 1, MaxDepth: 10, Workers: 2}

	opts.Seed = 1
	first, _ := render(t, sc, opts)
	opts.Seed = 2
	second, _ := render(t, sc, opts)

	if bytes.Equal(first.Pix, second.Pix) {
		t.Error("Expected different seeds to produce different frames")
	}
}

func TestRender_EmptySceneShowsSky(t *testing.T) {
	sc := scene.New("empty", geometry.NewBasicCamera())
	opts := Options{Width: 8, Height: 10, SamplesPerPixel: 4, MaxDepth: 50, Workers: 3, Seed: 3}
	buf, _ := render(t, sc, opts)

	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			if _, _, b := buf.RGB(x, y); b != 255 {
				t.Fatalf("Pixel (%d,%d): expected full blue channel, got %d", x, y, b)
			}
		}
	}

	// Looking up the sky turns blue, looking down it turns white
	for x := 0; x < buf.Width; x++ {
		topR, _, _ := buf.RGB(x, 0)
		bottomR, _, _ := buf.RGB(x, buf.Height-1)
		if topR >= bottomR {
			t.Errorf("Column %d: expected top red %d < bottom red %d", x, topR, bottomR)
		}
	}
}

func TestNewRaytracer_ResolvesDefaults(t *testing.T) {
	opts := DefaultOptions()
	if opts.Width != 200 || opts.Height != 100 {
		t.Errorf("Expected default 200x100 frame, got %dx%d", opts.Width, opts.Height)
	}

	rt, err := NewRaytracer(scene.NewDefaultScene(scene.Options{}), opts)
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}
	if rt.Seed() == 0 {
		t.Error("Expected a zero seed to be replaced")
	}
	if rt.Options().Workers <= 0 {
		t.Errorf("Expected worker count to be resolved, got %d", rt.Options().Workers)
	}
}

func TestOptions_Validate(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{"zero width", Options{Width: 0, Height: 1, SamplesPerPixel: 1}},
		{"negative height", Options{Width: 1, Height: -1, SamplesPerPixel: 1}},
		{"zero samples", Options{Width: 1, Height: 1, SamplesPerPixel: 0}},
		{"negative depth", Options{Width: 1, Height: 1, SamplesPerPixel: 1, MaxDepth: -1}},
		{"negative workers", Options{Width: 1, Height: 1, SamplesPerPixel: 1, Workers: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRaytracer(scene.NewDefaultScene(scene.Options{}), tt.opts)
			if !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("Expected ErrInvalidOptions, got %v", err)
			}
		})
	}
}

func TestRender_Cancelled(t *testing.T) {
	opts := Options{Width: 4, Height: 4, SamplesPerPixel: 1, MaxDepth: 5, Workers: 2, Seed: 5}
	rt, err := NewRaytracer(scene.NewDefaultScene(scene.Options{}), opts)
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	buf, _, err := rt.Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if buf != nil {
		t.Error("Expected no buffer from a cancelled render")
	}
}

func TestToRGB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float32
		want    [3]uint8
	}{
		{"black", 0, 0, 0, [3]uint8{0, 0, 0}},
		{"white", 1, 1, 1, [3]uint8{255, 255, 255}},
		{"quarter is gamma corrected to half", 0.25, 0.25, 0.25, [3]uint8{127, 127, 127}},
		{"over range clamps", 4, 2, 1.5, [3]uint8{255, 255, 255}},
		{"negative clamps", -1, 0, 0, [3]uint8{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := toRGB([3]float32{tt.r, tt.g, tt.b})
			if [3]uint8{r, g, b} != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, [3]uint8{r, g, b})
			}
		})
	}
}
