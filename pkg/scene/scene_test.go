package scene

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

func TestSceneHit_ReturnsTrulyNearestWithMaterial(t *testing.T) {
	near := material.NewLambertian(core.NewVec3(1, 0, 0))
	middle := material.NewMetal(core.NewVec3(0, 1, 0), 0)
	far := material.NewDielectric(1.5)

	nearSphere := geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, near)
	middleSphere := geometry.NewSphere(core.NewVec3(0, 0, -4), 0.5, middle)
	farSphere := geometry.NewSphere(core.NewVec3(0, 0, -6), 0.5, far)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	want, _ := nearSphere.Hit(ray, 0.001, math32.Inf(1))

	// Every insertion order must report the same nearest hit, material included
	orders := [][]geometry.Shape{
		{nearSphere, middleSphere, farSphere},
		{farSphere, middleSphere, nearSphere},
		{middleSphere, nearSphere, farSphere},
		{nearSphere, farSphere, middleSphere},
	}

	for i, shapes := range orders {
		s := New("test", geometry.NewBasicCamera())
		s.Add(shapes...)

		hit, isHit := s.Hit(ray, 0.001, math32.Inf(1))
		if !isHit {
			t.Fatalf("Order %d: expected hit", i)
		}
		if hit.T != want.T || hit.Point != want.Point || hit.Normal != want.Normal {
			t.Errorf("Order %d: expected %+v, got %+v", i, want, hit)
		}
		if hit.Material != near {
			t.Errorf("Order %d: expected nearest sphere's material, got %T", i, hit.Material)
		}
	}
}

func TestSceneHit_RespectsInterval(t *testing.T) {
	s := New("test", geometry.NewBasicCamera())
	backMaterial := material.NewLambertian(core.NewVec3(0, 0, 1))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5, material.NewLambertian(core.NewVec3(1, 0, 0))),
		geometry.NewSphere(core.NewVec3(0, 0, -6), 0.5, backMaterial),
	)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	// Excluding the front sphere entirely leaves the back sphere
	hit, isHit := s.Hit(ray, 3, 100)
	if !isHit || hit.Material != backMaterial {
		t.Fatalf("Expected back sphere hit, got %+v (hit=%v)", hit, isHit)
	}
	if math32.Abs(hit.T-5.5) > 1e-5 {
		t.Errorf("Expected t=5.5, got %f", hit.T)
	}

	if _, isHit := s.Hit(ray, 0.001, 1); isHit {
		t.Error("Expected no hit before t=1")
	}
}

func TestSceneHit_Empty(t *testing.T) {
	s := New("empty", geometry.NewBasicCamera())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, isHit := s.Hit(ray, 0.001, math32.Inf(1)); isHit {
		t.Error("Empty scene should never report a hit")
	}
	if s.GetPrimitiveCount() != 0 {
		t.Errorf("Expected 0 primitives, got %d", s.GetPrimitiveCount())
	}
}

func TestPresets(t *testing.T) {
	for _, preset := range Presets() {
		t.Run(preset.Name, func(t *testing.T) {
			s := preset.Build(Options{AspectRatio: 2, Seed: 1})
			if s == nil {
				t.Fatal("Preset returned nil scene")
			}
			if s.GetCamera() == nil {
				t.Error("Preset scene has no camera")
			}
			if s.GetPrimitiveCount() < 2 {
				t.Errorf("Expected at least 2 primitives, got %d", s.GetPrimitiveCount())
			}
		})
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		name        string
		expectError bool
	}{
		{"default", false},
		{"materials", false},
		{"random", false},
		{"nonexistent", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preset, err := Lookup(tt.name)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene '%s'", tt.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if preset.Name != tt.name {
				t.Errorf("Expected preset %q, got %q", tt.name, preset.Name)
			}
		})
	}
}

func TestDefaultScene_MatchesReferenceLayout(t *testing.T) {
	s := NewDefaultScene(Options{})
	if len(s.Shapes) != 2 {
		t.Fatalf("Expected 2 spheres, got %d", len(s.Shapes))
	}

	ground := s.Shapes[1].(*geometry.Sphere)
	if ground.Center != core.NewVec3(0, -100.5, -1) || ground.Radius != 100 {
		t.Errorf("Unexpected ground sphere %+v", ground)
	}
	if _, ok := ground.Material.(*material.Lambertian); !ok {
		t.Errorf("Ground should be lambertian, got %T", ground.Material)
	}
}

func TestRandomScene_DeterministicPerSeed(t *testing.T) {
	a := NewRandomScene(Options{Seed: 5})
	b := NewRandomScene(Options{Seed: 5})
	c := NewRandomScene(Options{Seed: 6})

	if a.GetPrimitiveCount() != b.GetPrimitiveCount() {
		t.Fatalf("Same seed should give same sphere count: %d vs %d", a.GetPrimitiveCount(), b.GetPrimitiveCount())
	}
	for i := range a.Shapes {
		sa, sb := a.Shapes[i].(*geometry.Sphere), b.Shapes[i].(*geometry.Sphere)
		if sa.Center != sb.Center || sa.Radius != sb.Radius {
			t.Fatalf("Sphere %d differs between runs with the same seed", i)
		}
	}

	different := a.GetPrimitiveCount() != c.GetPrimitiveCount()
	for i := 1; !different && i < len(a.Shapes); i++ {
		different = a.Shapes[i].(*geometry.Sphere).Center != c.Shapes[i].(*geometry.Sphere).Center
	}
	if !different {
		t.Error("Different seeds should give different layouts")
	}

	// Ground, 3 feature spheres, and at most 22x22 small ones
	if n := a.GetPrimitiveCount(); n < 4 || n > 4+22*22 {
		t.Errorf("Unexpected sphere count %d", n)
	}
}

func TestOptions_MergeCameraConfig(t *testing.T) {
	base := geometry.CameraConfig{VFov: 20, AspectRatio: 2, Aperture: 0.1}
	zero := float32(0)

	merged := Options{AspectRatio: 1.5, Aperture: &zero}.mergeCameraConfig(base)
	if merged.AspectRatio != 1.5 {
		t.Errorf("Expected aspect ratio override, got %f", merged.AspectRatio)
	}
	if merged.Aperture != 0 {
		t.Errorf("Expected aperture forced to 0, got %f", merged.Aperture)
	}
	if merged.VFov != 20 {
		t.Errorf("Unset VFov should keep base value, got %f", merged.VFov)
	}
}
