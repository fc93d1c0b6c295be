package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"gopkg.in/yaml.v2"
)

// sceneFile is the YAML layout of a scene description.
// Materials are declared once by name and shared by every sphere that uses them.
type sceneFile struct {
	Camera    cameraFile              `yaml:"camera"`
	Materials map[string]materialFile `yaml:"materials"`
	Spheres   []sphereFile            `yaml:"spheres"`
}

type cameraFile struct {
	Type          string    `yaml:"type"` // "basic" or "lookat" (default)
	LookFrom      []float32 `yaml:"look_from"`
	LookAt        []float32 `yaml:"look_at"`
	Up            []float32 `yaml:"up"`
	VFov          float32   `yaml:"vfov"`
	Aperture      float32   `yaml:"aperture"`
	FocusDistance float32   `yaml:"focus_distance"`
}

type materialFile struct {
	Type            string    `yaml:"type"` // lambertian, metal or dielectric
	Albedo          []float32 `yaml:"albedo"`
	Fuzziness       float32   `yaml:"fuzziness"`
	RefractiveIndex float32   `yaml:"refractive_index"`
}

type sphereFile struct {
	Center   []float32 `yaml:"center"`
	Radius   float32   `yaml:"radius"`
	Material string    `yaml:"material"`
}

// Load reads a YAML scene description from disk
func Load(path string, opts Options) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(name, data, opts)
}

// Parse builds a scene from a YAML scene description
func Parse(name string, data []byte, opts Options) (*Scene, error) {
	var desc sceneFile
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}

	camera, err := desc.Camera.build(opts)
	if err != nil {
		return nil, err
	}

	materials := make(map[string]material.Material, len(desc.Materials))
	for matName, matDesc := range desc.Materials {
		mat, err := matDesc.build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", matName, err)
		}
		materials[matName] = mat
	}

	s := New(name, camera)
	for i, sphereDesc := range desc.Spheres {
		center, err := toVec3(sphereDesc.Center, "center")
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		if sphereDesc.Radius == 0 {
			return nil, fmt.Errorf("sphere %d: %w: radius must be non-zero", i, ErrInvalidScene)
		}
		mat, ok := materials[sphereDesc.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: %w: unknown material %q", i, ErrInvalidScene, sphereDesc.Material)
		}
		s.Add(geometry.NewSphere(center, sphereDesc.Radius, mat))
	}

	return s, nil
}

func (c cameraFile) build(opts Options) (geometry.Camera, error) {
	switch c.Type {
	case "basic":
		return geometry.NewBasicCamera(), nil
	case "", "lookat":
	default:
		return nil, fmt.Errorf("%w: unknown camera type %q", ErrInvalidScene, c.Type)
	}

	lookFrom, err := toVec3(c.LookFrom, "look_from")
	if err != nil {
		return nil, err
	}
	lookAt, err := toVec3(c.LookAt, "look_at")
	if err != nil {
		return nil, err
	}
	up := core.NewVec3(0, 1, 0)
	if c.Up != nil {
		if up, err = toVec3(c.Up, "up"); err != nil {
			return nil, err
		}
	}
	if lookFrom == lookAt {
		return nil, fmt.Errorf("%w: look_from and look_at must differ", ErrInvalidScene)
	}

	vfov := c.VFov
	if vfov == 0 {
		vfov = 40
	}

	config := opts.mergeCameraConfig(geometry.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		Up:            up,
		VFov:          vfov,
		AspectRatio:   2,
		Aperture:      c.Aperture,
		FocusDistance: c.FocusDistance,
	})
	return geometry.NewLookAtCamera(config), nil
}

func (m materialFile) build() (material.Material, error) {
	switch m.Type {
	case "lambertian":
		albedo, err := toVec3(m.Albedo, "albedo")
		if err != nil {
			return nil, err
		}
		return material.NewLambertian(albedo), nil
	case "metal":
		albedo, err := toVec3(m.Albedo, "albedo")
		if err != nil {
			return nil, err
		}
		return material.NewMetal(albedo, m.Fuzziness), nil
	case "dielectric":
		if m.RefractiveIndex <= 0 {
			return nil, fmt.Errorf("%w: refractive_index must be positive", ErrInvalidScene)
		}
		return material.NewDielectric(m.RefractiveIndex), nil
	default:
		return nil, fmt.Errorf("%w: unknown material type %q", ErrInvalidScene, m.Type)
	}
}

func toVec3(values []float32, field string) (core.Vec3, error) {
	if len(values) != 3 {
		return core.Vec3{}, fmt.Errorf("%w: %s needs 3 components, got %d", ErrInvalidScene, field, len(values))
	}
	return core.NewVec3(values[0], values[1], values[2]), nil
}
