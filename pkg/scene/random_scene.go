package scene

import (
	"math/rand"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// NewRandomScene creates a large ground sphere covered by a grid of small
// randomly placed spheres plus three large feature spheres. The layout is
// fully determined by opts.Seed.
func NewRandomScene(opts Options) *Scene {
	cameraConfig := opts.mergeCameraConfig(geometry.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   2,
		Aperture:      0.1,
		FocusDistance: 10,
	})
	s := New("random", geometry.NewLookAtCamera(cameraConfig))

	random := rand.New(rand.NewSource(opts.Seed))
	glass := material.NewDielectric(1.5)

	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))))

	avoid := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float32()
			center := core.NewVec3(
				float32(a)+0.9*random.Float32(),
				0.2,
				float32(b)+0.9*random.Float32(),
			)
			if center.Sub(avoid).Len() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.9:
				mat = material.NewLambertian(core.NewVec3(
					random.Float32()*random.Float32(),
					random.Float32()*random.Float32(),
					random.Float32()*random.Float32(),
				))
			case chooseMat < 0.95:
				mat = material.NewMetal(core.NewVec3(
					0.5*(1+random.Float32()),
					0.5*(1+random.Float32()),
					0.5*(1+random.Float32()),
				), random.Float32())
			default:
				mat = glass
			}
			s.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, glass),
		geometry.NewSphere(core.NewVec3(-2, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(2, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)
	return s
}
