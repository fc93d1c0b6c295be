package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// NewDefaultScene creates two diffuse spheres, one resting on a huge ground
// sphere, viewed through the fixed 2:1 basic camera. Options are ignored.
func NewDefaultScene(_ Options) *Scene {
	s := New("default", geometry.NewBasicCamera())

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
	)
	return s
}

// NewMaterialsScene creates a diffuse, a metal and a hollow glass sphere seen
// through a depth-of-field camera focused on the middle sphere
func NewMaterialsScene(opts Options) *Scene {
	cameraConfig := opts.mergeCameraConfig(geometry.CameraConfig{
		LookFrom:    core.NewVec3(3, 3, 2),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20,
		AspectRatio: 2,
		Aperture:    0.5,
	})
	s := New("materials", geometry.NewLookAtCamera(cameraConfig))

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	blue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)
	glass := material.NewDielectric(1.5)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, blue),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
		// Hollow glass bubble: outer shell plus inverted inner shell sharing one material
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45, glass),
	)
	return s
}
