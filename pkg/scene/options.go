package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// Options carries render parameters that affect scene construction
type Options struct {
	AspectRatio float32  // Image width / height, 0 keeps the scene's default
	Aperture    *float32 // Lens aperture override, nil keeps the scene's default
	VFov        float32  // Vertical field of view override in degrees, 0 keeps the scene's default
	Seed        int64    // Seed for procedurally generated scenes
}

// mergeCameraConfig applies non-zero option overrides on top of a scene's camera configuration
func (o Options) mergeCameraConfig(base geometry.CameraConfig) geometry.CameraConfig {
	result := base
	if o.AspectRatio > 0 {
		result.AspectRatio = o.AspectRatio
	}
	if o.Aperture != nil {
		result.Aperture = *o.Aperture
	}
	if o.VFov > 0 {
		result.VFov = o.VFov
	}
	return result
}
