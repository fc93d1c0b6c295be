package geometry

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-sphere-tracer/pkg/core"
)

// BasicCamera is a pinhole camera at the origin looking down -Z with a fixed 2:1 frustum
type BasicCamera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewBasicCamera creates a simple camera
func NewBasicCamera() *BasicCamera {
	return &BasicCamera{
		origin:          core.NewVec3(0, 0, 0),
		lowerLeftCorner: core.NewVec3(-2, -1, -1),
		horizontal:      core.NewVec3(4, 0, 0),
		vertical:        core.NewVec3(0, 2, 0),
	}
}

// GetRay linearly interpolates the image plane; the sampler is unused
func (c *BasicCamera) GetRay(s, t float32, _ core.Sampler) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Mul(s)).
		Add(c.vertical.Mul(t)).
		Sub(c.origin)

	return core.NewRay(c.origin, direction)
}

// CameraConfig contains all camera configuration parameters
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction (usually {0, 1, 0})
	VFov          float32   // Vertical field of view in degrees
	AspectRatio   float32   // Width / height
	Aperture      float32   // Lens diameter, 0 for a pinhole
	FocusDistance float32   // Distance to the sharp focal plane (0 = auto-calculate)
}

// LookAtCamera is a positionable camera with depth of field
type LookAtCamera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v, w         core.Vec3 // Camera basis vectors
	lensRadius      float32
	config          CameraConfig
}

// NewLookAtCamera creates a camera from the given configuration
func NewLookAtCamera(config CameraConfig) *LookAtCamera {
	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookFrom.Sub(config.LookAt).Len()
	}

	halfHeight := math32.Tan(config.VFov * math32.Pi / 360)
	halfWidth := config.AspectRatio * halfHeight

	// Orthonormal basis
	w := config.LookFrom.Sub(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	lowerLeftCorner := origin.
		Sub(u.Mul(halfWidth * focusDistance)).
		Sub(v.Mul(halfHeight * focusDistance)).
		Sub(w.Mul(focusDistance))

	return &LookAtCamera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      u.Mul(2 * halfWidth * focusDistance),
		vertical:        v.Mul(2 * halfHeight * focusDistance),
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      config.Aperture / 2,
		config:          config,
	}
}

// GetRay generates a ray through (s, t), starting from a random point on the lens
func (c *LookAtCamera) GetRay(s, t float32, sampler core.Sampler) core.Ray {
	var offset core.Vec3
	if c.lensRadius > 0 {
		rd := core.RandomInUnitDisk(sampler).Mul(c.lensRadius)
		offset = c.u.Mul(rd.X()).Add(c.v.Mul(rd.Y()))
	}

	target := c.lowerLeftCorner.
		Add(c.horizontal.Mul(s)).
		Add(c.vertical.Mul(t))

	return core.NewRay(c.origin.Add(offset), target.Sub(c.origin).Sub(offset))
}

// Config returns the configuration the camera was built from
func (c *LookAtCamera) Config() CameraConfig {
	return c.config
}
