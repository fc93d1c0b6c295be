package geometry

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit reports the nearest intersection with tMin < t < tMax
	Hit(ray core.Ray, tMin, tMax float32) (material.HitRecord, bool)
}

// Camera generates primary rays for normalized image-plane coordinates
type Camera interface {
	// GetRay returns the ray for screen coordinates (s, t) where 0 <= s,t <= 1
	// and (0, 0) is the lower left corner of the image
	GetRay(s, t float32, sampler core.Sampler) core.Ray
}
