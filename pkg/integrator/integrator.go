package integrator

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// World is the read-only view of a scene an integrator traces against
type World interface {
	Hit(ray core.Ray, tMin, tMax float32) (material.HitRecord, bool)
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor computes the radiance arriving along a camera ray
	RayColor(ray core.Ray, world World, sampler core.Sampler) core.Vec3
}
