package integrator

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-sphere-tracer/pkg/core"
)

// ShadowAcneEpsilon is the minimum hit distance for any ray, so rays leaving a
// surface do not re-hit it due to floating point error
const ShadowAcneEpsilon = 0.001

// DefaultMaxDepth is the default bounce limit
const DefaultMaxDepth = 50

var (
	skyWhite = core.NewVec3(1.0, 1.0, 1.0)
	skyBlue  = core.NewVec3(0.5, 0.7, 1.0)
)

// PathTracingIntegrator implements unidirectional path tracing.
// Paths are cut at MaxDepth bounces and contribute black from there, a
// deliberate energy loss.
type PathTracingIntegrator struct {
	MaxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{MaxDepth: maxDepth}
}

// RayColor computes the color for a camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world World, sampler core.Sampler) core.Vec3 {
	return pt.Colour(ray, world, sampler, 0)
}

// Colour recursively evaluates the radiance along ray, which has already
// bounced depth times
func (pt *PathTracingIntegrator) Colour(ray core.Ray, world World, sampler core.Sampler, depth int) core.Vec3 {
	hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math32.Inf(1))
	if !isHit {
		return Background(ray)
	}

	if depth >= pt.MaxDepth {
		return core.Vec3{}
	}

	scatter, didScatter := hit.Material.Scatter(ray, hit, sampler)
	if !didScatter {
		return core.Vec3{}
	}

	return core.MulVec(scatter.Attenuation, pt.Colour(scatter.Scattered, world, sampler, depth+1))
}

// Background returns the sky gradient for a ray that escaped the scene,
// blending from white straight down to pale blue straight up
func Background(ray core.Ray) core.Vec3 {
	// Ray directions are already unit length
	t := 0.5 * (ray.Direction.Y() + 1.0)
	return core.Lerp(skyWhite, skyBlue, t)
}
