package material

import (
	"github.com/chewxy/math32"
	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Dielectric represents a transparent material like glass that can both reflect and refract
type Dielectric struct {
	RefractiveIndex float32 // Index of refraction (e.g., 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float32) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter implements the Material interface for dielectric scattering.
// Exactly one sampler draw is made per call; glass never absorbs.
func (d *Dielectric) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Dielectrics always attenuate by 1.0 (no color absorption for clear glass)
	attenuation := core.NewVec3(1.0, 1.0, 1.0)

	unitDirection := rayIn.Direction.Normalize()
	cosIncident := unitDirection.Dot(hit.Normal)

	var outwardNormal core.Vec3
	var niOverNt, cosine float32
	if cosIncident > 0 {
		// Exiting the material (glass to air)
		outwardNormal = hit.Normal.Mul(-1)
		niOverNt = d.RefractiveIndex
	} else {
		// Entering the material (air to glass)
		outwardNormal = hit.Normal
		niOverNt = 1.0 / d.RefractiveIndex
		cosine = -cosIncident
	}

	reflectProbability := float32(1.0)
	refracted, canRefract := refract(unitDirection, outwardNormal, niOverNt)
	if canRefract {
		if cosIncident > 0 {
			// Schlick takes the angle on the air side of the interface
			cosine = math32.Sqrt(1 - d.RefractiveIndex*d.RefractiveIndex*(1-cosIncident*cosIncident))
		}
		reflectProbability = Reflectance(cosine, d.RefractiveIndex)
	}

	var direction core.Vec3
	if sampler.Get1D() < reflectProbability {
		direction = reflect(unitDirection, hit.Normal)
	} else {
		direction = refracted
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: attenuation,
	}, true
}
