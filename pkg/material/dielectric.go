package material

import (
	"math"

	"github.com/df07/go-rt-shading/pkg/core"
)

// Dielectric represents a transparent refractive material like glass
type Dielectric struct {
	IOR float64 // Index of refraction (e.g. 1.5 for glass)
}

// NewDielectric creates a new dielectric material
func NewDielectric(ior float64) *Dielectric {
	return &Dielectric{IOR: ior}
}

// relativeIOR returns the refraction ratio across the interface for the side
// the ray arrived on
func (d *Dielectric) relativeIOR(frontFace bool) float64 {
	if frontFace {
		// Entering the material
		return 1.0 / d.IOR
	}
	// Exiting the material
	return d.IOR
}

// Evaluate returns zero: both lobes are delta distributions
func (d *Dielectric) Evaluate(rayDir, toLight core.Vec3, surf Surface) (core.Vec3, float64) {
	return core.Vec3{}, 0
}

// Sample stochastically chooses between reflection and refraction with
// probability given by the Fresnel reflectance, returning unit throughput and
// unit density either way. Under total internal reflection the Fresnel term
// is exactly 1 and reflection is always chosen.
func (d *Dielectric) Sample(rayDir core.Vec3, surf Surface, sampler core.Sampler) SampleResult {
	eta := d.relativeIOR(surf.FrontFace)
	unit := rayDir.Normalize()
	cosIncident := math.Min(-unit.Dot(surf.Normal), 1.0)

	var direction core.Vec3
	if core.Fresnel(cosIncident, eta) > sampler.Get1D() {
		direction = core.Reflect(unit, surf.Normal)
	} else {
		direction = core.Refract(unit, surf.Normal, eta)
	}

	return SampleResult{
		Direction: direction,
		Value:     core.NewVec3(1, 1, 1),
		PDF:       1,
		Specular:  true,
	}
}
