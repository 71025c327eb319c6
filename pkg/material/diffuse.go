package material

import (
	"math"

	"github.com/df07/go-rt-shading/pkg/core"
)

// Diffuse represents a perfectly diffuse (Lambertian) material
type Diffuse struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewDiffuse creates a new diffuse material
func NewDiffuse(albedo core.Vec3) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

// Evaluate returns the albedo with the cosine-weighted density cos(θ)/π.
// The density is the exact formula: a direction below the hemisphere yields
// a non-positive value the caller must guard against.
func (d *Diffuse) Evaluate(rayDir, toLight core.Vec3, surf Surface) (core.Vec3, float64) {
	cosTheta := toLight.Dot(surf.Normal)
	return d.Albedo, cosTheta / math.Pi
}

// Sample draws a cosine-weighted direction in the hemisphere around the
// shading normal
func (d *Diffuse) Sample(rayDir core.Vec3, surf Surface, sampler core.Sampler) SampleResult {
	local, pdf := core.SampleCosineHemisphere(sampler.Get2D())
	direction := core.FrameSample(local, surf.Normal)

	return SampleResult{
		Direction: direction,
		Value:     d.Albedo,
		PDF:       pdf,
	}
}
