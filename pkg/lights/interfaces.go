package lights

import "github.com/df07/go-rt-shading/pkg/core"

type LightType string

const (
	LightTypePoint       LightType = "point"
	LightTypeArea        LightType = "area"
	LightTypeDirectional LightType = "directional"
)

// Light is the sum type over the scene's light variants
type Light interface {
	Type() LightType

	// Sample samples the light toward a specific shading point for direct
	// lighting. The returned PDF is the per-type density only; uniform light
	// selection folds in 1/count (see SampleOne).
	Sample(point core.Vec3, sampler core.Sampler) Sample
}

// Sample contains information about a sampled point on a light
type Sample struct {
	Position  core.Vec3 // Point on the light source
	Normal    core.Vec3 // Normal at the light sample point
	Direction core.Vec3 // Direction from shading point to light, unit length
	Distance  float64   // Distance from shading point to the sample
	Radiance  core.Vec3 // Emitted light toward the shading point
	PDF       float64   // Probability density of this sample
}
