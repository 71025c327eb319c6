package lights

import "github.com/df07/go-rt-shading/pkg/core"

// PointLight is an isotropic emitter at a single position
type PointLight struct {
	Color    core.Vec3
	Position core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(color, position core.Vec3) *PointLight {
	return &PointLight{Color: color, Position: position}
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

// Sample returns the fixed light position with unit per-type density.
// The radiance is unconditional; distance falloff belongs to the caller.
func (pl *PointLight) Sample(point core.Vec3, sampler core.Sampler) Sample {
	toLight := pl.Position.Subtract(point)
	distance := toLight.Length()
	direction := toLight.Normalize()

	return Sample{
		Position:  pl.Position,
		Normal:    direction.Negate(),
		Direction: direction,
		Distance:  distance,
		Radiance:  pl.Color,
		PDF:       1.0,
	}
}
