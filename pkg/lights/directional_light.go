package lights

import (
	"math"

	"github.com/df07/go-rt-shading/pkg/core"
)

// DirectionalLight approximates a distant light as a finite-radius disk
// emitting a parallel beam along its axis
type DirectionalLight struct {
	Color     core.Vec3
	Position  core.Vec3 // Center of the disk
	Direction core.Vec3 // Beam axis, from the light toward the scene
	Radius    float64   // Beam radius
}

// NewDirectionalLight creates a new directional disk light
func NewDirectionalLight(color, position, direction core.Vec3, radius float64) *DirectionalLight {
	return &DirectionalLight{
		Color:     color,
		Position:  position,
		Direction: direction.Normalize(),
		Radius:    radius,
	}
}

func (dl *DirectionalLight) Type() LightType {
	return LightTypeDirectional
}

// Sample tests whether the shading point lies inside the projected beam. The
// sample position is the point's unclamped projection onto the disk plane;
// inside the beam the radiance is the color scaled by the squared axis
// distance (clamped to at least 1) so the caller's falloff cancels for a
// light at infinity, outside it is zero.
func (dl *DirectionalLight) Sample(point core.Vec3, sampler core.Sampler) Sample {
	offset := point.Subtract(dl.Position)
	along := offset.Dot(dl.Direction)
	perp := offset.Subtract(dl.Direction.Multiply(along))

	position := dl.Position.Add(perp)

	radiance := core.Vec3{}
	if perp.Length() <= dl.Radius {
		radiance = dl.Color.Multiply(math.Max(along*along, 1.0))
	}

	return Sample{
		Position:  position,
		Normal:    dl.Direction,
		Direction: dl.Direction.Negate(),
		Distance:  along,
		Radiance:  radiance,
		PDF:       1.0,
	}
}
