package lights

import (
	"math"

	"github.com/df07/go-rt-shading/pkg/core"
)

// AreaLight is a single emitting triangle
type AreaLight struct {
	Color      core.Vec3
	V0, V1, V2 core.Vec3

	normal core.Vec3 // Cached geometric normal
	area   float64   // Cached triangle area
}

// NewAreaLight creates a new triangle area light
func NewAreaLight(color, v0, v1, v2 core.Vec3) *AreaLight {
	edge1 := v1.Subtract(v0)
	edge2 := v2.Subtract(v0)
	cross := edge1.Cross(edge2)

	return &AreaLight{
		Color:  color,
		V0:     v0,
		V1:     v1,
		V2:     v2,
		normal: cross.Normalize(),
		area:   cross.Length() / 2.0,
	}
}

func (al *AreaLight) Type() LightType {
	return LightTypeArea
}

// Normal returns the triangle's geometric normal
func (al *AreaLight) Normal() core.Vec3 {
	return al.normal
}

// Area returns the triangle's area
func (al *AreaLight) Area() float64 {
	return al.area
}

// Sample draws a uniform point on the triangle via the square-to-triangle
// warp and returns it with per-type density 1/area. Radiance is the full
// color from the front side and zero from the back; the facing test never
// touches the density so MIS weights stay well-defined.
func (al *AreaLight) Sample(point core.Vec3, sampler core.Sampler) Sample {
	s := sampler.Get1D()
	t := sampler.Get1D()

	// P = (1-√s)·V0 + √s·(1-t)·V1 + √s·t·V2 is uniform over the triangle
	su := math.Sqrt(s)
	position := al.V0.Multiply(1.0 - su).
		Add(al.V1.Multiply(su * (1.0 - t))).
		Add(al.V2.Multiply(su * t))

	toLight := position.Subtract(point)
	distance := toLight.Length()
	direction := toLight.Normalize()

	radiance := al.Color
	if al.normal.Dot(direction.Negate()) <= 0 {
		// Back side of the emitter faces the shading point
		radiance = core.Vec3{}
	}

	return Sample{
		Position:  position,
		Normal:    al.normal,
		Direction: direction,
		Distance:  distance,
		Radiance:  radiance,
		PDF:       1.0 / al.area,
	}
}
