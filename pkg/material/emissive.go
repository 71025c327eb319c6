package material

import (
	"math"

	"github.com/df07/go-rt-shading/pkg/core"
)

// Flat is a constant-radiance emitter. Emitters are terminal: they never
// scatter, so Evaluate and Sample return zero results.
type Flat struct {
	Color core.Vec3 // Emitted radiance
}

// NewFlat creates a new constant emitter
func NewFlat(color core.Vec3) *Flat {
	return &Flat{Color: color}
}

// Emit returns the constant radiance
func (f *Flat) Emit(surf Surface) core.Vec3 {
	return f.Color
}

// Evaluate implements Material; emitters do not reflect
func (f *Flat) Evaluate(rayDir, toLight core.Vec3, surf Surface) (core.Vec3, float64) {
	return core.Vec3{}, 0
}

// Sample implements Material; emitters do not scatter
func (f *Flat) Sample(rayDir core.Vec3, surf Surface, sampler core.Sampler) SampleResult {
	return SampleResult{}
}

// Checkerboard is a two-sided emitter whose radiance alternates between two
// colors on a world-space grid
type Checkerboard struct {
	ColorA core.Vec3
	ColorB core.Vec3
	Scale  float64 // Half the period of the pattern
}

// NewCheckerboard creates a new checkerboard emitter
func NewCheckerboard(colorA, colorB core.Vec3, scale float64) *Checkerboard {
	return &Checkerboard{ColorA: colorA, ColorB: colorB, Scale: scale}
}

// Emit selects a color by the parity of the world XY cell containing the point
func (c *Checkerboard) Emit(surf Surface) core.Vec3 {
	period := 2.0 * c.Scale
	ix := int(math.Floor(surf.Point.X / period))
	iy := int(math.Floor(surf.Point.Y / period))

	if ((ix+iy)%2+2)%2 == 0 {
		return c.ColorA
	}
	return c.ColorB
}

// Evaluate implements Material; emitters do not reflect
func (c *Checkerboard) Evaluate(rayDir, toLight core.Vec3, surf Surface) (core.Vec3, float64) {
	return core.Vec3{}, 0
}

// Sample implements Material; emitters do not scatter
func (c *Checkerboard) Sample(rayDir core.Vec3, surf Surface, sampler core.Sampler) SampleResult {
	return SampleResult{}
}

// Normals is a debug emitter that visualizes the world shading normal
type Normals struct{}

// NewNormals creates a new normal-visualization material
func NewNormals() *Normals {
	return &Normals{}
}

// Emit returns the absolute value of the shading normal as a color
func (nm *Normals) Emit(surf Surface) core.Vec3 {
	return surf.Normal.Abs()
}

// Evaluate implements Material; debug output only
func (nm *Normals) Evaluate(rayDir, toLight core.Vec3, surf Surface) (core.Vec3, float64) {
	return core.Vec3{}, 0
}

// Sample implements Material; debug output only
func (nm *Normals) Sample(rayDir core.Vec3, surf Surface, sampler core.Sampler) SampleResult {
	return SampleResult{}
}
