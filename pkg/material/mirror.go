package material

import (
	"github.com/df07/go-rt-shading/pkg/core"
)

// Mirror represents a perfect specular reflector
type Mirror struct{}

// NewMirror creates a new mirror material
func NewMirror() *Mirror {
	return &Mirror{}
}

// Evaluate returns zero: a delta distribution has no meaningful value for an
// arbitrary direction pair
func (m *Mirror) Evaluate(rayDir, toLight core.Vec3, surf Surface) (core.Vec3, float64) {
	return core.Vec3{}, 0
}

// Sample reflects the incoming direction about the shading normal with unit
// throughput and unit density (delta distribution)
func (m *Mirror) Sample(rayDir core.Vec3, surf Surface, sampler core.Sampler) SampleResult {
	reflected := core.Reflect(rayDir.Normalize(), surf.Normal)

	return SampleResult{
		Direction: reflected,
		Value:     core.NewVec3(1, 1, 1),
		PDF:       1,
		Specular:  true,
	}
}
