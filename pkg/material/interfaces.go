package material

import (
	"github.com/df07/go-rt-shading/pkg/core"
)

// Surface describes the resolved geometry a material shades. Both normals
// face the side the incoming ray arrived from; FrontFace records whether
// that required a flip.
type Surface struct {
	Point           core.Vec3 // World-space hit point
	Normal          core.Vec3 // Shading normal, oriented toward the ray origin
	GeometricNormal core.Vec3 // Face normal, oriented toward the ray origin
	FrontFace       bool      // Whether the ray struck the front side
}

// Material is implemented by every reflective material model
type Material interface {
	// Evaluate returns the BRDF value and sampling density for light arriving
	// along toLight at a surface viewed along rayDir (the ray's travel
	// direction). Used for the direct-light estimate.
	Evaluate(rayDir, toLight core.Vec3, surf Surface) (core.Vec3, float64)

	// Sample importance-samples a continuation direction with its
	// per-channel throughput and density
	Sample(rayDir core.Vec3, surf Surface, sampler core.Sampler) SampleResult
}

// Emitter is implemented by terminal, light-emitting materials
type Emitter interface {
	Emit(surf Surface) core.Vec3
}

// SampleResult contains the result of importance-sampling a material
type SampleResult struct {
	Direction core.Vec3 // Sampled continuation direction, unit length
	Value     core.Vec3 // Per-channel throughput
	PDF       float64   // Density of the sampled direction (1 for delta lobes)
	Specular  bool      // Delta distribution; caller skips MIS weighting
}
