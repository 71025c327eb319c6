package shading

import (
	"github.com/df07/go-rt-shading/pkg/core"
	"github.com/df07/go-rt-shading/pkg/geometry"
	"github.com/df07/go-rt-shading/pkg/lights"
	"github.com/df07/go-rt-shading/pkg/material"
	"github.com/df07/go-rt-shading/pkg/scene"
)

// RayState is the per-ray payload: everything one bounce produces for the
// driving integrator. Written exactly once per traced segment, by either
// Shade or Miss. The integrator continues the path with BRDFDirection and
// combines the emitter- and BRDF-sampled estimates itself.
type RayState struct {
	Seed uint32 // Generator state carried to the next bounce

	Hit        bool // Whether any geometry was struck
	IsEmitter  bool // The hit material is terminal and emits Radiance
	IsSpecular bool // The BRDF sample is a delta lobe; skip MIS for it

	Radiance core.Vec3 // Emitted light at the hit, zero if non-emissive

	HitPoint        core.Vec3
	ShadingNormal   core.Vec3 // Oriented toward the ray origin side
	GeometricNormal core.Vec3 // Oriented toward the ray origin side

	// Importance-sampled continuation
	BRDFDirection core.Vec3
	BRDFValue     core.Vec3 // Per-channel throughput
	BRDFPDF       float64

	// Directly-sampled light, for the caller's direct-lighting estimate
	EmitterPosition  core.Vec3
	EmitterNormal    core.Vec3
	EmitterRadiance  core.Vec3
	EmitterPDF       float64 // Light selection density
	EmitterBRDFValue core.Vec3
	EmitterBRDFPDF   float64
}

// Shade is the closest-hit entry point: it resolves the hit geometry, looks
// up the instance's material, and runs both the light-sampling and
// BRDF-sampling estimators before finalizing the payload. Pure given its
// inputs and the sampler state; no cross-hit state is retained.
func Shade(ctx geometry.HitContext, s *scene.Scene, sampler *core.StreamSampler) RayState {
	surf := geometry.Resolve(ctx, s)
	inst := s.Instances[ctx.InstanceIndex]
	mat := s.Materials[inst.MaterialIndex]

	state := RayState{
		Hit:             true,
		HitPoint:        surf.Point,
		ShadingNormal:   surf.Normal,
		GeometricNormal: surf.GeometricNormal,
	}

	// Emitters terminate the path
	if emitter, ok := mat.(material.Emitter); ok {
		state.IsEmitter = true
		state.Radiance = emitter.Emit(surf)
		state.Seed = sampler.State()
		return state
	}

	// Emitter-sampled estimator
	if ls, ok := lights.SampleOne(s.Lights, surf.Point, sampler); ok {
		state.EmitterPosition = ls.Position
		state.EmitterNormal = ls.Normal
		state.EmitterRadiance = ls.Radiance
		state.EmitterPDF = ls.PDF

		value, pdf := mat.Evaluate(ctx.RayDirection, ls.Direction, surf)
		state.EmitterBRDFValue = value
		state.EmitterBRDFPDF = pdf
	}

	// BRDF-sampled estimator
	sample := mat.Sample(ctx.RayDirection, surf, sampler)
	state.BRDFDirection = sample.Direction
	state.BRDFValue = sample.Value
	state.BRDFPDF = sample.PDF
	state.IsSpecular = sample.Specular

	state.Seed = sampler.State()
	return state
}

// Miss is the miss entry point: no geometry was struck, the payload carries
// zero radiance and the threaded seed
func Miss(sampler *core.StreamSampler) RayState {
	return RayState{Seed: sampler.State()}
}
