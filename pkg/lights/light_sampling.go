package lights

import "github.com/df07/go-rt-shading/pkg/core"

// SampleOne uniformly selects one light and samples it toward the shading
// point. The uniform selection probability 1/count is folded into the
// returned PDF, so the combined density is 1/count times the per-type
// density. Returns false when the scene has no lights.
//
// Safe to call multiple times per hit; each call draws fresh samples from the
// shared stream.
func SampleOne(lights []Light, point core.Vec3, sampler core.Sampler) (Sample, bool) {
	count := len(lights)
	if count == 0 {
		return Sample{}, false
	}

	index := int(sampler.Get1D() * float64(count))
	if index >= count {
		index = count - 1
	}

	sample := lights[index].Sample(point, sampler)
	sample.PDF /= float64(count)

	return sample, true
}
