package core

import "math/rand"

// Sampler provides uniform random samples for the shading and sampling code.
// Can be swapped out for deterministic testing or different generators.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// Get3D returns three random float64 values in [0, 1)
func (r *RandomSampler) Get3D() Vec3 {
	return NewVec3(r.random.Float64(), r.random.Float64(), r.random.Float64())
}

// StreamSampler is a stateless seed-threading generator: each draw is a pure
// function of the carried state and advances it. Per-ray state keeps parallel
// bounces independent without any shared generator. Uses a 32-bit LCG with a
// PCG output permutation, a handful of arithmetic ops per draw.
type StreamSampler struct {
	state uint32
}

// NewStreamSampler creates a stream positioned at the given seed
func NewStreamSampler(seed uint32) *StreamSampler {
	return &StreamSampler{state: seed}
}

// State returns the current generator state, carried across bounces in the payload
func (s *StreamSampler) State() uint32 {
	return s.state
}

// Get1D advances the state and returns a float64 in [0, 1)
func (s *StreamSampler) Get1D() float64 {
	s.state = s.state*747796405 + 2891336453
	word := ((s.state >> ((s.state >> 28) + 4)) ^ s.state) * 277803737
	word = (word >> 22) ^ word
	return float64(word) / (1 << 32)
}

// Get2D returns two successive draws
func (s *StreamSampler) Get2D() Vec2 {
	return NewVec2(s.Get1D(), s.Get1D())
}

// Get3D returns three successive draws
func (s *StreamSampler) Get3D() Vec3 {
	return NewVec3(s.Get1D(), s.Get1D(), s.Get1D())
}
