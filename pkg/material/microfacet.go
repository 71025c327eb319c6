package material

import (
	"math"

	"github.com/df07/go-rt-shading/pkg/core"
)

// Microfacet represents a rough conductor: a Beckmann-Torrance specular lobe
// mixed with a Lambertian diffuse lobe. The specular weight ks is derived
// from the albedo so the two lobes conserve energy.
type Microfacet struct {
	Albedo    core.Vec3 // Diffuse reflectance
	IOR       float64   // Index of refraction for the Fresnel term
	Roughness float64   // Beckmann roughness (alpha)
}

// NewMicrofacet creates a new microfacet material
func NewMicrofacet(albedo core.Vec3, ior, roughness float64) *Microfacet {
	return &Microfacet{Albedo: albedo, IOR: ior, Roughness: roughness}
}

// specularWeight returns ks, the probability of sampling the specular lobe
func (m *Microfacet) specularWeight() float64 {
	return 1.0 - m.Albedo.MaxComponent()
}

// beckmannD is the Beckmann normal distribution for a half-vector at the
// given cosine to the surface normal
func beckmannD(cosTheta, alpha float64) float64 {
	if cosTheta <= 0 {
		return 0
	}
	alpha2 := alpha * alpha
	cosTheta2 := cosTheta * cosTheta
	tanTheta2 := (1.0 - cosTheta2) / cosTheta2

	return math.Exp(-tanTheta2/alpha2) / (math.Pi * alpha2 * cosTheta2 * cosTheta2)
}

// smithG1 is the Smith masking term for one direction against the half-vector.
// Zero when the facet is back-facing relative to the direction; saturates to
// 1 at b >= 1.6 to avoid the grazing-angle tangent blowup.
func smithG1(w, wh, n core.Vec3, alpha float64) float64 {
	cosTheta := w.Dot(n)
	if w.Dot(wh)/cosTheta <= 0 {
		return 0
	}

	tanTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta)) / cosTheta
	if tanTheta == 0 {
		return 1
	}
	b := 1.0 / (alpha * tanTheta)
	if b >= 1.6 {
		return 1
	}

	return (3.535*b + 2.181*b*b) / (1.0 + 2.276*b + 2.577*b*b)
}

// Evaluate combines the diffuse lobe albedo/π with the specular lobe
// ks·D·F·G / (4·cosθi·cosθo·cosθh), and returns the MIS-correct mixture
// density ks·D·cosθh·J + (1-ks)·cosθi/π used by Sample.
func (m *Microfacet) Evaluate(rayDir, toLight core.Vec3, surf Surface) (core.Vec3, float64) {
	wi := toLight
	wo := rayDir.Negate().Normalize()
	n := surf.Normal

	cosI := wi.Dot(n)
	cosO := wo.Dot(n)
	if cosI <= 0 || cosO <= 0 {
		return core.Vec3{}, 0
	}

	wh := wi.Add(wo).Normalize()
	cosH := wh.Dot(n)
	ks := m.specularWeight()

	d := beckmannD(cosH, m.Roughness)
	f := core.Fresnel(wh.Dot(wi), 1.0/m.IOR)
	g := smithG1(wi, wh, n, m.Roughness) * smithG1(wo, wh, n, m.Roughness)

	specular := ks * d * f * g / (4.0 * cosI * cosO * cosH)
	value := m.Albedo.Multiply(1.0 / math.Pi).Add(core.NewVec3(specular, specular, specular))

	// Half-vector sampling density times the reflection Jacobian, mixed with
	// the cosine-hemisphere density
	jacobian := 1.0 / (4.0 * wh.Dot(wo))
	pdf := ks*d*cosH*jacobian + (1.0-ks)*cosI/math.Pi

	return value, pdf
}

// Sample stochastically picks between Beckmann half-vector sampling and
// cosine-hemisphere sampling by the specular weight, then evaluates the
// combined BRDF at the resulting direction so value and density stay
// consistent with the mixture.
func (m *Microfacet) Sample(rayDir core.Vec3, surf Surface, sampler core.Sampler) SampleResult {
	n := surf.Normal
	ks := m.specularWeight()

	var direction core.Vec3
	if sampler.Get1D() < ks {
		// Specular lobe: sample a half-vector and reflect the view direction
		local := core.SampleBeckmann(m.Roughness, sampler.Get2D())
		wh := core.FrameSample(local, n)
		direction = core.Reflect(rayDir.Normalize(), wh).Normalize()
	} else {
		// Diffuse lobe
		local, _ := core.SampleCosineHemisphere(sampler.Get2D())
		direction = core.FrameSample(local, n)
	}

	value, pdf := m.Evaluate(rayDir, direction, surf)
	if pdf <= 0 {
		// Sampled below the horizon; dead sample, caller terminates the path
		return SampleResult{Direction: direction}
	}

	return SampleResult{
		Direction: direction,
		Value:     value,
		PDF:       pdf,
	}
}
