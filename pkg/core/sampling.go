package core

import "math"

// SampleCosineHemisphere maps two uniform samples to a cosine-weighted
// direction in the local +Z hemisphere and returns it with its density cos(θ)/π
func SampleCosineHemisphere(sample Vec2) (Vec3, float64) {
	// Uniform point on the unit disk, projected up onto the hemisphere
	a := 2.0 * math.Pi * sample.X
	r := math.Sqrt(sample.Y)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	z := math.Sqrt(1.0 - sample.Y)

	return NewVec3(x, y, z), z / math.Pi
}

// SampleBeckmann maps two uniform samples to a microfacet normal in the local
// +Z frame, distributed according to the Beckmann distribution for the given
// roughness. BeckmannPDF is the matched density for this map.
func SampleBeckmann(roughness float64, sample Vec2) Vec3 {
	phi := 2.0 * math.Pi * sample.X
	alpha2 := roughness * roughness

	// Inverse CDF of the Beckmann slope distribution
	tanTheta2 := -alpha2 * math.Log(1.0-sample.Y)
	cosTheta := 1.0 / math.Sqrt(1.0+tanTheta2)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))

	return NewVec3(sinTheta*math.Cos(phi), sinTheta*math.Sin(phi), cosTheta)
}

// BeckmannPDF returns the density of SampleBeckmann for a microfacet normal
// at the given cosine to the surface normal. Integrates to 1 over the
// hemisphere; zero below it.
func BeckmannPDF(cosTheta, roughness float64) float64 {
	if cosTheta <= 0 {
		return 0
	}
	alpha2 := roughness * roughness
	cosTheta2 := cosTheta * cosTheta
	tanTheta2 := (1.0 - cosTheta2) / cosTheta2

	// D(m) * cos(θ)
	return math.Exp(-tanTheta2/alpha2) / (math.Pi * alpha2 * cosTheta2 * cosTheta)
}

// Fresnel returns the unpolarized Fresnel reflectance for a ray hitting an
// interface with the given cosine of incidence and relative index of
// refraction (incident side over transmitted side). Returns exactly 1.0 under
// total internal reflection.
func Fresnel(cosIncident, eta float64) float64 {
	sinTransmitted2 := eta * eta * (1.0 - cosIncident*cosIncident)
	if sinTransmitted2 > 1.0 {
		return 1.0
	}
	cosTransmitted := math.Sqrt(1.0 - sinTransmitted2)

	rs := (eta*cosIncident - cosTransmitted) / (eta*cosIncident + cosTransmitted)
	rp := (cosIncident - eta*cosTransmitted) / (cosIncident + eta*cosTransmitted)

	return (rs*rs + rp*rp) / 2.0
}

// FrameSample rotates a direction expressed in the local +Z frame onto an
// arbitrary unit normal. The rotation axis is the normal's XY projection
// rotated 90°, applied via Rodrigues' formula. When the normal is nearly
// parallel to ±Z the axis degenerates; the local direction is returned
// unchanged (or negated for -Z) instead of normalizing a zero axis.
func FrameSample(local, normal Vec3) Vec3 {
	const epsilon = 1e-9

	sinTheta := math.Sqrt(normal.X*normal.X + normal.Y*normal.Y)
	if sinTheta < epsilon {
		if normal.Z >= 0 {
			return local
		}
		return local.Negate()
	}

	axis := NewVec3(-normal.Y/sinTheta, normal.X/sinTheta, 0)
	cosTheta := normal.Z

	// v·cosθ + (k×v)·sinθ + k·(k·v)·(1-cosθ)
	return local.Multiply(cosTheta).
		Add(axis.Cross(local).Multiply(sinTheta)).
		Add(axis.Multiply(axis.Dot(local) * (1.0 - cosTheta)))
}
