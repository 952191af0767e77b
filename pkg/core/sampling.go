package core

import (
	"math"
	"math/rand"
)

// Sampler provides random sampling for the photon tracer.
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
	Get3D() Vec3
}

// SamplerFactory creates an independent sampler for one unit of work (a photon batch).
// Implementations must return samplers whose sequences depend only on id, so that
// a run is reproducible regardless of which worker picks up which batch.
type SamplerFactory func(id int) Sampler

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

// NewSeededSamplerFactory returns a factory producing RandomSamplers seeded from
// the base seed and the work id.
func NewSeededSamplerFactory(seed int64) SamplerFactory {
	return func(id int) Sampler {
		// golden-ratio stride keeps neighbouring ids far apart in seed space
		mixed := seed ^ int64(uint64(id+1)*0x9e3779b97f4a7c15)
		return NewRandomSampler(rand.New(rand.NewSource(mixed)))
	}
}

// OrthonormalBasis builds two unit tangents perpendicular to the unit vector w
func OrthonormalBasis(w Vec3) (u, v Vec3) {
	var helper Vec3
	if math.Abs(w.X) > 0.1 {
		helper = NewVec3(0, 1, 0)
	} else {
		helper = NewVec3(1, 0, 0)
	}
	u = helper.Cross(w).Normalize()
	v = w.Cross(u)
	return u, v
}

// SampleCosineHemisphere generates a cosine-weighted random direction in hemisphere around normal
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	a := 2.0 * math.Pi * sample.X
	r := math.Sqrt(sample.Y)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	z := math.Sqrt(math.Max(0, 1.0-sample.Y))

	tangent, bitangent := OrthonormalBasis(normal)
	return tangent.Multiply(x).Add(bitangent.Multiply(y)).Add(normal.Multiply(z))
}

// SampleCone samples a direction uniformly within a cone
func SampleCone(direction Vec3, cosTotalWidth float64, sample Vec2) Vec3 {
	u, v := OrthonormalBasis(direction)

	cosTheta := 1.0 - sample.X*(1.0-cosTotalWidth)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	phi := 2.0 * math.Pi * sample.Y

	x := sinTheta * math.Cos(phi)
	y := sinTheta * math.Sin(phi)
	return u.Multiply(x).Add(v.Multiply(y)).Add(direction.Multiply(cosTheta))
}

// SampleOnUnitSphere generates a uniform random direction on the unit sphere
func SampleOnUnitSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X // z ∈ [-1, 1]
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	return NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}

// SamplePointInUnitSphere generates a random point inside a unit sphere using the inverse CDF
func SamplePointInUnitSphere(sample Vec3) Vec3 {
	r := math.Cbrt(sample.X)
	phi := 2 * math.Pi * sample.Y
	cosTheta := 2*sample.Z - 1
	sinTheta := math.Sqrt(math.Max(0, 1-cosTheta*cosTheta))

	return NewVec3(
		r*sinTheta*math.Cos(phi),
		r*sinTheta*math.Sin(phi),
		r*cosTheta,
	)
}
