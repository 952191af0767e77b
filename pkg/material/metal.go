package material

import (
	"github.com/df07/go-photon-mapper/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	Reflectance core.Vec3 // Metal color
	Fuzzness    float64   // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	return &Metal{
		Reflectance: albedo.Clamp(0, 1),
		Fuzzness:    max(0, min(1, fuzzness)),
	}
}

// Scatter reflects the photon about the surface normal, perturbed by the fuzz radius
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	reflected := Reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzzness > 0 {
		perturbation := core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(m.Fuzzness)
		reflected = reflected.Add(perturbation)
	}

	// Fuzz pushed the photon into the surface
	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, reflected.Normalize()),
		Attenuation: m.Reflectance,
	}, true
}

// Albedo implements the Material interface
func (m *Metal) Albedo(hit HitRecord) core.Vec3 {
	return m.Reflectance
}

// Reflect calculates the reflection of a vector v off a surface with normal n
func Reflect(v, n core.Vec3) core.Vec3 {
	// r = v - 2*dot(v,n)*n
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
