package material

import (
	"github.com/df07/go-photon-mapper/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Reflectance core.Vec3 // Base color/reflectance per channel
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Reflectance: albedo.Clamp(0, 1)}
}

// Scatter bounces the photon into a cosine-weighted direction around the surface normal
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	direction := core.SampleCosineHemisphere(hit.Normal, sampler.Get2D())

	// Degenerate sample exactly in the tangent plane; fall back to the normal
	if direction.Dot(hit.Normal) <= 0 {
		direction = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction.Normalize()),
		Attenuation: l.Reflectance,
	}, true
}

// Albedo implements the Material interface
func (l *Lambertian) Albedo(hit HitRecord) core.Vec3 {
	return l.Reflectance
}
