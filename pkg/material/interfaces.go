package material

import (
	"github.com/df07/go-photon-mapper/pkg/core"
)

// Material interface for surfaces that photons can bounce off
type Material interface {
	// Scatter generates the outgoing ray for a photon that survived absorption.
	// Returns false when the surface cannot reflect the photon in this configuration.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Albedo returns the per-channel reflectance at the hit point
	Albedo(hit HitRecord) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Per-channel color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, facing against the ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// SurvivalProbability returns the chance that a photon is reflected rather than
// absorbed by a surface of the given albedo: the mean reflectance clamped to [0, 1].
func SurvivalProbability(albedo core.Vec3) float64 {
	return max(0, min(1, albedo.Average()))
}
