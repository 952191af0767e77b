package lights

import "github.com/df07/go-photon-mapper/pkg/core"

type LightType string

const (
	LightTypeArea  LightType = "area"
	LightTypePoint LightType = "point"
	LightTypeSpot  LightType = "spot"
)

// Light is a photon source
type Light interface {
	Type() LightType

	// Power returns the scalar intensity used to budget photons across lights
	Power() float64

	// SampleEmission samples one emitted photon: origin, unit direction and color.
	// The direction is drawn uniformly over the light's emission solid angle
	// (or cosine-weighted for one-sided area emitters).
	SampleEmission(sampler core.Sampler) EmissionSample
}

// EmissionSample contains one sampled photon emission
type EmissionSample struct {
	Point     core.Vec3 // Emission origin
	Direction core.Vec3 // Unit emission direction FROM the light
	Color     core.Vec3 // Initial photon color, each channel in [0, 1]
}

// Ray returns the emission as a ray
func (e EmissionSample) Ray() core.Ray {
	return core.NewRay(e.Point, e.Direction)
}

// normalizeColor clamps a light color to [0,1] per channel, defaulting black input to white
func normalizeColor(color core.Vec3) core.Vec3 {
	if color.IsZero() {
		return core.NewVec3(1, 1, 1)
	}
	return color.Clamp(0, 1)
}
