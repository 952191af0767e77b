package lights

import (
	"math"

	"github.com/df07/go-photon-mapper/pkg/core"
)

// PointSpotLight represents a point light restricted to a cone
type PointSpotLight struct {
	position      core.Vec3 // Light position in world space
	direction     core.Vec3 // Normalized direction vector (from -> to)
	color         core.Vec3
	intensity     float64
	cosTotalWidth float64 // Cosine of the cone half-angle
}

// NewPointSpotLight creates a new point spot light
// from: light position
// to: point the light is aimed at
// coneAngleDegrees: half-angle of the emission cone in degrees
func NewPointSpotLight(from, to, color core.Vec3, intensity, coneAngleDegrees float64) *PointSpotLight {
	coneAngleDegrees = max(0, min(180, coneAngleDegrees))
	return &PointSpotLight{
		position:      from,
		direction:     to.Subtract(from).Normalize(),
		color:         normalizeColor(color),
		intensity:     max(0, intensity),
		cosTotalWidth: math.Cos(coneAngleDegrees * math.Pi / 180.0),
	}
}

func (sl *PointSpotLight) Type() LightType {
	return LightTypeSpot
}

func (sl *PointSpotLight) Power() float64 {
	return sl.intensity
}

// SampleEmission samples a direction uniformly within the cone
func (sl *PointSpotLight) SampleEmission(sampler core.Sampler) EmissionSample {
	return EmissionSample{
		Point:     sl.position,
		Direction: core.SampleCone(sl.direction, sl.cosTotalWidth, sampler.Get2D()).Normalize(),
		Color:     sl.color,
	}
}

// Position returns the light position
func (sl *PointSpotLight) Position() core.Vec3 {
	return sl.position
}

// Direction returns the cone axis
func (sl *PointSpotLight) Direction() core.Vec3 {
	return sl.direction
}
