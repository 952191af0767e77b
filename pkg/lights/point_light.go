package lights

import "github.com/df07/go-photon-mapper/pkg/core"

// PointLight emits photons uniformly in all directions from a single position
type PointLight struct {
	Position  core.Vec3
	Color     core.Vec3
	Intensity float64
}

// NewPointLight creates a point light. A zero color is treated as white.
func NewPointLight(position, color core.Vec3, intensity float64) *PointLight {
	return &PointLight{
		Position:  position,
		Color:     normalizeColor(color),
		Intensity: max(0, intensity),
	}
}

func (pl *PointLight) Type() LightType {
	return LightTypePoint
}

func (pl *PointLight) Power() float64 {
	return pl.Intensity
}

// SampleEmission samples a direction uniformly over the unit sphere
func (pl *PointLight) SampleEmission(sampler core.Sampler) EmissionSample {
	return EmissionSample{
		Point:     pl.Position,
		Direction: core.SampleOnUnitSphere(sampler.Get2D()),
		Color:     pl.Color,
	}
}
