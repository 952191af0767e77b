package lights

import (
	"github.com/df07/go-photon-mapper/pkg/core"
	"github.com/df07/go-photon-mapper/pkg/geometry"
)

// emissionOffset lifts emitted photons off the light surface
const emissionOffset = 1e-4

// QuadLight represents a one-sided rectangular area light emitting along U × V
type QuadLight struct {
	*geometry.Quad
	Color     core.Vec3
	Intensity float64
}

// NewQuadLight creates a new quad light. The light is not part of the scene
// geometry, so photons pass through it.
func NewQuadLight(corner, u, v, color core.Vec3, intensity float64) *QuadLight {
	return &QuadLight{
		Quad:      geometry.NewQuad(corner, u, v, nil),
		Color:     normalizeColor(color),
		Intensity: max(0, intensity),
	}
}

func (ql *QuadLight) Type() LightType {
	return LightTypeArea
}

func (ql *QuadLight) Power() float64 {
	return ql.Intensity
}

// SampleEmission picks a uniform point on the quad and a cosine-weighted direction
// around the quad normal
func (ql *QuadLight) SampleEmission(sampler core.Sampler) EmissionSample {
	uv := sampler.Get2D()
	point := ql.PointAt(uv.X, uv.Y).Add(ql.Normal.Multiply(emissionOffset))

	return EmissionSample{
		Point:     point,
		Direction: core.SampleCosineHemisphere(ql.Normal, sampler.Get2D()).Normalize(),
		Color:     ql.Color,
	}
}
