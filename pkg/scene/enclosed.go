package scene

import (
	"github.com/df07/go-photon-mapper/pkg/core"
	"github.com/df07/go-photon-mapper/pkg/geometry"
	"github.com/df07/go-photon-mapper/pkg/material"
)

// NewEnclosedScene creates a point light inside a closed sphere of the given albedo.
// Every emitted photon hits the sphere, so with a white albedo photons never escape
// and never get absorbed; they only stop when their bounce budget runs out.
func NewEnclosedScene(albedo core.Vec3) *Scene {
	s := &Scene{}
	s.Shapes = append(s.Shapes, geometry.NewSphere(core.NewVec3(0, 0, 0), 5, material.NewLambertian(albedo)))
	s.AddPointLight(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), 1.0)
	s.Preprocess()
	return s
}
