package scene

import (
	"github.com/df07/go-photon-mapper/pkg/core"
	"github.com/df07/go-photon-mapper/pkg/geometry"
	"github.com/df07/go-photon-mapper/pkg/material"
)

// NewDefaultScene creates spheres on a ground quad lit by a point light and a spot light
func NewDefaultScene() *Scene {
	s := &Scene{}

	lambertianGreen := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	metalGold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0.3)

	s.Shapes = append(s.Shapes,
		geometry.NewSphere(core.NewVec3(0, 0.5, -1), 0.5, lambertianRed),
		geometry.NewSphere(core.NewVec3(-1, 0.5, -1), 0.5, lambertianBlue),
		geometry.NewSphere(core.NewVec3(1, 0.5, -1), 0.5, metalGold),
		NewGroundQuad(core.NewVec3(0, 0, 0), 20.0, lambertianGreen),
		// Back wall from two triangles so light bouncing off the ground has somewhere to land
		geometry.NewTriangle(core.NewVec3(-10, 0, -4), core.NewVec3(10, 0, -4), core.NewVec3(10, 6, -4), lambertianGreen),
		geometry.NewTriangle(core.NewVec3(-10, 0, -4), core.NewVec3(10, 6, -4), core.NewVec3(-10, 6, -4), lambertianGreen),
	)

	s.AddPointLight(core.NewVec3(0, 4, 0), core.NewVec3(1.0, 0.95, 0.9), 10.0)
	s.AddPointSpotLight(core.NewVec3(-2, 3, 1), core.NewVec3(0, 0.5, -1), core.NewVec3(0.9, 0.9, 1.0), 5.0, 25)

	s.Preprocess()
	return s
}
