package scene

import (
	"github.com/df07/go-photon-mapper/pkg/core"
	"github.com/df07/go-photon-mapper/pkg/geometry"
	"github.com/df07/go-photon-mapper/pkg/material"
)

// CornellBoxSize is the edge length of the Cornell box
const CornellBoxSize = 555.0

// NewCornellScene creates a classic Cornell box scene with quad walls and a ceiling area light
func NewCornellScene() *Scene {
	s := &Scene{}

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	boxSize := CornellBoxSize

	floor := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)
	ceiling := geometry.NewQuad(core.NewVec3(0, boxSize, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white)
	backWall := geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white)
	leftWall := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, boxSize), core.NewVec3(0, boxSize, 0), red)
	rightWall := geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green)
	s.Shapes = append(s.Shapes, floor, ceiling, backWall, leftWall, rightWall)

	// Ceiling light slightly below the ceiling, emitting downwards
	lightSize := 130.0
	lightOffset := (boxSize - lightSize) / 2.0
	s.AddQuadLight(
		core.NewVec3(lightOffset, boxSize-1, lightOffset),
		core.NewVec3(lightSize, 0, 0),
		core.NewVec3(0, 0, lightSize),
		core.NewVec3(1.0, 0.95, 0.85),
		15.0,
	)

	leftSphere := geometry.NewSphere(core.NewVec3(185, 82.5, 169), 82.5, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.0))
	rightSphere := geometry.NewSphere(core.NewVec3(370, 90, 351), 90, white)
	s.Shapes = append(s.Shapes, leftSphere, rightSphere)

	s.Preprocess()
	return s
}
