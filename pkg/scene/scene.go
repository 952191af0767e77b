package scene

import (
	"sync"

	"github.com/df07/go-photon-mapper/pkg/core"
	"github.com/df07/go-photon-mapper/pkg/geometry"
	"github.com/df07/go-photon-mapper/pkg/lights"
	"github.com/df07/go-photon-mapper/pkg/material"
)

// Scene contains the geometry and lights a photon mapping pass runs against
type Scene struct {
	Shapes []geometry.Shape // Objects in the scene
	Lights []lights.Light   // Lights in the scene
	BVH    *geometry.BVH    // Acceleration structure for ray-object intersection

	lazyBVH sync.Once
}

// NewScene creates a scene and builds its BVH
func NewScene(shapes []geometry.Shape, sceneLights []lights.Light) *Scene {
	s := &Scene{Shapes: shapes, Lights: sceneLights}
	s.Preprocess()
	return s
}

// Preprocess (re)builds the BVH from the current shapes.
// Must be called after shapes are added and before the scene is traced.
func (s *Scene) Preprocess() {
	s.BVH = geometry.NewBVH(s.Shapes)
}

// GetLights returns the scene's photon sources
func (s *Scene) GetLights() []lights.Light {
	return s.Lights
}

// Hit returns the nearest intersection of ray with the scene geometry.
// The BVH is built on first use if Preprocess was never called. Safe for concurrent use.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	s.lazyBVH.Do(func() {
		if s.BVH == nil {
			s.Preprocess()
		}
	})
	return s.BVH.Hit(ray, tMin, tMax)
}

// NewGroundQuad creates a large horizontal quad centered at the given point with normal +Y
func NewGroundQuad(center core.Vec3, size float64, mat material.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (0,0,size) × (size,0,0) = (0,size²,0)
	return geometry.NewQuad(corner, core.NewVec3(0, 0, size), core.NewVec3(size, 0, 0), mat)
}

// AddPointLight adds a point light to the scene
func (s *Scene) AddPointLight(position, color core.Vec3, intensity float64) {
	s.Lights = append(s.Lights, lights.NewPointLight(position, color, intensity))
}

// AddQuadLight adds a rectangular area light to the scene
func (s *Scene) AddQuadLight(corner, u, v, color core.Vec3, intensity float64) {
	s.Lights = append(s.Lights, lights.NewQuadLight(corner, u, v, color, intensity))
}

// AddPointSpotLight adds a point spot light to the scene
func (s *Scene) AddPointSpotLight(from, to, color core.Vec3, intensity, coneAngleDegrees float64) {
	s.Lights = append(s.Lights, lights.NewPointSpotLight(from, to, color, intensity, coneAngleDegrees))
}

// TotalLightPower returns the summed power of all lights
func (s *Scene) TotalLightPower() float64 {
	total := 0.0
	for _, light := range s.Lights {
		total += light.Power()
	}
	return total
}
