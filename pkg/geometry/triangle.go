package geometry

import (
	"github.com/df07/go-photon-mapper/pkg/core"
	"github.com/df07/go-photon-mapper/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3         // The three vertices
	Material   material.Material // Material of the triangle
	normal     core.Vec3
	bbox       core.AABB
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: mat,
		normal:   v1.Subtract(v0).Cross(v2.Subtract(v0)).Normalize(),
		bbox:     core.NewAABBFromPoints(v0, v1, v2).Expand(1e-4),
	}
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tParam := f * edge2.Dot(q)
	if tParam < tMin || tParam > tMax {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        tParam,
		Point:    ray.At(tParam),
		Material: t.Material,
	}
	hitRecord.SetFaceNormal(ray, t.normal)

	return hitRecord, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Normal returns the triangle's geometric normal (v1-v0 × v2-v0)
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}
