package geometry

import (
	"math"

	"github.com/df07/go-photon-mapper/pkg/core"
	"github.com/df07/go-photon-mapper/pkg/material"
)

// Quad represents a rectangular surface defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3         // One corner of the quad
	U        core.Vec3         // First edge vector
	V        core.Vec3         // Second edge vector
	Normal   core.Vec3         // Normal vector (computed from U × V)
	Material material.Material // Material of the quad
	D        float64           // Plane equation constant: ax + by + cz = d
	W        core.Vec3         // Cached cross product for planar coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: mat,
		D:        normal.Dot(corner),
		W:        cross.Multiply(1.0 / cross.Dot(cross)),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: q.Material,
	}
	hitRecord.SetFaceNormal(ray, q.Normal)

	return hitRecord, true
}

// BoundingBox returns the bounding box of the quad, padded so flat quads keep volume
func (q *Quad) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	).Expand(1e-4)
}

// PointAt returns the point at planar coordinates (a, b) in [0,1]²
func (q *Quad) PointAt(a, b float64) core.Vec3 {
	return q.Corner.Add(q.U.Multiply(a)).Add(q.V.Multiply(b))
}

// Area returns the surface area of the quad
func (q *Quad) Area() float64 {
	return q.U.Cross(q.V).Length()
}
