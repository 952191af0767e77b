package core

import (
	"math"

	"github.com/golang/geo/r3"
)

// AABB is an axis-aligned box. It bounds scene shapes for the BVH and
// stored photon positions for the photon map.
type AABB struct {
	Min Vec3
	Max Vec3
}

func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// NewAABBFromPoints returns the tightest box containing every point, or the
// zero box when there are none.
func NewAABBFromPoints(points ...Vec3) AABB {
	if len(points) == 0 {
		return AABB{}
	}
	box := AABB{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.Extend(p)
	}
	return box
}

// Extend grows the box to include p
func (aabb AABB) Extend(p Vec3) AABB {
	return AABB{
		Min: NewVec3(math.Min(aabb.Min.X, p.X), math.Min(aabb.Min.Y, p.Y), math.Min(aabb.Min.Z, p.Z)),
		Max: NewVec3(math.Max(aabb.Max.X, p.X), math.Max(aabb.Max.Y, p.Y), math.Max(aabb.Max.Z, p.Z)),
	}
}

// Union returns the box enclosing both boxes
func (aabb AABB) Union(other AABB) AABB {
	return aabb.Extend(other.Min).Extend(other.Max)
}

// Hit reports whether the ray crosses the box within [tMin, tMax] (slab test).
// A ray parallel to a slab misses unless its origin lies inside that slab.
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		lo, hi := aabb.Min.Axis(axis), aabb.Max.Axis(axis)
		origin, direction := ray.Origin.Axis(axis), ray.Direction.Axis(axis)

		if math.Abs(direction) < 1e-8 {
			if origin < lo || origin > hi {
				return false
			}
			continue
		}

		t1 := (lo - origin) / direction
		t2 := (hi - origin) / direction
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}
	return true
}

func (aabb AABB) Center() Vec3 {
	return aabb.Min.Add(aabb.Max).Multiply(0.5)
}

// Size returns the extent along each axis
func (aabb AABB) Size() Vec3 {
	return aabb.Max.Subtract(aabb.Min)
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the largest extent.
// It picks the same axis as the kd-tree split for the same extent.
func (aabb AABB) LongestAxis() int {
	size := aabb.Size()
	return int(r3.Vector{X: size.X, Y: size.Y, Z: size.Z}.LargestComponent())
}

// Expand pads the box by amount on every side
func (aabb AABB) Expand(amount float64) AABB {
	pad := NewVec3(amount, amount, amount)
	return AABB{Min: aabb.Min.Subtract(pad), Max: aabb.Max.Add(pad)}
}
