package geometry

import (
	"github.com/df07/go-photon-mapper/pkg/core"
	"github.com/df07/go-photon-mapper/pkg/material"
)

// BVHNode represents a node in the Bounding Volume Hierarchy
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Shape // Multiple shapes for leaf nodes (nil for internal nodes)
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection
type BVH struct {
	Root   *BVHNode
	Center core.Vec3 // Center of the scene bounds
	Radius float64   // Radius of a sphere enclosing the scene bounds
}

// NewBVH constructs a BVH from a slice of shapes
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}

	// Copy so the caller's slice order is left untouched by partitioning
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	root := buildBVH(shapesCopy)
	center := root.BoundingBox.Center()

	return &BVH{
		Root:   root,
		Center: center,
		Radius: root.BoundingBox.Max.Subtract(center).Length(),
	}
}

// Leaf threshold: if we have this many or fewer shapes, store them in a leaf node
const leafThreshold = 8

// buildBVH recursively builds the BVH using midpoint splits along the longest axis
func buildBVH(shapes []Shape) *BVHNode {
	boundingBox := shapes[0].BoundingBox()
	for i := 1; i < len(shapes); i++ {
		boundingBox = boundingBox.Union(shapes[i].BoundingBox())
	}

	if len(shapes) <= leafThreshold {
		return &BVHNode{BoundingBox: boundingBox, Shapes: shapes}
	}

	axis := boundingBox.LongestAxis()
	splitPos := boundingBox.Center().Axis(axis)

	var leftShapes, rightShapes []Shape
	for _, shape := range shapes {
		if shape.BoundingBox().Center().Axis(axis) < splitPos {
			leftShapes = append(leftShapes, shape)
		} else {
			rightShapes = append(rightShapes, shape)
		}
	}

	// All centers on one side; stop splitting
	if len(leftShapes) == 0 || len(rightShapes) == 0 {
		return &BVHNode{BoundingBox: boundingBox, Shapes: shapes}
	}

	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(leftShapes),
		Right:       buildBVH(rightShapes),
	}
}

// Hit returns the nearest intersection of the ray with any shape in the BVH
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return bvh.hitNode(bvh.Root, ray, tMin, tMax)
}

func (bvh *BVH) hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	var closest *material.HitRecord
	closestSoFar := tMax

	if node.Shapes != nil {
		for _, shape := range node.Shapes {
			if hit, ok := shape.Hit(ray, tMin, closestSoFar); ok {
				closest = hit
				closestSoFar = hit.T
			}
		}
		return closest, closest != nil
	}

	for _, child := range []*BVHNode{node.Left, node.Right} {
		if child == nil {
			continue
		}
		if hit, ok := bvh.hitNode(child, ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox() core.AABB {
	if bvh.Root == nil {
		return core.AABB{}
	}
	return bvh.Root.BoundingBox
}

// bvhStats contains statistics about the BVH structure
type bvhStats struct {
	totalNodes  int
	leafNodes   int
	maxDepth    int
	totalShapes int
}

func (bvh *BVH) getStats() bvhStats {
	stats := bvhStats{}
	if bvh.Root != nil {
		bvh.collectStats(bvh.Root, 0, &stats)
	}
	return stats
}

func (bvh *BVH) collectStats(node *BVHNode, depth int, stats *bvhStats) {
	stats.totalNodes++
	stats.maxDepth = max(stats.maxDepth, depth)

	if node.Shapes != nil {
		stats.leafNodes++
		stats.totalShapes += len(node.Shapes)
		return
	}
	if node.Left != nil {
		bvh.collectStats(node.Left, depth+1, stats)
	}
	if node.Right != nil {
		bvh.collectStats(node.Right, depth+1, stats)
	}
}
