package photonmap

import (
	"container/heap"
	"math"
	"sort"

	"github.com/golang/geo/r3"

	"github.com/df07/go-photon-mapper/pkg/core"
)

// PointSet is the read-only view of a point collection that a KDTree indexes.
// Indices run from 0 to PointCount()-1 and must stay stable while a tree uses them.
type PointSet interface {
	PointCount() int
	DistanceSquared(query core.Vec3, index int) float64
	Coordinate(index int, axis int) float64
}

// PointCloud adapts any slice to a PointSet through a position accessor.
// The same adaptor serves photon records and raw points.
type PointCloud[T any] struct {
	items    []T
	position func(T) core.Vec3
}

// NewPointCloud wraps items without copying them
func NewPointCloud[T any](items []T, position func(T) core.Vec3) *PointCloud[T] {
	return &PointCloud[T]{items: items, position: position}
}

// NewVec3Cloud indexes raw positions
func NewVec3Cloud(points []core.Vec3) *PointCloud[core.Vec3] {
	return NewPointCloud(points, func(p core.Vec3) core.Vec3 { return p })
}

func (pc *PointCloud[T]) PointCount() int { return len(pc.items) }

func (pc *PointCloud[T]) DistanceSquared(query core.Vec3, index int) float64 {
	return pc.position(pc.items[index]).DistanceSquared(query)
}

func (pc *PointCloud[T]) Coordinate(index int, axis int) float64 {
	return pc.position(pc.items[index]).Axis(axis)
}

// At returns the item stored at index
func (pc *PointCloud[T]) At(index int) T { return pc.items[index] }

// Position returns the position of the item stored at index
func (pc *PointCloud[T]) Position(index int) core.Vec3 { return pc.position(pc.items[index]) }

// Neighbor is one result of a k-nearest query
type Neighbor struct {
	Index           int
	DistanceSquared float64
}

// Distance returns the Euclidean distance to the query point
func (n Neighbor) Distance() float64 { return math.Sqrt(n.DistanceSquared) }

// less orders neighbors by distance, then by index so equidistant results are stable
func (n Neighbor) less(other Neighbor) bool {
	if n.DistanceSquared != other.DistanceSquared {
		return n.DistanceSquared < other.DistanceSquared
	}
	return n.Index < other.Index
}

// DefaultLeafSize is the maximum number of points kept in a kd-tree leaf
const DefaultLeafSize = 10

type kdNode struct {
	start, end  int     // Leaf range in the tree's index permutation
	axis        int     // Split axis for inner nodes
	split       float64 // Points left of the split have coordinate <= split, right >= split
	left, right int     // Child node ids, -1 for leaves
}

func (n kdNode) isLeaf() bool { return n.left < 0 }

// KDTree is a static 3-D kd-tree over a PointSet. It is built once and is safe
// for concurrent queries.
type KDTree[S PointSet] struct {
	points   S
	indices  []int
	nodes    []kdNode
	root     int
	leafSize int
	lo, hi   r3.Vector
}

// NewKDTree builds a tree over points. Inner nodes split at the median of the
// widest bounding-box axis of their points.
func NewKDTree[S PointSet](points S, leafSize int) *KDTree[S] {
	if leafSize <= 0 {
		leafSize = DefaultLeafSize
	}
	n := points.PointCount()
	t := &KDTree[S]{
		points:   points,
		indices:  make([]int, n),
		root:     -1,
		leafSize: leafSize,
	}
	for i := range t.indices {
		t.indices[i] = i
	}
	if n == 0 {
		return t
	}
	t.lo, t.hi = t.bounds(0, n)
	t.root = t.build(0, n)
	return t
}

// Len returns the number of indexed points
func (t *KDTree[S]) Len() int { return len(t.indices) }

// Bounds returns the bounding box of all indexed points
func (t *KDTree[S]) Bounds() core.AABB {
	if t.root < 0 {
		return core.AABB{}
	}
	return core.NewAABBFromPoints(
		core.NewVec3(t.lo.X, t.lo.Y, t.lo.Z),
		core.NewVec3(t.hi.X, t.hi.Y, t.hi.Z),
	)
}

func (t *KDTree[S]) point(index int) r3.Vector {
	return r3.Vector{
		X: t.points.Coordinate(index, 0),
		Y: t.points.Coordinate(index, 1),
		Z: t.points.Coordinate(index, 2),
	}
}

// bounds computes the bounding box of the points in indices[start:end]
func (t *KDTree[S]) bounds(start, end int) (lo, hi r3.Vector) {
	lo = t.point(t.indices[start])
	hi = lo
	for _, idx := range t.indices[start+1 : end] {
		p := t.point(idx)
		lo = r3.Vector{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = r3.Vector{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}
	return lo, hi
}

func (t *KDTree[S]) build(start, end int) int {
	id := len(t.nodes)
	t.nodes = append(t.nodes, kdNode{start: start, end: end, left: -1, right: -1})
	if end-start <= t.leafSize {
		return id
	}

	lo, hi := t.bounds(start, end)
	axis := int(hi.Sub(lo).LargestComponent())

	span := t.indices[start:end]
	sort.Slice(span, func(i, j int) bool {
		ci, cj := t.points.Coordinate(span[i], axis), t.points.Coordinate(span[j], axis)
		if ci != cj {
			return ci < cj
		}
		return span[i] < span[j]
	})

	mid := start + (end-start)/2
	split := t.points.Coordinate(t.indices[mid], axis)
	left := t.build(start, mid)
	right := t.build(mid, end)

	t.nodes[id].axis = axis
	t.nodes[id].split = split
	t.nodes[id].left = left
	t.nodes[id].right = right
	return id
}

// KNearest returns the min(k, Len()) indexed points closest to query, ordered by
// ascending squared distance with ties broken by index. k <= 0 or an empty tree
// returns an empty result.
func (t *KDTree[S]) KNearest(query core.Vec3, k int) []Neighbor {
	if k <= 0 || t.root < 0 {
		return []Neighbor{}
	}
	k = min(k, len(t.indices))

	best := make(neighborHeap, 0, k)
	t.search(t.root, query, k, &best)

	result := make([]Neighbor, len(best))
	for i := len(best) - 1; i >= 0; i-- {
		result[i] = heap.Pop(&best).(Neighbor)
	}
	return result
}

func (t *KDTree[S]) search(id int, query core.Vec3, k int, best *neighborHeap) {
	node := t.nodes[id]
	if node.isLeaf() {
		for _, idx := range t.indices[node.start:node.end] {
			candidate := Neighbor{Index: idx, DistanceSquared: t.points.DistanceSquared(query, idx)}
			if len(*best) < k {
				heap.Push(best, candidate)
			} else if candidate.less((*best)[0]) {
				(*best)[0] = candidate
				heap.Fix(best, 0)
			}
		}
		return
	}

	diff := query.Axis(node.axis) - node.split
	near, far := node.right, node.left
	if diff < 0 {
		near, far = node.left, node.right
	}

	t.search(near, query, k, best)
	// Equal distances must still be visited so index tie-breaking stays exact
	if len(*best) < k || diff*diff <= (*best)[0].DistanceSquared {
		t.search(far, query, k, best)
	}
}

// neighborHeap is a max-heap keyed on (distance, index); the root is the worst kept neighbor
type neighborHeap []Neighbor

func (h neighborHeap) Len() int           { return len(h) }
func (h neighborHeap) Less(i, j int) bool { return h[j].less(h[i]) }
func (h neighborHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *neighborHeap) Push(x any) { *h = append(*h, x.(Neighbor)) }

func (h *neighborHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
