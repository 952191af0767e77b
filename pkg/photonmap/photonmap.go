package photonmap

import (
	"math"

	"github.com/df07/go-photon-mapper/pkg/core"
)

// PhotonMap is an immutable collection of photon records indexed for
// nearest-neighbor queries. It is safe for concurrent use.
type PhotonMap struct {
	cloud         *PointCloud[Record]
	tree          *KDTree[*PointCloud[Record]]
	neighborCount int
	minGatherArea float64
}

func recordPosition(r Record) core.Vec3 { return r.Position }

// NewPhotonMap indexes records using the gather settings of config.
// The records slice must not be modified afterwards.
func NewPhotonMap(records []Record, config Config) *PhotonMap {
	cloud := NewPointCloud(records, recordPosition)
	return &PhotonMap{
		cloud:         cloud,
		tree:          NewKDTree(cloud, config.LeafSize),
		neighborCount: config.NeighborCount,
		minGatherArea: config.MinGatherArea,
	}
}

// Len returns the number of stored photons
func (pm *PhotonMap) Len() int { return pm.cloud.PointCount() }

// Record returns the i-th stored photon
func (pm *PhotonMap) Record(i int) Record { return pm.cloud.At(i) }

// Position returns where the i-th photon was stored
func (pm *PhotonMap) Position(i int) core.Vec3 { return pm.cloud.At(i).Position }

// Direction returns the travel direction of the i-th photon when it was stored
func (pm *PhotonMap) Direction(i int) core.Vec3 { return pm.cloud.At(i).Incoming }

// Energy returns the color carried by the i-th photon
func (pm *PhotonMap) Energy(i int) core.Vec3 { return pm.cloud.At(i).Energy }

// Bounds returns the bounding box of all stored photons
func (pm *PhotonMap) Bounds() core.AABB { return pm.tree.Bounds() }

// KNearest returns the k stored photons closest to point, nearest first
func (pm *PhotonMap) KNearest(point core.Vec3, k int) []Neighbor {
	return pm.tree.KNearest(point, k)
}

// Gather estimates the radiant flux density at a surface point from its
// NeighborCount nearest photons. Photons arriving from behind the surface
// (normal · -incoming < 0) are skipped. The estimate divides the summed energy by
// the area of the disk enclosing all neighbors, floored at the minimum gather area.
func (pm *PhotonMap) Gather(point, normal core.Vec3) core.Vec3 {
	return pm.GatherK(point, normal, pm.neighborCount)
}

// GatherK is Gather with an explicit neighbor count
func (pm *PhotonMap) GatherK(point, normal core.Vec3, k int) core.Vec3 {
	neighbors := pm.KNearest(point, k)
	if len(neighbors) == 0 {
		return core.Vec3{}
	}

	var flux core.Vec3
	contributing := 0
	for _, n := range neighbors {
		record := pm.cloud.At(n.Index)
		if normal.Dot(record.Incoming.Negate()) < 0 {
			continue
		}
		flux = flux.Add(record.Energy)
		contributing++
	}
	if contributing == 0 {
		return core.Vec3{}
	}

	radiusSquared := neighbors[len(neighbors)-1].DistanceSquared
	area := math.Max(math.Pi*radiusSquared, pm.minGatherArea)
	return flux.Multiply(1 / area)
}
