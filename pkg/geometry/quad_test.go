package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-photon-mapper/pkg/core"
)

func TestQuad_Hit(t *testing.T) {
	// Unit floor quad in the XZ plane, normal +Y
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0), nil)

	tests := []struct {
		name      string
		ray       core.Ray
		expectHit bool
		expectedT float64
	}{
		{"Straight down through center", core.NewRay(core.NewVec3(0.5, 1, 0.5), core.NewVec3(0, -1, 0)), true, 1},
		{"Outside bounds", core.NewRay(core.NewVec3(1.5, 1, 0.5), core.NewVec3(0, -1, 0)), false, 0},
		{"Parallel", core.NewRay(core.NewVec3(0.5, 1, 0.5), core.NewVec3(1, 0, 0)), false, 0},
		{"From below", core.NewRay(core.NewVec3(0.25, -2, 0.75), core.NewVec3(0, 1, 0)), true, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := quad.Hit(tt.ray, 0.001, 1000)
			if ok != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, ok)
			}
			if ok && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if ok && hit.Normal.Dot(tt.ray.Direction) >= 0 {
				t.Errorf("Normal %v should face against the ray", hit.Normal)
			}
		})
	}
}

func TestQuad_AreaAndPointAt(t *testing.T) {
	quad := NewQuad(core.NewVec3(1, 2, 3), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 3), nil)
	if math.Abs(quad.Area()-6) > 1e-12 {
		t.Errorf("Expected area 6, got %f", quad.Area())
	}
	if p := quad.PointAt(0.5, 0.5); p != core.NewVec3(2, 2, 4.5) {
		t.Errorf("Expected center (2,2,4.5), got %v", p)
	}
}
