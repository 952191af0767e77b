package photonmap

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-photon-mapper/pkg/core"
	"github.com/df07/go-photon-mapper/pkg/geometry"
	"github.com/df07/go-photon-mapper/pkg/lights"
	"github.com/df07/go-photon-mapper/pkg/material"
	"github.com/df07/go-photon-mapper/pkg/scene"
)

func testConfig(photons, bounces int) Config {
	config := DefaultConfig()
	config.PhotonCount = photons
	config.MaxBounces = bounces
	config.BatchSize = 64
	config.NumWorkers = 4
	return config
}

func TestMapScene_WhiteEnclosureExhaustsEveryPhoton(t *testing.T) {
	mapper := NewMapper(testConfig(500, 3), nil, nil)

	records, stats, err := mapper.MapScene(scene.NewEnclosedScene(core.NewVec3(1, 1, 1)))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(records) != 0 {
		t.Errorf("Expected no records from photons that are never absorbed, got %d", len(records))
	}
	if stats.Emitted != 500 || stats.Exhausted != 500 {
		t.Errorf("Expected 500 emitted and exhausted photons, got %d emitted, %d exhausted", stats.Emitted, stats.Exhausted)
	}
	if stats.MaxBouncesUsed != 3 || stats.AverageBounces() != 3 {
		t.Errorf("Expected every photon to bounce 3 times, got max %d avg %f", stats.MaxBouncesUsed, stats.AverageBounces())
	}
	if stats.Escaped != 0 || stats.Absorbed != 0 {
		t.Errorf("Expected no escaped or absorbed photons, got %d escaped, %d absorbed", stats.Escaped, stats.Absorbed)
	}
}

func TestMapScene_RecordExhausted(t *testing.T) {
	config := testConfig(200, 2)
	config.RecordExhausted = true

	records, _, err := NewMapper(config, nil, nil).MapScene(scene.NewEnclosedScene(core.NewVec3(1, 1, 1)))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(records) != 200 {
		t.Fatalf("Expected every exhausted photon to be recorded, got %d", len(records))
	}
	for i, r := range records {
		if math.Abs(r.Position.Length()-5) > 1e-6 {
			t.Fatalf("Record %d not on the enclosing sphere: %v", i, r.Position)
		}
	}
}

func TestMapScene_BlackEnclosureAbsorbsAtFirstHit(t *testing.T) {
	records, stats, err := NewMapper(testConfig(300, 3), nil, nil).MapScene(scene.NewEnclosedScene(core.Vec3{}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(records) != 300 || stats.Absorbed != 300 || stats.TotalBounces != 0 {
		t.Fatalf("Expected 300 photons absorbed without bouncing, got %d records, %+v", len(records), stats)
	}
	for i, r := range records {
		if math.Abs(r.Position.Length()-5) > 1e-6 {
			t.Fatalf("Record %d not on the enclosing sphere: %v", i, r.Position)
		}
		// Photons leave the central light radially
		if r.Incoming.Dot(r.Position.Normalize()) < 1-1e-9 {
			t.Fatalf("Record %d incoming direction %v is not radial", i, r.Incoming)
		}
		if r.Energy != core.NewVec3(1, 1, 1) {
			t.Fatalf("Record %d expected white energy, got %v", i, r.Energy)
		}
	}
}

func TestMapScene_DeterministicAcrossWorkerCounts(t *testing.T) {
	s := scene.NewCornellScene()

	single := testConfig(2000, 3)
	single.NumWorkers = 1
	many := testConfig(2000, 3)
	many.NumWorkers = 8

	want, _, err := NewMapper(single, nil, nil).MapScene(s)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	got, _, err := NewMapper(many, nil, nil).MapScene(s)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("Expected %d records, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Record %d differs: %+v vs %+v", i, got[i], want[i])
		}
	}
}

func TestMapScene_ZeroIntensityLight(t *testing.T) {
	floor := scene.NewGroundQuad(core.Vec3{}, 10, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
	s := scene.NewScene(
		[]geometry.Shape{floor},
		[]lights.Light{lights.NewPointLight(core.NewVec3(0, 2, 0), core.NewVec3(1, 1, 1), 0)},
	)

	pm, stats, err := NewMapper(testConfig(1000, 3), nil, nil).BuildPhotonMap(s)
	if err != nil {
		t.Fatalf("Expected no error for a dark scene, got %v", err)
	}
	if pm.Len() != 0 || stats.Emitted != 0 {
		t.Errorf("Expected an empty map, got %d records from %d photons", pm.Len(), stats.Emitted)
	}
	if got := pm.Gather(core.Vec3{}, core.NewVec3(0, 1, 0)); got != (core.Vec3{}) {
		t.Errorf("Expected zero flux, got %v", got)
	}
}

func TestMapScene_SplitsBudgetByPower(t *testing.T) {
	records, stats, err := NewMapper(testConfig(999, 3), nil, nil).MapScene(scene.NewDefaultScene())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	counts := stats.Budget.Counts
	if len(counts) != 2 || counts[0]+counts[1] != 999 {
		t.Fatalf("Expected 999 photons over 2 lights, got %v", counts)
	}
	if counts[0] <= counts[1] {
		t.Errorf("Expected the brighter light to get more photons, got %v", counts)
	}
	if stats.Emitted != 999 {
		t.Errorf("Expected 999 emitted photons, got %d", stats.Emitted)
	}
	if len(records) != stats.Stored || stats.Stored > stats.Emitted {
		t.Errorf("Expected %d stored records, got %d", stats.Stored, len(records))
	}
	if stats.Batches != 11+6 {
		t.Errorf("Expected 17 batches of at most 64 photons, got %d", stats.Batches)
	}
}

func TestMapScene_InvalidConfig(t *testing.T) {
	config := testConfig(0, 3)
	_, _, err := NewMapper(config, nil, nil).MapScene(scene.NewCornellScene())
	if !errors.Is(err, ErrInvalidPhotonCount) {
		t.Errorf("Expected ErrInvalidPhotonCount, got %v", err)
	}

	if _, err := New(scene.NewCornellScene(), 100, -1); !errors.Is(err, ErrInvalidBounceDepth) {
		t.Errorf("Expected ErrInvalidBounceDepth, got %v", err)
	}
}

func TestNew_CornellFloorReceivesLight(t *testing.T) {
	pm, err := New(scene.NewCornellScene(), 1000, 3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if pm.Len() == 0 || pm.Len() > 1000 {
		t.Fatalf("Expected between 1 and 1000 stored photons, got %d", pm.Len())
	}

	center := scene.CornellBoxSize / 2
	flux := pm.Gather(core.NewVec3(center, 0, center), core.NewVec3(0, 1, 0))
	if flux.X <= 0 || flux.Y <= 0 || flux.Z <= 0 {
		t.Errorf("Expected positive flux on the floor below the light, got %v", flux)
	}
}
