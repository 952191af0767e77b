package photonmap

import (
	"github.com/df07/go-photon-mapper/pkg/core"
	"github.com/df07/go-photon-mapper/pkg/lights"
	"github.com/df07/go-photon-mapper/pkg/material"
)

// MockSampler replays fixed Get1D values and returns constant 2D/3D samples
type MockSampler struct {
	values []float64
	next   int
}

func (m *MockSampler) Get1D() float64 {
	if len(m.values) == 0 {
		return 0.5
	}
	v := m.values[m.next%len(m.values)]
	m.next++
	return v
}

func (m *MockSampler) Get2D() core.Vec2 { return core.NewVec2(0.5, 0.5) }
func (m *MockSampler) Get3D() core.Vec3 { return core.Vec3{} }

// MockMaterial reflects every photon into a fixed direction
type MockMaterial struct {
	albedo    core.Vec3
	direction core.Vec3
	noScatter bool
}

func (m *MockMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	if m.noScatter {
		return material.ScatterResult{}, false
	}
	return material.ScatterResult{
		Scattered:   core.NewRay(hit.Point, m.direction),
		Attenuation: m.albedo,
	}, true
}

func (m *MockMaterial) Albedo(hit material.HitRecord) core.Vec3 { return m.albedo }

// MockScene reports every ray hitting the same surface point, or nothing when miss is set
type MockScene struct {
	lights []lights.Light
	point  core.Vec3
	normal core.Vec3
	mat    material.Material
	miss   bool
	hits   int
}

func (m *MockScene) GetLights() []lights.Light { return m.lights }

func (m *MockScene) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	m.hits++
	if m.miss {
		return nil, false
	}
	return &material.HitRecord{Point: m.point, Normal: m.normal, T: 1, FrontFace: true, Material: m.mat}, true
}

// MockLight emits every photon from the origin along +Z
type MockLight struct {
	power float64
	color core.Vec3
}

func (m *MockLight) Type() lights.LightType { return lights.LightTypePoint }
func (m *MockLight) Power() float64         { return m.power }

func (m *MockLight) SampleEmission(sampler core.Sampler) lights.EmissionSample {
	return lights.EmissionSample{Point: core.Vec3{}, Direction: core.NewVec3(0, 0, 1), Color: m.color}
}
