package core

import "testing"

func TestAABB_FromPoints(t *testing.T) {
	tests := []struct {
		name     string
		points   []Vec3
		expected AABB
	}{
		{"no points", nil, AABB{}},
		{"single point", []Vec3{NewVec3(1, 2, 3)}, NewAABB(NewVec3(1, 2, 3), NewVec3(1, 2, 3))},
		{"scattered", []Vec3{NewVec3(-1, 2, 0), NewVec3(3, -4, 5), NewVec3(0, 0, -6)},
			NewAABB(NewVec3(-1, -4, -6), NewVec3(3, 2, 5))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewAABBFromPoints(tt.points...); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAABB_Union(t *testing.T) {
	a := NewAABB(NewVec3(0, 0, 0), NewVec3(1, 1, 1))
	b := NewAABB(NewVec3(-1, 0.5, 2), NewVec3(0.5, 3, 4))

	got := a.Union(b)
	expected := NewAABB(NewVec3(-1, 0, 0), NewVec3(1, 3, 4))
	if got != expected {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestAABB_LongestAxis(t *testing.T) {
	tests := []struct {
		name     string
		max      Vec3
		expected int
	}{
		{"x", NewVec3(5, 1, 2), 0},
		{"y", NewVec3(1, 5, 2), 1},
		{"z", NewVec3(1, 2, 5), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := NewAABB(Vec3{}, tt.max)
			if axis := box.LongestAxis(); axis != tt.expected {
				t.Errorf("Expected axis %d, got %d", tt.expected, axis)
			}
		})
	}
}

func TestAABB_Hit(t *testing.T) {
	box := NewAABBFromPoints(NewVec3(0, 0, 0), NewVec3(1, 5, 2))

	tests := []struct {
		name     string
		ray      Ray
		tMax     float64
		expected bool
	}{
		{"through box", NewRay(NewVec3(0.5, -1, 1), NewVec3(0, 1, 0)), 100, true},
		{"beside box", NewRay(NewVec3(5, -1, 1), NewVec3(0, 1, 0)), 100, false},
		{"diagonal", NewRay(NewVec3(-1, -1, -1), NewVec3(1, 1, 1)), 100, true},
		{"stops short", NewRay(NewVec3(0.5, -1, 1), NewVec3(0, 1, 0)), 0.5, false},
		{"pointing away", NewRay(NewVec3(0.5, -1, 1), NewVec3(0, -1, 0)), 100, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := box.Hit(tt.ray, 0, tt.tMax); got != tt.expected {
				t.Errorf("Expected hit=%v, got %v", tt.expected, got)
			}
		})
	}
}
