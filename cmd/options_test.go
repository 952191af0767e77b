package cmd

import (
	"testing"
	"time"

	"github.com/df07/go-photon-mapper/pkg/core"
)

func TestParseVec3(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    core.Vec3
		expectError bool
	}{
		{"integers", "1,2,3", core.NewVec3(1, 2, 3), false},
		{"spaces and decimals", " 277.5, 0 ,-1e-3", core.NewVec3(277.5, 0, -0.001), false},
		{"too few", "1,2", core.Vec3{}, true},
		{"too many", "1,2,3,4", core.Vec3{}, true},
		{"not a number", "1,x,3", core.Vec3{}, true},
		{"empty", "", core.Vec3{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVec3(tt.input)
			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for %q, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRate(t *testing.T) {
	if got := rate(100, 2*time.Second); got != 50 {
		t.Errorf("Expected 50/s, got %f", got)
	}
	if got := rate(100, 0); got != 0 {
		t.Errorf("Expected 0 for unmeasured duration, got %f", got)
	}
}
