package photonmap

import (
	"errors"
	"math"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{"defaults", func(c *Config) {}, nil},
		{"zero bounces allowed", func(c *Config) { c.MaxBounces = 0 }, nil},
		{"zero neighbors allowed", func(c *Config) { c.NeighborCount = 0 }, nil},
		{"zero photons", func(c *Config) { c.PhotonCount = 0 }, ErrInvalidPhotonCount},
		{"negative bounces", func(c *Config) { c.MaxBounces = -1 }, ErrInvalidBounceDepth},
		{"negative neighbors", func(c *Config) { c.NeighborCount = -3 }, ErrInvalidNeighborCount},
		{"zero gather area", func(c *Config) { c.MinGatherArea = 0 }, ErrInvalidGatherArea},
		{"NaN gather area", func(c *Config) { c.MinGatherArea = math.NaN() }, ErrInvalidGatherArea},
		{"zero batch size", func(c *Config) { c.BatchSize = 0 }, ErrInvalidBatchSize},
		{"zero leaf size", func(c *Config) { c.LeafSize = 0 }, ErrInvalidLeafSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(&config)
			err := config.Validate()

			if tt.wantErr == nil && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestConfig_Workers(t *testing.T) {
	config := DefaultConfig()
	config.NumWorkers = 8

	if got := config.workers(3); got != 3 {
		t.Errorf("Expected workers capped at task count 3, got %d", got)
	}
	config.NumWorkers = 0
	if got := config.workers(1000); got < 1 {
		t.Errorf("Expected at least one worker, got %d", got)
	}
}
