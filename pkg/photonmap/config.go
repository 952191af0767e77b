package photonmap

import (
	"fmt"
	"math"
	"runtime"
)

// Config contains photon mapping configuration
type Config struct {
	PhotonCount     int     // Total photons emitted across all lights
	MaxBounces      int     // Bounce budget per photon
	NeighborCount   int     // Photons gathered per radiance estimate
	MinGatherArea   float64 // Floor for the density estimate disk area
	MinLightPower   float64 // Lights at or below this power receive no photons
	RecordExhausted bool    // Store photons that run out of bounces at their last hit
	NumWorkers      int     // Emission workers; <= 0 uses runtime.NumCPU()
	BatchSize       int     // Photons per emission task
	LeafSize        int     // Maximum points per kd-tree leaf
	Seed            int64   // Base seed for the default sampler factory
}

// DefaultConfig returns the configuration used when callers only pick photon count and depth
func DefaultConfig() Config {
	return Config{
		PhotonCount:   1000,
		MaxBounces:    3,
		NeighborCount: 5,
		MinGatherArea: 1e-6,
		MinLightPower: 1e-9,
		NumWorkers:    runtime.NumCPU(),
		BatchSize:     256,
		LeafSize:      10,
		Seed:          42,
	}
}

// Validate reports the first invalid setting
func (c Config) Validate() error {
	switch {
	case c.PhotonCount <= 0:
		return fmt.Errorf("%w: got %d", ErrInvalidPhotonCount, c.PhotonCount)
	case c.MaxBounces < 0:
		return fmt.Errorf("%w: got %d", ErrInvalidBounceDepth, c.MaxBounces)
	case c.NeighborCount < 0:
		return fmt.Errorf("%w: got %d", ErrInvalidNeighborCount, c.NeighborCount)
	case !(c.MinGatherArea > 0) || math.IsInf(c.MinGatherArea, 1):
		return fmt.Errorf("%w: got %g", ErrInvalidGatherArea, c.MinGatherArea)
	case c.BatchSize <= 0:
		return fmt.Errorf("%w: got %d", ErrInvalidBatchSize, c.BatchSize)
	case c.LeafSize <= 0:
		return fmt.Errorf("%w: got %d", ErrInvalidLeafSize, c.LeafSize)
	}
	return nil
}

// workers returns the effective worker count for the given number of tasks
func (c Config) workers(tasks int) int {
	n := c.NumWorkers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return max(1, min(n, tasks))
}
