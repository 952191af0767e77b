package photonmap

import (
	"time"

	"github.com/df07/go-photon-mapper/pkg/lights"
)

// MappingStats contains statistics about a photon mapping pass
type MappingStats struct {
	Budget         lights.PhotonBudget // Photons allocated per light
	Emitted        int                 // Photons traced
	Stored         int                 // Records written to the map
	Absorbed       int                 // Photons absorbed at a surface
	Escaped        int                 // Photons that left the scene
	Exhausted      int                 // Photons that ran out of bounces
	TotalBounces   int                 // Reflections across all photons
	MaxBouncesUsed int                 // Most reflections performed by a single photon
	Workers        int                 // Emission workers used
	Batches        int                 // Emission tasks processed
	Elapsed        time.Duration       // Wall time of the mapping pass
}

// AddTrace folds the outcome of one photon trace into the statistics
func (s *MappingStats) AddTrace(result TraceResult) {
	s.Emitted++
	s.TotalBounces += result.Bounces
	s.MaxBouncesUsed = max(s.MaxBouncesUsed, result.Bounces)

	switch result.Outcome {
	case OutcomeAbsorbed:
		s.Absorbed++
	case OutcomeEscaped:
		s.Escaped++
	case OutcomeExhausted:
		s.Exhausted++
	}
	if result.Stored {
		s.Stored++
	}
}

// Merge accumulates counters from another batch
func (s *MappingStats) Merge(other MappingStats) {
	s.Emitted += other.Emitted
	s.Stored += other.Stored
	s.Absorbed += other.Absorbed
	s.Escaped += other.Escaped
	s.Exhausted += other.Exhausted
	s.TotalBounces += other.TotalBounces
	s.MaxBouncesUsed = max(s.MaxBouncesUsed, other.MaxBouncesUsed)
	s.Batches += other.Batches
}

// AverageBounces returns the mean number of reflections per emitted photon
func (s MappingStats) AverageBounces() float64 {
	if s.Emitted == 0 {
		return 0
	}
	return float64(s.TotalBounces) / float64(s.Emitted)
}
