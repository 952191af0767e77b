package lights

import (
	"fmt"
	"math"
	"strings"
)

// PhotonBudget records how many photons each light emits in a mapping pass.
// Counts match the order of the lights slice it was allocated for.
type PhotonBudget struct {
	Counts []int
	Powers []float64 // Effective power per light (0 for negligible lights)
	Total  int
}

// AllocatePhotons splits total photons across lights in proportion to their power.
// Lights with power at or below minPower are negligible and receive nothing.
// Each light gets the floor of its proportional share; the rounding remainder goes
// to the brightest light (lowest index on ties), so the counts always sum to total
// when any light is bright enough. With no usable lights every count is zero.
func AllocatePhotons(lights []Light, total int, minPower float64) PhotonBudget {
	budget := PhotonBudget{
		Counts: make([]int, len(lights)),
		Powers: make([]float64, len(lights)),
	}
	if total <= 0 {
		return budget
	}

	totalPower := 0.0
	brightest := -1
	for i, light := range lights {
		power := light.Power()
		if math.IsNaN(power) || math.IsInf(power, 0) || power <= minPower {
			continue
		}
		budget.Powers[i] = power
		totalPower += power
		if brightest < 0 || power > budget.Powers[brightest] {
			brightest = i
		}
	}

	if brightest < 0 || totalPower <= 0 {
		return budget
	}

	assigned := 0
	for i, power := range budget.Powers {
		if power == 0 {
			continue
		}
		budget.Counts[i] = int(math.Floor(float64(total) * power / totalPower))
		assigned += budget.Counts[i]
	}
	budget.Counts[brightest] += total - assigned
	budget.Total = total

	return budget
}

// String returns a string representation for debugging
func (b PhotonBudget) String() string {
	if len(b.Counts) == 0 {
		return "PhotonBudget{no lights}"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "PhotonBudget{%d photons over %d lights:\n", b.Total, len(b.Counts))
	for i, count := range b.Counts {
		share := 0.0
		if b.Total > 0 {
			share = float64(count) / float64(b.Total) * 100
		}
		fmt.Fprintf(&sb, "  [%d] power %.3f: %d (%.1f%%)\n", i, b.Powers[i], count, share)
	}
	sb.WriteString("}")
	return sb.String()
}
