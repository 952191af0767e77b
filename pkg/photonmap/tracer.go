package photonmap

import (
	"math"

	"github.com/df07/go-photon-mapper/pkg/core"
	"github.com/df07/go-photon-mapper/pkg/material"
)

// rayEpsilon keeps bounced photons from re-hitting the surface they left
const rayEpsilon = 0.001

// TraceResult is the result of tracing one photon to termination
type TraceResult struct {
	Record  Record
	Stored  bool    // Record is valid and belongs in the photon map
	Outcome Outcome // Why the trace stopped
	Bounces int     // Reflections performed
}

// TracePhoton follows a photon through the scene until it is absorbed, escapes, or
// exhausts its bounce budget. Each loop iteration either terminates the photon or
// consumes one bounce, so at most RemainingBounces iterations run.
//
// Absorption is decided by Russian roulette against the surface survival
// probability. Only absorbed photons produce a record, unless recordExhausted is
// set, in which case a photon that runs out of bounces is stored at its last hit.
func TracePhoton(scene Scene, photon *Photon, sampler core.Sampler, recordExhausted bool) TraceResult {
	var result TraceResult
	var lastHit *material.HitRecord
	var lastIncoming core.Vec3

	for !photon.Terminal() {
		hit, ok := scene.Hit(photon.Ray, rayEpsilon, math.Inf(1))
		if !ok {
			result.Outcome = OutcomeEscaped
			return result
		}

		incoming := photon.Ray.Direction.Normalize()
		if absorb(photon, hit, sampler) {
			photon.Absorbed = true
			result.Outcome = OutcomeAbsorbed
			result.Stored = true
			result.Record = Record{Position: hit.Point, Incoming: incoming, Energy: photon.Color}
			return result
		}

		scatter, scattered := hit.Material.Scatter(photon.Ray, *hit, sampler)
		if !scattered {
			photon.Absorbed = true
			result.Outcome = OutcomeAbsorbed
			result.Stored = true
			result.Record = Record{Position: hit.Point, Incoming: incoming, Energy: photon.Color}
			return result
		}

		photon.Color = photon.Color.MultiplyVec(scatter.Attenuation)
		photon.Ray = scatter.Scattered
		photon.RemainingBounces--
		result.Bounces++
		lastHit, lastIncoming = hit, incoming
	}

	result.Outcome = OutcomeExhausted
	if recordExhausted && lastHit != nil {
		result.Stored = true
		result.Record = Record{Position: lastHit.Point, Incoming: lastIncoming, Energy: photon.Color}
	}
	return result
}

// absorb plays Russian roulette with the surface's survival probability.
// Surfaces without a material absorb everything.
func absorb(photon *Photon, hit *material.HitRecord, sampler core.Sampler) bool {
	if hit.Material == nil {
		return true
	}
	survival := material.SurvivalProbability(hit.Material.Albedo(*hit))
	return sampler.Get1D() >= survival
}
