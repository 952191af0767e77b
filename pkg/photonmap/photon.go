package photonmap

import (
	"github.com/df07/go-photon-mapper/pkg/core"
	"github.com/df07/go-photon-mapper/pkg/lights"
	"github.com/df07/go-photon-mapper/pkg/material"
)

// Scene is what the photon tracer needs from the outside world: the photon
// sources and a nearest-hit intersection oracle.
type Scene interface {
	GetLights() []lights.Light
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}

// Record is a stored photon. Records are immutable once handed to a PhotonMap.
type Record struct {
	Position core.Vec3 // World-space hit point
	Incoming core.Vec3 // Unit direction the photon was travelling when it arrived
	Energy   core.Vec3 // Photon color at the time it was stored
}

// Photon is the transient state of one photon while it is being traced
type Photon struct {
	Ray              core.Ray
	RemainingBounces int
	Absorbed         bool
	Color            core.Vec3
}

// NewPhoton starts a photon at an emission sample with the given bounce budget
func NewPhoton(emission lights.EmissionSample, maxBounces int) *Photon {
	return &Photon{
		Ray:              emission.Ray(),
		RemainingBounces: max(0, maxBounces),
		Color:            emission.Color,
	}
}

// Terminal reports whether the photon must not be traced any further
func (p *Photon) Terminal() bool {
	return p.Absorbed || p.RemainingBounces <= 0
}

// Outcome describes how a photon trace ended
type Outcome int

const (
	OutcomeAbsorbed  Outcome = iota // Absorbed at a surface; produces a record
	OutcomeEscaped                  // Left the scene without hitting anything
	OutcomeExhausted                // Ran out of bounces while still being reflected
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAbsorbed:
		return "absorbed"
	case OutcomeEscaped:
		return "escaped"
	case OutcomeExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}
