package sim

import (
	"math"
	"math/rand"

	"github.com/rfdavies/gciscope/pkg/geo"
)

// DestinationPolicy chooses the next destination for an aircraft that has
// reached its current one. It is separate from the motion engine so tests
// can inject deterministic destinations.
type DestinationPolicy interface {
	NextDestination() geo.Point
}

// AnnulusPolicy samples destinations inside an annulus around the scope
// center: radial distance uniform in [0.2*R, R], angle uniform in [0, 2π),
// with R the scope radius in virtual units. Since R is below half the
// virtual extent every sample is inside the virtual bounds by construction.
//
// The random source is injected, so a seeded policy is fully deterministic.
type AnnulusPolicy struct {
	rng    *rand.Rand
	center geo.Point
	radius float64
}

// NewAnnulusPolicy builds a policy for a virtual space of side virtualMax
// and a scope radius of virtualMax*radiusFactor.
func NewAnnulusPolicy(rng *rand.Rand, virtualMax, radiusFactor float64) *AnnulusPolicy {
	return &AnnulusPolicy{
		rng:    rng,
		center: geo.VirtualCenter(virtualMax),
		radius: geo.VirtualRadius(virtualMax, radiusFactor),
	}
}

// NextDestination returns a fresh destination inside the annulus.
func (p *AnnulusPolicy) NextDestination() geo.Point {
	r := p.radius * (0.2 + 0.8*p.rng.Float64())
	angle := p.rng.Float64() * 2 * math.Pi

	return geo.Point{
		X: p.center.X + r*math.Cos(angle),
		Y: p.center.Y + r*math.Sin(angle),
	}
}

// FixedPolicy always returns the same destination. Test double.
type FixedPolicy struct {
	Dest geo.Point
}

// NextDestination returns the fixed destination.
func (p FixedPolicy) NextDestination() geo.Point {
	return p.Dest
}
