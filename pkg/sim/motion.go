package sim

import "github.com/rfdavies/gciscope/pkg/geo"

// Motion advances aircraft toward their destinations with pure linear
// interpolation: no acceleration, no turning radius, no overshoot.
type Motion struct {
	// Epsilon is the remaining distance below which the aircraft is
	// considered to have arrived
	Epsilon float64

	// TrailLength caps the display-space trail kept per aircraft
	TrailLength int
}

// Advance moves a one tick toward its destination and reports whether it
// arrived on this tick.
//
// While the remaining distance exceeds the speed, the aircraft moves by
// exactly its speed along the unit vector toward the destination and the
// new display-space position (under scale) is appended to the trail. When
// the remaining distance falls to the speed or below but is still outside
// Epsilon, the position snaps to the destination, the trail is cleared and
// arrival is signalled. An aircraft already within Epsilon of its
// destination is left alone, so the arrival signal fires exactly once per
// approach rather than every tick while idle.
func (m Motion) Advance(a *Aircraft, scale geo.Scale) bool {
	dist := a.Pos.Distance(a.Dest)

	switch {
	case dist > a.Speed:
		dir := a.Dest.Sub(a.Pos).Mul(a.Speed / dist)
		a.Pos = a.Pos.Add(dir)
		a.pushTrail(scale.ToDisplay(a.Pos), m.TrailLength)
		return false

	case dist > m.Epsilon:
		a.Pos = a.Dest
		a.clearTrail()
		return true

	default:
		// Idle at destination, waiting for new orders.
		return false
	}
}
