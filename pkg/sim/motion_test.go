package sim

import (
	"math"
	"testing"

	"github.com/rfdavies/gciscope/pkg/geo"
)

func testScale() geo.Scale {
	return geo.NewScale(geo.VirtualMax, geo.VirtualMax, geo.ScopeRadiusFactor)
}

// TestAdvanceClosesDistanceBySpeed tests that while the remaining distance
// exceeds the speed, each tick closes exactly one speed unit of distance.
func TestAdvanceClosesDistanceBySpeed(t *testing.T) {
	m := Motion{Epsilon: 1.0, TrailLength: 5}
	a := &Aircraft{
		Code:  "SPITF",
		Pos:   geo.Point{X: 100, Y: 100},
		Dest:  geo.Point{X: 400, Y: 300},
		Speed: 0.4,
	}

	prev := a.Pos.Distance(a.Dest)
	for i := 0; i < 200; i++ {
		arrived := m.Advance(a, testScale())
		if arrived {
			t.Fatalf("Unexpected arrival at tick %d, distance %f", i, prev)
		}

		dist := a.Pos.Distance(a.Dest)
		if dist > prev {
			t.Fatalf("Distance increased at tick %d: %f -> %f", i, prev, dist)
		}
		if math.Abs((prev-dist)-a.Speed) > 1e-9 {
			t.Fatalf("Tick %d closed %f units, want exactly %f", i, prev-dist, a.Speed)
		}
		prev = dist
	}
}

// TestAdvanceSnapsOnArrival tests the snap-to-destination branch.
func TestAdvanceSnapsOnArrival(t *testing.T) {
	m := Motion{Epsilon: 1.0, TrailLength: 5}
	dest := geo.Point{X: 300, Y: 300}
	a := &Aircraft{
		Code:  "BF109",
		Pos:   geo.Point{X: 298, Y: 300},
		Dest:  dest,
		Speed: 5.0,
	}

	arrived := m.Advance(a, testScale())
	if !arrived {
		t.Fatal("Expected arrival signal when distance is within speed")
	}
	if a.Pos != dest {
		t.Errorf("Position after arrival = %v, want exact destination %v", a.Pos, dest)
	}
	if len(a.Trail) != 0 {
		t.Errorf("Trail not cleared on arrival, has %d points", len(a.Trail))
	}
}

// TestAdvanceSignalsArrivalOnce tests that an aircraft idling at its
// destination does not re-signal arrival every tick.
func TestAdvanceSignalsArrivalOnce(t *testing.T) {
	m := Motion{Epsilon: 1.0, TrailLength: 5}
	a := &Aircraft{
		Code:  "MOSSI",
		Pos:   geo.Point{X: 200, Y: 150},
		Dest:  geo.Point{X: 210, Y: 150},
		Speed: 3.0,
	}

	arrivals := 0
	for i := 0; i < 50; i++ {
		if m.Advance(a, testScale()) {
			arrivals++
		}
	}

	if arrivals != 1 {
		t.Errorf("Arrival signalled %d times over one approach, want exactly 1", arrivals)
	}
	if a.Pos != a.Dest {
		t.Errorf("Aircraft not parked at destination: %v vs %v", a.Pos, a.Dest)
	}
}

// TestAdvanceIdleIsNoOp tests that an already-arrived aircraft is left
// completely untouched.
func TestAdvanceIdleIsNoOp(t *testing.T) {
	m := Motion{Epsilon: 1.0, TrailLength: 5}
	pos := geo.Point{X: 123.4, Y: 321.0}
	a := &Aircraft{
		Code:  "FW190",
		Pos:   pos,
		Dest:  geo.Point{X: 123.9, Y: 321.0}, // within epsilon
		Speed: 2.0,
	}

	if m.Advance(a, testScale()) {
		t.Error("Arrival signalled for aircraft already at destination")
	}
	if a.Pos != pos {
		t.Errorf("Idle aircraft moved from %v to %v", pos, a.Pos)
	}
}

// TestTrailCapAndContents tests that the trail stores display-space points
// capped at the configured length, oldest dropped first.
func TestTrailCapAndContents(t *testing.T) {
	m := Motion{Epsilon: 1.0, TrailLength: 5}
	scale := geo.NewScale(300, geo.VirtualMax, geo.ScopeRadiusFactor) // half scale
	a := &Aircraft{
		Code:  "P51MUS",
		Pos:   geo.Point{X: 100, Y: 200},
		Dest:  geo.Point{X: 500, Y: 200},
		Speed: 1.0,
	}

	for i := 0; i < 12; i++ {
		m.Advance(a, scale)
	}

	if len(a.Trail) != 5 {
		t.Fatalf("Trail length = %d, want 5", len(a.Trail))
	}

	// Most recent trail point is the display-space image of the current
	// position.
	want := scale.ToDisplay(a.Pos)
	last := a.Trail[len(a.Trail)-1]
	if math.Abs(last.X-want.X) > 1e-9 || math.Abs(last.Y-want.Y) > 1e-9 {
		t.Errorf("Last trail point = %v, want display position %v", last, want)
	}

	// Oldest retained point corresponds to tick 8 (ticks 1-7 dropped):
	// virtual X = 100 + 8, displayed at half scale.
	first := a.Trail[0]
	if math.Abs(first.X-54.0) > 1e-9 {
		t.Errorf("Oldest trail point X = %f, want 54.0", first.X)
	}
}
