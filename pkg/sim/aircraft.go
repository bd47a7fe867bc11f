// Package sim implements the intercept simulation: a fixed fleet of
// aircraft flying constant-speed straight lines through the virtual
// tactical space, a motion engine that advances them each tick, a
// destination policy that retasks them on arrival, and the fixed-interval
// clock that drives the whole thing.
package sim

import (
	"fmt"

	"github.com/rfdavies/gciscope/pkg/geo"
)

// Aircraft is the simulation state for one tracked contact.
//
// Pos and Dest are virtual coordinates; Dest is always inside the virtual
// bounds (enforced wherever it is assigned). Trail is the one exception to
// the virtual-only rule: it stores the display-space positions of recent
// ticks for the phosphor afterglow effect, and is therefore discarded
// whenever the display extent changes.
type Aircraft struct {
	// Code is the unique identifier chosen at creation, immutable
	Code string

	// Color is the hex display color, immutable
	Color string

	// Pos is the current position in virtual coordinates
	Pos geo.Point

	// Dest is the destination in virtual coordinates
	Dest geo.Point

	// Speed is the travel speed in virtual units per tick, constant
	// after creation
	Speed float64

	// Trail holds recent display-space positions, most-recent-last
	Trail []geo.Point
}

// Label returns the coordinate readout drawn under the aircraft symbol.
func (a *Aircraft) Label() string {
	return fmt.Sprintf("X=%d, Y=%d", int(a.Pos.X), int(a.Pos.Y))
}

// pushTrail appends a display-space point, dropping the oldest entry once
// the trail is full.
func (a *Aircraft) pushTrail(p geo.Point, max int) {
	a.Trail = append(a.Trail, p)
	if len(a.Trail) > max {
		a.Trail = a.Trail[len(a.Trail)-max:]
	}
}

// clearTrail discards the display-space history.
func (a *Aircraft) clearTrail() {
	a.Trail = a.Trail[:0]
}
