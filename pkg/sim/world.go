package sim

import (
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/rfdavies/gciscope/pkg/config"
	"github.com/rfdavies/gciscope/pkg/geo"
)

// World owns the fleet and applies the motion engine and destination
// policy to it each tick.
//
// Mutation happens on two paths: the clock tick and operator retargeting.
// In the tview frontend these run on different goroutines, so all state is
// guarded by one mutex to keep the single-writer discipline intact.
type World struct {
	mu sync.Mutex

	fleet  []*Aircraft
	motion Motion
	policy DestinationPolicy
	logger Logger

	virtualMax float64
}

// NewWorld creates the fleet from the config manifest and scatters it
// around the scope center: starting radius uniform within 70% of the scope
// radius, angle uniform, speed randomized once per aircraft. Initial
// destinations come from the policy. The fleet is fixed for the lifetime
// of the world; aircraft are never added or destroyed.
func NewWorld(cfg *config.Config, rng *rand.Rand, policy DestinationPolicy, logger Logger) *World {
	if logger == nil {
		logger = NopLogger
	}

	center := geo.VirtualCenter(cfg.Scope.VirtualMax)
	radius := geo.VirtualRadius(cfg.Scope.VirtualMax, cfg.Scope.RadiusFactor)

	w := &World{
		motion: Motion{
			Epsilon:     cfg.Motion.ArrivalEpsilon,
			TrailLength: cfg.Motion.TrailLength,
		},
		policy:     policy,
		logger:     logger,
		virtualMax: cfg.Scope.VirtualMax,
	}

	for _, entry := range cfg.Fleet {
		r := rng.Float64() * radius * 0.7
		angle := rng.Float64() * 2 * math.Pi
		pos := geo.Point{
			X: center.X + r*math.Cos(angle),
			Y: center.Y + r*math.Sin(angle),
		}

		a := &Aircraft{
			Code:  strings.ToUpper(entry.Code),
			Color: entry.Color,
			Pos:   pos,
			Dest:  policy.NextDestination(),
			Speed: cfg.Motion.BaseSpeed + rng.Float64()*cfg.Motion.SpeedJitter,
		}
		w.fleet = append(w.fleet, a)
	}

	return w
}

// Tick advances every aircraft one step. Arrivals report in over the radio
// and get a fresh destination from the policy.
func (w *World) Tick(scale geo.Scale) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, a := range w.fleet {
		if w.motion.Advance(a, scale) {
			w.logger.Log(SourcePilot, "ACFT %s: I'm at the target area. Awaiting new orders.", a.Code)
			a.Dest = w.policy.NextDestination()
		}
	}
}

// VirtualMax returns the upper bound of the virtual coordinate space.
func (w *World) VirtualMax() float64 {
	return w.virtualMax
}

// Codes returns the fleet roster in manifest order.
func (w *World) Codes() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	codes := make([]string, len(w.fleet))
	for i, a := range w.fleet {
		codes[i] = a.Code
	}
	return codes
}

// Resolve matches an aircraft code case-insensitively and returns the
// canonical code.
func (w *World) Resolve(code string) (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	upper := strings.ToUpper(code)
	for _, a := range w.fleet {
		if a.Code == upper {
			return a.Code, true
		}
	}
	return "", false
}

// SetDestination overwrites an aircraft's destination, the operator
// override path. The caller is responsible for bounds validation; unknown
// codes are ignored. The stale trail is left in place and decays over the
// next few ticks as new positions replace it.
func (w *World) SetDestination(code string, dest geo.Point) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, a := range w.fleet {
		if a.Code == code {
			a.Dest = dest
			return
		}
	}
}

// ClearTrails discards every aircraft's display-space trail. Called on
// resize, when the old display coordinates stop meaning anything.
func (w *World) ClearTrails() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, a := range w.fleet {
		a.clearTrail()
	}
}

// Track is the render-ready view of one aircraft: everything in display
// coordinates, plus the label texts. Render sinks consume a slice of these
// once per tick and own all styling decisions.
type Track struct {
	Code  string
	Color string
	Pos   geo.Point
	Dest  geo.Point
	Trail []geo.Point
	Label string
}

// Snapshot returns the current fleet converted to display coordinates
// under scale. The trails are copied, so the caller can hold the snapshot
// across ticks.
func (w *World) Snapshot(scale geo.Scale) []Track {
	w.mu.Lock()
	defer w.mu.Unlock()

	tracks := make([]Track, 0, len(w.fleet))
	for _, a := range w.fleet {
		trail := make([]geo.Point, len(a.Trail))
		copy(trail, a.Trail)

		tracks = append(tracks, Track{
			Code:  a.Code,
			Color: a.Color,
			Pos:   scale.ToDisplay(a.Pos),
			Dest:  scale.ToDisplay(a.Dest),
			Trail: trail,
			Label: a.Label(),
		})
	}
	return tracks
}
