package sim

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Clock fires ticks at a fixed wall-clock interval. It holds no simulation
// state; it only schedules. Pacing is done with a rate.Limiter so a slow
// tick callback delays the next tick instead of letting ticks pile up.
type Clock struct {
	limiter *rate.Limiter
}

// NewClock creates a clock firing once per interval.
func NewClock(interval time.Duration) *Clock {
	return &Clock{
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Run invokes tick once per interval until the context is cancelled.
// Each completed tick re-arms the next one, so the loop never drifts to a
// stop on its own; cancellation is the only way out and simply stops
// re-arming.
func (c *Clock) Run(ctx context.Context, tick func()) error {
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
		tick()
	}
}
