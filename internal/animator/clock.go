package animator

import "time"

// Clock supplies monotonically increasing elapsed seconds.
type Clock interface {
	Elapsed() float64
}

type WallClock struct {
	start time.Time
}

func NewWallClock() *WallClock { return &WallClock{start: time.Now()} }

func (c *WallClock) Elapsed() float64 { return time.Since(c.start).Seconds() }

// ManualClock advances only when told to. Used for offline rendering.
type ManualClock struct {
	t float64
}

func (c *ManualClock) Elapsed() float64 { return c.t }

// Advance moves the clock forward; negative steps are ignored.
func (c *ManualClock) Advance(dt float64) {
	if dt > 0 {
		c.t += dt
	}
}
