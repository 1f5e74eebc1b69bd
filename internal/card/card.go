// Package card holds the greeting-card session: the sampled cloud, the
// animator settings it shares with the frame loop, and the one-way switch
// from asking to accepted.
package card

import (
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/heartcloud/internal/animator"
	"github.com/san-kum/heartcloud/internal/heart"
)

type Mode int

const (
	ModePending Mode = iota
	ModeAccepted
)

func (m Mode) String() string {
	if m == ModeAccepted {
		return "accepted"
	}
	return "pending"
}

const DefaultPulseBoost = 2.0

type Options struct {
	AcceptColor colorful.Color
	PulseBoost  float64
	Question    []string
	Answer      []string
}

func DefaultOptions() Options {
	return Options{
		AcceptColor: heart.AcceptColor,
		PulseBoost:  DefaultPulseBoost,
		Question:    []string{"Will you be my Valentine?"},
		Answer:      []string{"Yay!", "I knew you'd say yes."},
	}
}

// Card is owned by a single frame loop; Accept and the animator run on the
// same goroutine.
type Card struct {
	cloud    *heart.PointCloud
	params   *animator.Params
	opts     Options
	mode     Mode
	acceptAt float64
	onAccept []func()
}

func New(cloud *heart.PointCloud, params *animator.Params, opts Options) *Card {
	if opts.PulseBoost <= 1 {
		opts.PulseBoost = DefaultPulseBoost
	}
	return &Card{cloud: cloud, params: params, opts: opts}
}

func (c *Card) Cloud() *heart.PointCloud { return c.cloud }
func (c *Card) Params() *animator.Params { return c.params }
func (c *Card) Mode() Mode               { return c.mode }
func (c *Card) Accepted() bool           { return c.mode == ModeAccepted }

// AcceptedAt is the elapsed time passed to the accepting call of Accept.
func (c *Card) AcceptedAt() float64 { return c.acceptAt }

// OnAccept registers a hook run once when the card is accepted.
func (c *Card) OnAccept(fn func()) { c.onAccept = append(c.onAccept, fn) }

// Accept recolors the cloud and speeds up the pulse. Calls after the first
// have no effect.
func (c *Card) Accept(t float64) {
	if c.mode == ModeAccepted {
		return
	}
	c.mode = ModeAccepted
	c.acceptAt = t
	c.cloud.Recolor(c.opts.AcceptColor)
	c.params.BoostPulse(c.opts.PulseBoost)
	for _, fn := range c.onAccept {
		fn()
	}
}

// Script returns the lines to reveal for the current mode.
func (c *Card) Script() []string {
	if c.mode == ModeAccepted {
		return c.opts.Answer
	}
	return c.opts.Question
}
