package card

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	confettiGravity  = 9.0
	confettiLifetime = 3.0
)

// Piece is one confetti particle in normalized screen space: x in [0, 1]
// left to right, y in [0, 1] top to bottom.
type Piece struct {
	X, Y   float64
	VX, VY float64
	Color  colorful.Color
	Age    float64
	Glyph  rune
}

var confettiGlyphs = []rune{'*', '+', 'o', '.', '~', '♥'}

type Confetti struct {
	pieces []Piece
	rng    *rand.Rand
}

func NewConfetti(rng *rand.Rand) *Confetti {
	return &Confetti{rng: rng}
}

// Burst spawns n pieces at (x, y) flying upward and outward.
func (c *Confetti) Burst(x, y float64, n int) {
	for i := 0; i < n; i++ {
		angle := -math.Pi/2 + (c.rng.Float64()-0.5)*math.Pi*0.9
		speed := 0.6 + c.rng.Float64()*0.9
		c.pieces = append(c.pieces, Piece{
			X:     x,
			Y:     y,
			VX:    math.Cos(angle) * speed * 0.5,
			VY:    math.Sin(angle) * speed,
			Color: colorful.Hsv(c.rng.Float64()*360, 0.7, 1),
			Glyph: confettiGlyphs[c.rng.Intn(len(confettiGlyphs))],
		})
	}
}

// Step advances all pieces by dt seconds and drops expired or off-screen ones.
func (c *Confetti) Step(dt float64) {
	if dt <= 0 {
		return
	}
	alive := c.pieces[:0]
	for _, p := range c.pieces {
		p.VY += confettiGravity * 0.1 * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Age += dt
		if p.Age < confettiLifetime && p.Y <= 1.05 && p.X >= -0.05 && p.X <= 1.05 {
			alive = append(alive, p)
		}
	}
	c.pieces = alive
}

func (c *Confetti) Pieces() []Piece { return c.pieces }

func (c *Confetti) Len() int { return len(c.pieces) }
