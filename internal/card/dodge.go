package card

import "math/rand"

type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Dodger moves the decline button somewhere else inside an area whenever the
// pointer reaches it.
type Dodger struct {
	area Rect
	btn  Rect
	rng  *rand.Rand
}

func NewDodger(area Rect, btnW, btnH int, rng *rand.Rand) *Dodger {
	d := &Dodger{area: area, rng: rng}
	d.btn = Rect{X: area.X + (area.W-btnW)/2, Y: area.Y + (area.H-btnH)/2, W: btnW, H: btnH}
	d.btn = d.fit(d.btn)
	return d
}

func (d *Dodger) Button() Rect { return d.btn }

// Resize changes the area and pulls the button back inside it.
func (d *Dodger) Resize(area Rect) {
	d.area = area
	d.btn = d.fit(d.btn)
}

// Flee relocates the button. The new position differs from the old one
// whenever the area leaves room to move.
func (d *Dodger) Flee() Rect {
	maxX := d.area.W - d.btn.W
	maxY := d.area.H - d.btn.H
	if maxX <= 0 && maxY <= 0 {
		return d.btn
	}

	old := d.btn
	for i := 0; i < 16; i++ {
		next := old
		if maxX > 0 {
			next.X = d.area.X + d.rng.Intn(maxX+1)
		}
		if maxY > 0 {
			next.Y = d.area.Y + d.rng.Intn(maxY+1)
		}
		if next != old {
			d.btn = next
			return next
		}
	}

	// Random draws kept landing on the same spot; step to the far edge.
	next := old
	if maxX > 0 {
		next.X = d.area.X
		if old.X == d.area.X {
			next.X = d.area.X + maxX
		}
	} else {
		next.Y = d.area.Y
		if old.Y == d.area.Y {
			next.Y = d.area.Y + maxY
		}
	}
	d.btn = next
	return next
}

// Hover flees if (x, y) is on the button and reports whether it moved.
func (d *Dodger) Hover(x, y int) bool {
	if !d.btn.Contains(x, y) {
		return false
	}
	old := d.btn
	return d.Flee() != old
}

func (d *Dodger) fit(b Rect) Rect {
	if b.X+b.W > d.area.X+d.area.W {
		b.X = d.area.X + d.area.W - b.W
	}
	if b.Y+b.H > d.area.Y+d.area.H {
		b.Y = d.area.Y + d.area.H - b.H
	}
	if b.X < d.area.X {
		b.X = d.area.X
	}
	if b.Y < d.area.Y {
		b.Y = d.area.Y
	}
	return b
}
