package animator

import (
	"math"

	"github.com/san-kum/heartcloud/internal/heart"
)

// PointerState is the last observed pointer position, normalized to [-1, 1].
type PointerState struct {
	X, Y float64
}

// Clamp forces both coordinates into [-1, 1]; NaN becomes 0.
func (p PointerState) Clamp() PointerState {
	return PointerState{X: clampUnit(p.X), Y: clampUnit(p.Y)}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-1, math.Min(1, v))
}

// ViewState is the viewpoint position and cumulative rotation.
type ViewState struct {
	Position heart.Vec3
	Rotation float64
}

// Transform is what a render surface applies to the whole cloud.
type Transform struct {
	Scale     float64
	Rotation  float64
	Viewpoint heart.Vec3
	Time      float64
}

// Surface receives one Transform per frame.
type Surface interface {
	Draw(Transform)
}

// PulseScale is the breathing scale factor at time t.
func PulseScale(t, speed, amplitude float64) float64 {
	return 1 + amplitude*math.Sin(t*speed)
}

type Animator struct {
	params  *Params
	view    ViewState
	surface Surface
	lastT   float64
	started bool
	frames  int
}

// New starts the viewpoint at (0, 0, CameraZ) with zero rotation.
func New(params *Params) *Animator {
	if params == nil {
		params = DefaultParams()
	}
	return &Animator{
		params: params,
		view:   ViewState{Position: heart.Vec3{Z: params.CameraZ}},
	}
}

func (a *Animator) Params() *Params  { return a.params }
func (a *Animator) View() ViewState  { return a.view }
func (a *Animator) Frames() int      { return a.frames }
func (a *Animator) Attach(s Surface) { a.surface = s }

// Target is the viewpoint the easing converges to for a pointer.
func (a *Animator) Target(p PointerState) heart.Vec3 {
	p = p.Clamp()
	return heart.Vec3{X: p.X * a.params.GainX, Y: p.Y * a.params.GainY, Z: a.params.CameraZ}
}

// Step advances one frame at elapsed time t.
func (a *Animator) Step(t float64, pointer PointerState) Transform {
	dt := 0.0
	if a.started {
		dt = t - a.lastT
	}
	a.lastT, a.started = t, true
	a.frames++

	scale := PulseScale(t, a.params.PulseSpeed(), a.params.PulseAmplitude)
	a.view.Rotation += a.params.RotationSpeed

	k := a.damping(dt)
	target := a.Target(pointer)
	a.view.Position = a.view.Position.Add(target.Sub(a.view.Position).Scale(k))

	tr := Transform{Scale: scale, Rotation: a.view.Rotation, Viewpoint: a.view.Position, Time: t}
	if a.surface != nil {
		a.surface.Draw(tr)
	}
	return tr
}

// StepClock is Step with time taken from c.
func (a *Animator) StepClock(c Clock, pointer PointerState) Transform {
	return a.Step(c.Elapsed(), pointer)
}

func (a *Animator) damping(dt float64) float64 {
	d := a.params.Damping
	if a.params.Easing != EasingTime || a.params.RefFPS <= 0 {
		return d
	}
	if dt <= 0 {
		return 0
	}
	return 1 - math.Pow(1-d, dt*a.params.RefFPS)
}
