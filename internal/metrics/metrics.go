package metrics

import (
	"math"

	"github.com/san-kum/heartcloud/internal/animator"
)

// Metric accumulates a scalar over a sequence of frames.
type Metric interface {
	Name() string
	Observe(tr animator.Transform)
	Value() float64
	Reset()
}

// PulseRange tracks the peak-to-peak breathing scale.
type PulseRange struct {
	min, max float64
	seen     bool
}

func NewPulseRange() *PulseRange { return &PulseRange{} }

func (p *PulseRange) Name() string { return "pulse_range" }

func (p *PulseRange) Observe(tr animator.Transform) {
	if !p.seen {
		p.min, p.max, p.seen = tr.Scale, tr.Scale, true
		return
	}
	p.min = math.Min(p.min, tr.Scale)
	p.max = math.Max(p.max, tr.Scale)
}

func (p *PulseRange) Value() float64 {
	if !p.seen {
		return 0
	}
	return p.max - p.min
}

func (p *PulseRange) Reset() { *p = PulseRange{} }

// FrameRate is the mean frames per second between observed frames.
type FrameRate struct {
	first, last float64
	frames      int
}

func NewFrameRate() *FrameRate { return &FrameRate{} }

func (f *FrameRate) Name() string { return "fps" }

func (f *FrameRate) Observe(tr animator.Transform) {
	if f.frames == 0 {
		f.first = tr.Time
	}
	f.last = tr.Time
	f.frames++
}

func (f *FrameRate) Value() float64 {
	span := f.last - f.first
	if f.frames < 2 || span <= 0 {
		return 0
	}
	return float64(f.frames-1) / span
}

func (f *FrameRate) Reset() { *f = FrameRate{} }

// ViewTravel is the total distance the viewpoint moved.
type ViewTravel struct {
	prev  animator.Transform
	total float64
	seen  bool
}

func NewViewTravel() *ViewTravel { return &ViewTravel{} }

func (v *ViewTravel) Name() string { return "view_travel" }

func (v *ViewTravel) Observe(tr animator.Transform) {
	if v.seen {
		v.total += tr.Viewpoint.Sub(v.prev.Viewpoint).Length()
	}
	v.prev, v.seen = tr, true
}

func (v *ViewTravel) Value() float64 { return v.total }

func (v *ViewTravel) Reset() { *v = ViewTravel{} }

// Recorder fans a frame out to several metrics. It satisfies
// animator.Surface so it can be attached next to a renderer.
type Recorder struct {
	metrics []Metric
	next    animator.Surface
}

func NewRecorder(next animator.Surface, ms ...Metric) *Recorder {
	return &Recorder{metrics: ms, next: next}
}

func (r *Recorder) Draw(tr animator.Transform) {
	for _, m := range r.metrics {
		m.Observe(tr)
	}
	if r.next != nil {
		r.next.Draw(tr)
	}
}

// Values returns every metric keyed by name.
func (r *Recorder) Values() map[string]float64 {
	out := make(map[string]float64, len(r.metrics))
	for _, m := range r.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}

func DefaultMetrics() []Metric {
	return []Metric{NewPulseRange(), NewFrameRate(), NewViewTravel()}
}
