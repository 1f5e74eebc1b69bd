package animator

import (
	"math"
	"testing"

	"github.com/san-kum/heartcloud/internal/heart"
)

type recordingSurface struct {
	frames []Transform
}

func (r *recordingSurface) Draw(t Transform) { r.frames = append(r.frames, t) }

func TestPulseScaleAtZero(t *testing.T) {
	if s := PulseScale(0, DefaultPulseSpeed, DefaultPulseAmplitude); s != 1 {
		t.Errorf("expected scale 1 at t=0, got %v", s)
	}
}

func TestPulseScaleBounded(t *testing.T) {
	for _, amp := range []float64{DefaultPulseAmplitude, 0.08} {
		for _, speed := range []float64{0.5, 3, 6, 17.3} {
			for i := 0; i < 5000; i++ {
				tt := float64(i) * 0.0137
				s := PulseScale(tt, speed, amp)
				if s < 1-amp-1e-12 || s > 1+amp+1e-12 {
					t.Fatalf("amp %.2f speed %.2f t=%.4f: scale %v out of [%v, %v]", amp, speed, tt, s, 1-amp, 1+amp)
				}
			}
		}
	}
}

func TestRotationMonotone(t *testing.T) {
	a := New(DefaultParams())
	prev := a.View().Rotation
	for i := 1; i <= 100; i++ {
		tr := a.Step(float64(i)/60, PointerState{})
		if tr.Rotation < prev {
			t.Fatalf("frame %d: rotation decreased from %v to %v", i, prev, tr.Rotation)
		}
		prev = tr.Rotation
	}
	want := 100 * DefaultRotationSpeed
	if math.Abs(prev-want) > 1e-9 {
		t.Errorf("expected rotation %v after 100 frames, got %v", want, prev)
	}
}

func TestEasingConverges(t *testing.T) {
	tests := []struct {
		name    string
		pointer PointerState
	}{
		{"right", PointerState{X: 1, Y: 0}},
		{"corner", PointerState{X: -0.7, Y: 0.4}},
		{"clamped", PointerState{X: 3, Y: -9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(DefaultParams())
			target := a.Target(tt.pointer)
			prevDist := a.View().Position.Sub(target).Length()
			for i := 1; i <= 2000; i++ {
				tr := a.Step(float64(i)/60, tt.pointer)
				d := tr.Viewpoint.Sub(target).Length()
				if d > prevDist+1e-12 {
					t.Fatalf("frame %d: distance grew from %v to %v", i, prevDist, d)
				}
				prevDist = d
			}
			if prevDist > 1e-9 {
				t.Errorf("expected convergence to %+v, residual %v", target, prevDist)
			}
		})
	}
}

func TestEasingFixedPoint(t *testing.T) {
	a := New(DefaultParams())
	start := a.View().Position
	if start != (heart.Vec3{Z: DefaultCameraZ}) {
		t.Fatalf("unexpected start position %+v", start)
	}
	for i := 1; i <= 10; i++ {
		tr := a.Step(float64(i), PointerState{})
		if tr.Viewpoint != start {
			t.Fatalf("frame %d: viewpoint moved to %+v", i, tr.Viewpoint)
		}
	}
}

func TestPointerClamp(t *testing.T) {
	tests := []struct {
		in, want PointerState
	}{
		{PointerState{0.5, -0.5}, PointerState{0.5, -0.5}},
		{PointerState{2, -2}, PointerState{1, -1}},
		{PointerState{math.NaN(), 0.3}, PointerState{0, 0.3}},
	}
	for _, tt := range tests {
		if got := tt.in.Clamp(); got != tt.want {
			t.Errorf("Clamp(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestTimeEasingMatchesFrameEasing(t *testing.T) {
	frame := New(DefaultParams())
	p := DefaultParams()
	p.Easing = EasingTime
	timed := New(p)

	ptr := PointerState{X: 0.8, Y: -0.3}
	// The first timed step has no elapsed time, so prime both with a step
	// at the fixed point before moving the pointer.
	frame.Step(0, PointerState{})
	timed.Step(0, PointerState{})

	for i := 1; i <= 30; i++ {
		t0 := float64(i) / DefaultRefFPS
		a := frame.Step(t0, ptr)
		b := timed.Step(t0, ptr)
		if a.Viewpoint.Sub(b.Viewpoint).Length() > 1e-9 {
			t.Fatalf("frame %d: frame %+v vs time %+v", i, a.Viewpoint, b.Viewpoint)
		}
	}
}

func TestTimeEasingSlowerAtHighRefreshRate(t *testing.T) {
	p := DefaultParams()
	p.Easing = EasingTime
	fast := New(p)
	fast.Step(0, PointerState{})

	ptr := PointerState{X: 1}
	// Two frames at 120 Hz cover the same time as one frame at 60 Hz.
	fast.Step(1.0/120, ptr)
	got := fast.Step(2.0/120, ptr).Viewpoint.X

	want := 2.0 * DefaultDamping
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected x %.6f after 1/60 s, got %.6f", want, got)
	}
}

func TestPulseSpeedAccessors(t *testing.T) {
	p := DefaultParams()
	p.BoostPulse(2)
	if p.PulseSpeed() != 2*DefaultPulseSpeed {
		t.Errorf("expected %v, got %v", 2*DefaultPulseSpeed, p.PulseSpeed())
	}
	p.SetPulseSpeed(math.Inf(1))
	if p.PulseSpeed() != 2*DefaultPulseSpeed {
		t.Error("infinite pulse speed should be ignored")
	}
}

func TestBoostPulseNeverSlowsDown(t *testing.T) {
	tests := []struct {
		name   string
		speed  float64
		factor float64
		want   float64
	}{
		{"positive", 3, 2, 6},
		{"zero speed", 0, 2, 0},
		{"negative speed", -3, 2, -3},
		{"shrinking factor", 3, 0.5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			p.SetPulseSpeed(tt.speed)
			p.BoostPulse(tt.factor)
			if p.PulseSpeed() != tt.want {
				t.Errorf("expected %v, got %v", tt.want, p.PulseSpeed())
			}
		})
	}
}

func TestSurfaceReceivesFrames(t *testing.T) {
	s := &recordingSurface{}
	a := New(nil)
	a.Attach(s)

	clock := &ManualClock{}
	for i := 0; i < 3; i++ {
		clock.Advance(0.5)
		a.StepClock(clock, PointerState{})
	}

	if len(s.frames) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(s.frames))
	}
	if s.frames[2].Time != 1.5 {
		t.Errorf("expected last frame at t=1.5, got %v", s.frames[2].Time)
	}
	if a.Frames() != 3 {
		t.Errorf("expected frame counter 3, got %d", a.Frames())
	}
}

func TestParseEasingMode(t *testing.T) {
	if m, ok := ParseEasingMode("time"); !ok || m != EasingTime {
		t.Error("expected time mode")
	}
	if m, ok := ParseEasingMode(""); !ok || m != EasingFrame {
		t.Error("expected frame mode for empty string")
	}
	if _, ok := ParseEasingMode("bogus"); ok {
		t.Error("expected failure for unknown mode")
	}
}
