package heart

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

const tol = 1e-9

func TestInside(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float64
		want    bool
	}{
		{"origin", 0, 0, 0, true},
		{"near center", 0.2, 0.1, 0.1, true},
		{"outside cube corner", 1.5, 1.5, 1.5, false},
		{"far on x", 1.4, 0, 0, false},
		{"far below", 0, 0, -1.4, false},
	}

	for _, tt := range tests {
		if got := Inside(tt.x, tt.y, tt.z); got != tt.want {
			t.Errorf("%s: Inside(%v, %v, %v) = %v, want %v", tt.name, tt.x, tt.y, tt.z, got, tt.want)
		}
	}
}

func TestSampleCountAndMembership(t *testing.T) {
	for _, n := range []int{1, 7, 250, 1000} {
		cfg := DefaultSamplerConfig()
		cfg.Count = n

		res, err := Sample(cfg, rand.New(rand.NewSource(int64(n))))
		if err != nil {
			t.Fatalf("n=%d: sample failed: %v", n, err)
		}
		if res.Cloud.Len() != n {
			t.Fatalf("n=%d: expected %d points, got %d", n, n, res.Cloud.Len())
		}
		if res.Attempts < n {
			t.Errorf("n=%d: attempts %d below point count", n, res.Attempts)
		}

		for i, p := range res.Cloud.Points() {
			u := p.Position.Scale(1 / cfg.Scale)
			if !Inside(u.X, u.Y, u.Z) {
				t.Fatalf("n=%d: point %d at %+v is outside the volume", n, i, u)
			}
		}
	}
}

func TestSampleScaledBounds(t *testing.T) {
	cfg := DefaultSamplerConfig()
	cfg.Count = 1000
	cfg.Scale = 3.5

	res, err := Sample(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}

	limit := 1.5 * 3.5
	for i, p := range res.Cloud.Points() {
		q := p.Position
		if math.Abs(q.X) > limit || math.Abs(q.Y) > limit || math.Abs(q.Z) > limit {
			t.Fatalf("point %d at %+v outside [-%.2f, %.2f]^3", i, q, limit, limit)
		}
	}
}

func TestSampleScalesComponentwise(t *testing.T) {
	cfg := DefaultSamplerConfig()
	cfg.Count = 200

	unit := cfg
	unit.Scale = 1

	a, err := Sample(unit, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	cfg.Scale = 2.75
	b, err := Sample(cfg, rand.New(rand.NewSource(9)))
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}

	for i := 0; i < a.Cloud.Len(); i++ {
		want := a.Cloud.At(i).Position.Scale(2.75)
		got := b.Cloud.At(i).Position
		if got.Sub(want).Length() > tol {
			t.Fatalf("point %d: expected %+v, got %+v", i, want, got)
		}
		if a.Cloud.At(i).Color != b.Cloud.At(i).Color {
			t.Fatalf("point %d: color depends on scale", i)
		}
	}
}

func TestSampleColorFollowsDistance(t *testing.T) {
	cfg := DefaultSamplerConfig()
	cfg.Count = 300
	cfg.Inner = colorful.Color{R: 0, G: 0, B: 0}
	cfg.Outer = colorful.Color{R: 1, G: 1, B: 1}

	res, err := Sample(cfg, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}

	for i, p := range res.Cloud.Points() {
		d := math.Min(1, p.Position.Scale(1/cfg.Scale).Length())
		if math.Abs(p.Color.R-d) > tol {
			t.Fatalf("point %d: expected channel %.6f, got %.6f", i, d, p.Color.R)
		}
	}
}

func TestColorAt(t *testing.T) {
	inner := colorful.Color{R: 1, G: 0, B: 0.5}
	outer := colorful.Color{R: 0, G: 1, B: 0.5}

	if got := ColorAt(inner, outer, 0); got != inner {
		t.Errorf("dist 0: expected inner %v, got %v", inner, got)
	}
	if got := ColorAt(inner, outer, 1); got != outer {
		t.Errorf("dist 1: expected outer %v, got %v", outer, got)
	}
	if got := ColorAt(inner, outer, 1.3); got != outer {
		t.Errorf("dist 1.3: expected clamp to outer, got %v", got)
	}
	if got := ColorAt(inner, outer, -0.2); got != inner {
		t.Errorf("dist -0.2: expected clamp to inner, got %v", got)
	}

	prev := -1.0
	for d := 0.0; d <= 1.0; d += 0.05 {
		g := ColorAt(inner, outer, d).G
		if g < prev {
			t.Fatalf("green channel decreased at dist %.2f", d)
		}
		prev = g
	}
}

func TestSampleInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*SamplerConfig)
		want error
	}{
		{"zero count", func(c *SamplerConfig) { c.Count = 0 }, ErrInvalidCount},
		{"negative count", func(c *SamplerConfig) { c.Count = -5 }, ErrInvalidCount},
		{"too many", func(c *SamplerConfig) { c.Count = MaxPoints + 1 }, ErrInvalidCount},
		{"zero scale", func(c *SamplerConfig) { c.Scale = 0 }, ErrInvalidScale},
		{"nan scale", func(c *SamplerConfig) { c.Scale = math.NaN() }, ErrInvalidScale},
		{"zero extent", func(c *SamplerConfig) { c.HalfExtent = 0 }, ErrInvalidExtent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSamplerConfig()
			tt.mod(&cfg)
			_, err := Sample(cfg, rand.New(rand.NewSource(1)))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestSampleAttemptCap(t *testing.T) {
	cfg := DefaultSamplerConfig()
	cfg.Count = 100
	// A cube this large makes interior hits rare enough to trip a tiny cap.
	cfg.HalfExtent = 1000
	cfg.MaxAttemptsFactor = 1

	_, err := Sample(cfg, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrAttemptsExhausted) {
		t.Fatalf("expected ErrAttemptsExhausted, got %v", err)
	}

	var se *SampleError
	if !errors.As(err, &se) {
		t.Fatalf("expected *SampleError, got %T", err)
	}
	if se.Attempts != 100 {
		t.Errorf("expected 100 attempts, got %d", se.Attempts)
	}
}

func TestSampleParallel(t *testing.T) {
	cfg := DefaultSamplerConfig()
	cfg.Count = 1001

	a, err := SampleParallel(cfg, 42, 4)
	if err != nil {
		t.Fatalf("parallel sample failed: %v", err)
	}
	if a.Cloud.Len() != cfg.Count {
		t.Fatalf("expected %d points, got %d", cfg.Count, a.Cloud.Len())
	}

	b, err := SampleParallel(cfg, 42, 4)
	if err != nil {
		t.Fatalf("parallel sample failed: %v", err)
	}
	for i := 0; i < a.Cloud.Len(); i++ {
		if a.Cloud.At(i) != b.Cloud.At(i) {
			t.Fatalf("point %d differs between runs with the same seed", i)
		}
	}
}

func TestRecolor(t *testing.T) {
	cfg := DefaultSamplerConfig()
	cfg.Count = 50
	res, err := Sample(cfg, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	before := res.Cloud.At(0).Position

	res.Cloud.Recolor(AcceptColor)

	if res.Cloud.Len() != 50 {
		t.Errorf("recolor changed length to %d", res.Cloud.Len())
	}
	for i, p := range res.Cloud.Points() {
		if p.Color != AcceptColor {
			t.Fatalf("point %d not recolored: %v", i, p.Color)
		}
	}
	if res.Cloud.At(0).Position != before {
		t.Error("recolor moved a point")
	}
}

func TestAcceptanceRate(t *testing.T) {
	cfg := DefaultSamplerConfig()
	cfg.Count = 2000
	res, err := Sample(cfg, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("sample failed: %v", err)
	}
	rate := res.AcceptanceRate()
	if rate <= 0 || rate > 1 {
		t.Errorf("acceptance rate %.4f outside (0, 1]", rate)
	}
}
