package heart

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	DefaultCount             = 5000
	DefaultScale             = 3.5
	DefaultHalfExtent        = 1.5
	DefaultMaxAttemptsFactor = 100
)

var (
	DefaultInner = colorful.Color{R: 1, G: 0.078, B: 0.576} // #ff1493
	DefaultOuter = colorful.Color{R: 1, G: 0.412, B: 0.706} // #ff69b4
	AcceptColor  = colorful.Color{R: 1, G: 0.843, B: 0}     // #ffd700
)

type SamplerConfig struct {
	Count             int
	Scale             float64
	Inner, Outer      colorful.Color
	HalfExtent        float64
	MaxAttemptsFactor int
}

func DefaultSamplerConfig() SamplerConfig {
	return SamplerConfig{
		Count:             DefaultCount,
		Scale:             DefaultScale,
		Inner:             DefaultInner,
		Outer:             DefaultOuter,
		HalfExtent:        DefaultHalfExtent,
		MaxAttemptsFactor: DefaultMaxAttemptsFactor,
	}
}

// Validate rejects configurations that cannot be sampled.
func (c SamplerConfig) Validate() error {
	if c.Count <= 0 || c.Count > MaxPoints {
		return fmt.Errorf("%w: got %d, want 1..%d", ErrInvalidCount, c.Count, MaxPoints)
	}
	if c.Scale <= 0 || math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidScale, c.Scale)
	}
	if c.HalfExtent <= 0 || math.IsNaN(c.HalfExtent) || math.IsInf(c.HalfExtent, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidExtent, c.HalfExtent)
	}
	return nil
}

func (c SamplerConfig) maxAttempts() int {
	f := c.MaxAttemptsFactor
	if f <= 0 {
		f = DefaultMaxAttemptsFactor
	}
	return f * c.Count
}

// SampleResult is a sampled cloud plus the cost of producing it.
type SampleResult struct {
	Cloud    *PointCloud
	Attempts int
}

// AcceptanceRate is the fraction of candidates that landed inside the volume.
func (r *SampleResult) AcceptanceRate() float64 {
	if r.Attempts == 0 {
		return 0
	}
	return float64(r.Cloud.Len()) / float64(r.Attempts)
}

// ColorAt interpolates linearly from inner (dist=0) to outer (dist=1).
// dist is clamped to [0, 1].
func ColorAt(inner, outer colorful.Color, dist float64) colorful.Color {
	t := math.Max(0, math.Min(1, dist))
	if math.IsNaN(dist) {
		t = 0
	}
	return inner.BlendRgb(outer, t)
}

// Sample draws exactly cfg.Count points from the heart volume.
func Sample(cfg SamplerConfig, rng *rand.Rand) (*SampleResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	points, attempts, err := sampleInto(make([]Point, 0, cfg.Count), cfg, cfg.Count, cfg.maxAttempts(), rng)
	if err != nil {
		return nil, err
	}
	return &SampleResult{Cloud: newPointCloud(points, cfg.Scale), Attempts: attempts}, nil
}

func sampleInto(dst []Point, cfg SamplerConfig, n, maxAttempts int, rng *rand.Rand) ([]Point, int, error) {
	h := cfg.HalfExtent
	attempts := 0
	for accepted := 0; accepted < n; {
		if attempts >= maxAttempts {
			return nil, attempts, &SampleError{Accepted: accepted, Attempts: attempts, Wrapped: ErrAttemptsExhausted}
		}
		attempts++

		x := (rng.Float64()*2 - 1) * h
		y := (rng.Float64()*2 - 1) * h
		z := (rng.Float64()*2 - 1) * h
		if !Inside(x, y, z) {
			continue
		}

		dist := math.Sqrt(x*x + y*y + z*z)
		dst = append(dst, Point{
			Position: Vec3{x * cfg.Scale, y * cfg.Scale, z * cfg.Scale},
			Color:    ColorAt(cfg.Inner, cfg.Outer, dist),
		})
		accepted++
	}
	return dst, attempts, nil
}
