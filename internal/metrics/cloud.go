package metrics

import (
	"math"

	"github.com/san-kum/heartcloud/internal/animator"
	"github.com/san-kum/heartcloud/internal/heart"
)

type CloudStats struct {
	Count      int
	MeanRadius float64
	MaxRadius  float64
	Min, Max   heart.Vec3
	// Histogram counts points by unscaled radial distance in equal bins
	// over [0, 1]; the last bin also holds distances above 1.
	Histogram []int
}

// Cloud summarizes a cloud. Radii are in unscaled units so they read the
// same as the color interpolation fraction.
func Cloud(cloud *heart.PointCloud, bins int) CloudStats {
	if bins < 1 {
		bins = 1
	}
	st := CloudStats{Count: cloud.Len(), Histogram: make([]int, bins)}
	if cloud.Len() == 0 {
		return st
	}

	inv := 1 / cloud.Scale()
	sum := 0.0
	for _, p := range cloud.Points() {
		r := p.Position.Length() * inv
		sum += r
		st.MaxRadius = math.Max(st.MaxRadius, r)
		b := int(r * float64(bins))
		if b >= bins {
			b = bins - 1
		}
		st.Histogram[b]++
	}
	st.MeanRadius = sum / float64(cloud.Len())
	st.Min, st.Max = cloud.Bounds()
	return st
}

// PulseTrace samples the breathing scale at fps over duration seconds.
func PulseTrace(params *animator.Params, duration float64, fps int) []float64 {
	if fps <= 0 || duration <= 0 {
		return nil
	}
	n := int(duration*float64(fps)) + 1
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / float64(fps)
		out[i] = animator.PulseScale(t, params.PulseSpeed(), params.PulseAmplitude)
	}
	return out
}
