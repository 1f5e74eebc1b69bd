package heart

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64      { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Point is one sampled particle. Position is in scene space (already scaled).
type Point struct {
	Position Vec3
	Color    colorful.Color
}

// PointCloud is a fixed-length set of points. Its length never changes after
// sampling; only Recolor mutates it.
type PointCloud struct {
	points []Point
	scale  float64
}

func newPointCloud(points []Point, scale float64) *PointCloud {
	return &PointCloud{points: points, scale: scale}
}

func (pc *PointCloud) Len() int { return len(pc.points) }

func (pc *PointCloud) At(i int) Point { return pc.points[i] }

// Scale returns the factor applied to unit-volume coordinates.
func (pc *PointCloud) Scale() float64 { return pc.scale }

// Points returns the backing slice. Callers must treat it as read-only.
func (pc *PointCloud) Points() []Point { return pc.points }

// Recolor sets every point to c.
func (pc *PointCloud) Recolor(c colorful.Color) {
	for i := range pc.points {
		pc.points[i].Color = c
	}
}

// Bounds returns the axis-aligned bounding box of the cloud.
func (pc *PointCloud) Bounds() (lo, hi Vec3) {
	if len(pc.points) == 0 {
		return Vec3{}, Vec3{}
	}
	lo = pc.points[0].Position
	hi = lo
	for _, p := range pc.points[1:] {
		q := p.Position
		lo.X, hi.X = math.Min(lo.X, q.X), math.Max(hi.X, q.X)
		lo.Y, hi.Y = math.Min(lo.Y, q.Y), math.Max(hi.Y, q.Y)
		lo.Z, hi.Z = math.Min(lo.Z, q.Z), math.Max(hi.Z, q.Z)
	}
	return lo, hi
}
