package viz

import (
	"math"

	"github.com/san-kum/heartcloud/internal/animator"
	"github.com/san-kum/heartcloud/internal/heart"
)

const (
	DefaultFOV  = math.Pi / 3
	DefaultNear = 0.1
)

// Camera projects cloud points to a 2D plane. View space is right-handed
// with +Y up and +Z toward the viewer; the heart's vertical axis (its Z)
// maps to view +Y.
type Camera struct {
	FOV, Near float64
	// Aspect is the height/width ratio of one output unit. Braille dots are
	// close to square, half-block cells are not.
	Aspect float64
}

func NewCamera() *Camera {
	return &Camera{FOV: DefaultFOV, Near: DefaultNear, Aspect: 1}
}

// ToView applies the frame transform to a cloud point: uniform scale, spin
// about the heart's vertical axis, then the axis swap into view space.
func ToView(p heart.Vec3, tr animator.Transform) heart.Vec3 {
	s := tr.Scale
	x, y, z := p.X*s, p.Y*s, p.Z*s
	cr, sr := math.Cos(tr.Rotation), math.Sin(tr.Rotation)
	x, y = x*cr-y*sr, x*sr+y*cr
	return heart.Vec3{X: x, Y: z, Z: y}
}

// basis is an orthonormal frame looking from eye at the origin.
type basis struct {
	eye, right, up, fwd heart.Vec3
}

func lookAtOrigin(eye heart.Vec3) basis {
	fwd := normalize(eye.Scale(-1))
	if fwd == (heart.Vec3{}) {
		fwd = heart.Vec3{Z: -1}
	}
	right := normalize(cross(fwd, heart.Vec3{Y: 1}))
	if right == (heart.Vec3{}) {
		right = heart.Vec3{X: 1}
	}
	up := cross(right, fwd)
	return basis{eye: eye, right: right, up: up, fwd: fwd}
}

// Project maps a view-space point to screen coordinates for a sw x sh
// target. Returns x, y, depth along the view direction and visibility.
func (c *Camera) Project(p heart.Vec3, eye heart.Vec3, sw, sh int) (int, int, float64, bool) {
	return c.project(p, lookAtOrigin(eye), sw, sh)
}

func (c *Camera) project(p heart.Vec3, b basis, sw, sh int) (int, int, float64, bool) {
	d := p.Sub(b.eye)
	depth := dot(d, b.fwd)
	if depth <= c.Near {
		return 0, 0, 0, false
	}

	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	// Fit the vertical field of view to the physical height of the target.
	physH := float64(sh) * aspect
	focal := (physH / 2) / math.Tan(c.FOV/2)

	sx := int(math.Round(dot(d, b.right)/depth*focal)) + sw/2
	sy := int(math.Round(-dot(d, b.up)/depth*focal/aspect)) + sh/2
	return sx, sy, depth, sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

func dot(a, b heart.Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func cross(a, b heart.Vec3) heart.Vec3 {
	return heart.Vec3{X: a.Y*b.Z - a.Z*b.Y, Y: a.Z*b.X - a.X*b.Z, Z: a.X*b.Y - a.Y*b.X}
}

func normalize(v heart.Vec3) heart.Vec3 {
	if l := v.Length(); l != 0 {
		return v.Scale(1 / l)
	}
	return heart.Vec3{}
}
