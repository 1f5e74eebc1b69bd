package viz

import (
	"github.com/san-kum/heartcloud/internal/animator"
	"github.com/san-kum/heartcloud/internal/heart"
)

// ProjectedPoint is a cloud point in screen space.
type ProjectedPoint struct {
	X, Y  int
	Depth float64
	Index int
}

// ProjectCloud projects every visible point of the cloud for a sw x sh
// target and appends the results to dst.
func ProjectCloud(dst []ProjectedPoint, cloud *heart.PointCloud, tr animator.Transform, cam *Camera, sw, sh int) []ProjectedPoint {
	b := lookAtOrigin(tr.Viewpoint)
	for i, p := range cloud.Points() {
		x, y, d, ok := cam.project(ToView(p.Position, tr), b, sw, sh)
		if ok {
			dst = append(dst, ProjectedPoint{X: x, Y: y, Depth: d, Index: i})
		}
	}
	return dst
}

// RenderCloud clears the canvas and draws the cloud into it.
func RenderCloud(c *Canvas, cloud *heart.PointCloud, tr animator.Transform, cam *Camera) int {
	if c == nil || cloud == nil || cam == nil {
		return 0
	}
	c.Clear()
	pts := ProjectCloud(nil, cloud, tr, cam, c.SubWidth(), c.SubHeight())
	for _, p := range pts {
		c.Plot(p.X, p.Y, p.Depth, cloud.At(p.Index).Color)
	}
	return len(pts)
}

// Surface adapts a Canvas to animator.Surface.
type Surface struct {
	Canvas *Canvas
	Cloud  *heart.PointCloud
	Camera *Camera
	Drawn  int
}

func (s *Surface) Draw(tr animator.Transform) {
	s.Drawn = RenderCloud(s.Canvas, s.Cloud, tr, s.Camera)
}
