package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/heartcloud/internal/animator"
	"github.com/san-kum/heartcloud/internal/heart"
	"github.com/san-kum/heartcloud/internal/viz"
)

// CanvasToSVG converts a Braille canvas to SVG, one circle per lit dot in
// the color of its cell.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height)

	// Braille dot-to-bit mapping
	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			fill := canvas.Colors[row][col].Clamped().Hex()

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						fmt.Fprintf(&sb, "<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\"/>\n", cx, cy, dotRadius, fill)
					}
				}
			}
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// CloudToSVG draws the cloud under tr as depth-sorted circles, far points
// first.
func CloudToSVG(cloud *heart.PointCloud, tr animator.Transform, cam *viz.Camera, width, height int, radius float64, bg colorful.Color) string {
	if cloud == nil || cam == nil {
		return ""
	}

	pts := viz.ProjectCloud(nil, cloud, tr, cam, width, height)
	sort.Slice(pts, func(i, j int) bool { return pts[i].Depth > pts[j].Depth })

	var sb strings.Builder
	fmt.Fprintf(&sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, bg.Clamped().Hex())

	for _, p := range pts {
		fill := cloud.At(p.Index).Color.Clamped().Hex()
		fmt.Fprintf(&sb, "<circle cx=\"%d\" cy=\"%d\" r=\"%.2f\" fill=\"%s\"/>\n", p.X, p.Y, radius, fill)
	}

	sb.WriteString("</svg>")
	return sb.String()
}
