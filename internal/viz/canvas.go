package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Colors        [][]colorful.Color
	depth         [][]float64
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Colors: make([][]colorful.Color, h),
		depth:  make([][]float64, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Colors[i] = make([]colorful.Color, w)
		c.depth[i] = make([]float64, w)
	}
	c.Clear()
	return c
}

// SubWidth and SubHeight are the canvas size in dots.
func (c *Canvas) SubWidth() int  { return c.Width * 2 }
func (c *Canvas) SubHeight() int { return c.Height * 4 }

// Set sets a dot at (x, y) in dot coordinates.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

// Plot sets a dot and, if depth is nearer than anything already in the
// cell, takes over the cell color. Smaller depth is nearer.
func (c *Canvas) Plot(x, y int, depth float64, clr colorful.Color) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
	if depth < c.depth[row][col] {
		c.depth[row][col] = depth
		c.Colors[row][col] = clr
	}
}

// Stamp replaces a whole cell with r in color clr, in cell coordinates.
func (c *Canvas) Stamp(col, row int, r rune, clr colorful.Color) {
	if col < 0 || row < 0 || col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] = r
	c.Colors[row][col] = clr
	c.depth[row][col] = math.Inf(-1)
}

// Unset clears a dot
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] &^= rune(pixelMap[y%4][x%2])
}

// Clear resets the canvas
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
			c.Colors[i][j] = colorful.Color{R: 1, G: 1, B: 1}
			c.depth[i][j] = math.Inf(1)
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm
func (c *Canvas) DrawLine(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Lit reports how many Braille dots are set. Stamped cells do not count.
func (c *Canvas) Lit() int {
	n := 0
	for _, row := range c.Grid {
		for _, r := range row {
			if r < brailleBlank || r > brailleBlank+0xff {
				continue
			}
			bits := int(r - brailleBlank)
			for ; bits != 0; bits &= bits - 1 {
				n++
			}
		}
	}
	return n
}

func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Render is String with every non-empty cell styled in its color.
// Consecutive cells of the same color share one style run.
func (c *Canvas) Render() string {
	var b strings.Builder
	for i, row := range c.Grid {
		start := 0
		for j := 1; j <= len(row); j++ {
			if j < len(row) && sameRun(row, c.Colors[i], start, j) {
				continue
			}
			seg := string(row[start:j])
			if row[start] == brailleBlank {
				b.WriteString(seg)
			} else {
				style := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Colors[i][start].Clamped().Hex()))
				b.WriteString(style.Render(seg))
			}
			start = j
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func sameRun(row []rune, colors []colorful.Color, start, j int) bool {
	blankStart := row[start] == brailleBlank
	if blankStart != (row[j] == brailleBlank) {
		return false
	}
	return blankStart || colors[start] == colors[j]
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
