package viz

import (
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestCanvasSetUnset(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0)
	c.Set(1, 3)
	if c.Grid[0][0] != rune(brailleBlank|0x1|0x80) {
		t.Errorf("unexpected cell %U", c.Grid[0][0])
	}
	if c.Lit() != 2 {
		t.Errorf("expected 2 dots, got %d", c.Lit())
	}

	c.Unset(0, 0)
	if c.Grid[0][0] != rune(brailleBlank|0x80) {
		t.Errorf("unset left cell %U", c.Grid[0][0])
	}

	// Out of range writes are ignored.
	c.Set(-1, 0)
	c.Set(100, 100)
	if c.Lit() != 1 {
		t.Errorf("expected 1 dot, got %d", c.Lit())
	}
}

func TestCanvasPlotKeepsNearestColor(t *testing.T) {
	c := NewCanvas(2, 2)
	far := colorful.Color{R: 0, G: 0, B: 1}
	near := colorful.Color{R: 1, G: 0, B: 0}

	c.Plot(0, 0, 10, far)
	c.Plot(1, 1, 2, near)
	c.Plot(0, 2, 5, far)

	if c.Colors[0][0] != near {
		t.Errorf("expected nearest color %v, got %v", near, c.Colors[0][0])
	}

	c.Clear()
	if c.Lit() != 0 {
		t.Error("clear left dots behind")
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 1)
	c.DrawLine(0, 0, 19, 0)
	if c.Lit() != 20 {
		t.Errorf("expected 20 dots on a full row, got %d", c.Lit())
	}
}

func TestCanvasRender(t *testing.T) {
	c := NewCanvas(3, 2)
	c.Plot(0, 0, 1, colorful.Color{R: 1})
	out := c.Render()
	if strings.Count(out, "\n") != 2 {
		t.Errorf("expected 2 rows, got %q", out)
	}
	if !strings.ContainsRune(out, rune(brailleBlank|0x1)) {
		t.Error("rendered output lost the plotted dot")
	}
}

func TestCanvasStamp(t *testing.T) {
	c := NewCanvas(3, 1)
	c.Plot(0, 0, 1, colorful.Color{R: 1})
	c.Stamp(1, 0, '*', colorful.Color{G: 1})
	c.Stamp(9, 9, '*', colorful.Color{G: 1})

	if c.Grid[0][1] != '*' {
		t.Errorf("expected stamped rune, got %q", c.Grid[0][1])
	}
	if c.Lit() != 1 {
		t.Errorf("stamped cells should not count as dots, got %d", c.Lit())
	}
}
