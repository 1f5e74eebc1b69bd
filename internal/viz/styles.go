package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// TitleStyle renders the card heading.
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(CurrentTheme.Title)
}

func TextStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Text)
}

func HintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(CurrentTheme.Muted).Italic(true)
}

// ButtonStyle renders a boxed button; focused buttons are filled.
func ButtonStyle(c lipgloss.Color, focused bool) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true).Padding(0, 2)
	if focused {
		return s.Foreground(lipgloss.Color("#ffffff")).Background(c)
	}
	return s.Foreground(c).Border(lipgloss.RoundedBorder()).BorderForeground(c)
}

// GradientText colors each rune of text along a straight line in RGB from
// start to end.
func GradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	a, err := colorful.Hex(string(start))
	if err != nil {
		a = colorful.Color{R: 1, G: 1, B: 1}
	}
	b, err := colorful.Hex(string(end))
	if err != nil {
		b = a
	}

	var result strings.Builder
	n := len(runes)
	for i, r := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(a.BlendRgb(b, t).Hex()))
		result.WriteString(style.Render(string(r)))
	}
	return result.String()
}

// PulseBar renders a meter for a scale factor around 1.
func PulseBar(scale, amplitude float64, width int) string {
	if amplitude <= 0 || width <= 0 {
		return strings.Repeat("─", max(width, 0))
	}
	frac := (scale - (1 - amplitude)) / (2 * amplitude)
	filled := int(frac * float64(width))
	filled = min(max(filled, 0), width)

	bar := strings.Repeat("♥", filled) + strings.Repeat("·", width-filled)
	return lipgloss.NewStyle().Foreground(CurrentTheme.Yes).Render(bar)
}

// Separator is a centered decorative rule.
func Separator(width int) string {
	if width < 8 {
		return strings.Repeat("─", max(width, 0))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-2)
	right := strings.Repeat("─", width-mid-2)
	return HintStyle().UnsetItalic().Render(left + " ♥ " + right)
}
