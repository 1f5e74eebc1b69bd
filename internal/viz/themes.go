package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the card UI
type Theme struct {
	Name      string
	Title     lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Yes       lipgloss.Color
	No        lipgloss.Color
	Accent    lipgloss.Color
	GradientA lipgloss.Color
	GradientB lipgloss.Color
}

var (
	ThemeRose = Theme{
		Name:      "rose",
		Title:     lipgloss.Color("#ff69b4"),
		Text:      lipgloss.Color("#ffe4ef"),
		Muted:     lipgloss.Color("#8b5f74"),
		Yes:       lipgloss.Color("#ff1493"),
		No:        lipgloss.Color("#666677"),
		Accent:    lipgloss.Color("#ffd700"),
		GradientA: lipgloss.Color("#ff1493"),
		GradientB: lipgloss.Color("#ffb6c1"),
	}

	ThemeMidnight = Theme{
		Name:      "midnight",
		Title:     lipgloss.Color("#c792ea"),
		Text:      lipgloss.Color("#e0e0ff"),
		Muted:     lipgloss.Color("#5a5a80"),
		Yes:       lipgloss.Color("#ff5c8a"),
		No:        lipgloss.Color("#44445a"),
		Accent:    lipgloss.Color("#82aaff"),
		GradientA: lipgloss.Color("#82aaff"),
		GradientB: lipgloss.Color("#ff5c8a"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Title:     lipgloss.Color("#ff6b6b"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Yes:       lipgloss.Color("#ff4757"),
		No:        lipgloss.Color("#6b5b6e"),
		Accent:    lipgloss.Color("#feca57"),
		GradientA: lipgloss.Color("#feca57"),
		GradientB: lipgloss.Color("#ff9ff3"),
	}

	CurrentTheme = ThemeRose

	Themes = []Theme{
		ThemeRose,
		ThemeMidnight,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to rose.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeRose
}

func SetTheme(name string) {
	CurrentTheme = GetTheme(name)
}

// NextTheme switches to the theme after the current one.
func NextTheme() Theme {
	for i, t := range Themes {
		if t.Name == CurrentTheme.Name {
			CurrentTheme = Themes[(i+1)%len(Themes)]
			return CurrentTheme
		}
	}
	CurrentTheme = ThemeRose
	return CurrentTheme
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
