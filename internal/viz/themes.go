package viz

import (
	"image/color"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colours of the stats pane and recorded frames.
type Theme struct {
	Name       string
	Accent     lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Warning    lipgloss.Color
	Background color.RGBA
}

var (
	ThemeNight = Theme{
		Name:       "night",
		Accent:     lipgloss.Color("#00ffff"),
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#666688"),
		Warning:    lipgloss.Color("#ff4444"),
		Background: color.RGBA{10, 10, 10, 255},
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Accent:     lipgloss.Color("#ffd700"),
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Warning:    lipgloss.Color("#ff4444"),
		Background: color.RGBA{0, 26, 51, 255},
	}

	ThemeSunset = Theme{
		Name:       "sunset",
		Accent:     lipgloss.Color("#ff9ff3"),
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Warning:    lipgloss.Color("#ff4757"),
		Background: color.RGBA{45, 27, 46, 255},
	}

	Themes = []Theme{ThemeNight, ThemeOcean, ThemeSunset}
)

// GetTheme returns a theme by name, falling back to night.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeNight
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
