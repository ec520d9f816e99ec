package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name  string
	Title lipgloss.Color
	Body  lipgloss.Color
	Graph lipgloss.Color
	Muted lipgloss.Color
}

var (
	ThemeCyberpunk = Theme{
		Name:  "cyberpunk",
		Title: lipgloss.Color("#ff00ff"),
		Body:  lipgloss.Color("#00ffff"),
		Graph: lipgloss.Color("#ffff00"),
		Muted: lipgloss.Color("#666666"),
	}

	ThemeRetroGreen = Theme{
		Name:  "retro",
		Title: lipgloss.Color("#00ff00"),
		Body:  lipgloss.Color("#88ff88"),
		Graph: lipgloss.Color("#00cc00"),
		Muted: lipgloss.Color("#005500"),
	}

	ThemeOcean = Theme{
		Name:  "ocean",
		Title: lipgloss.Color("#00a8cc"),
		Body:  lipgloss.Color("#ffd700"),
		Graph: lipgloss.Color("#0077be"),
		Muted: lipgloss.Color("#4488aa"),
	}

	ThemeSunset = Theme{
		Name:  "sunset",
		Title: lipgloss.Color("#ff6b6b"),
		Body:  lipgloss.Color("#feca57"),
		Graph: lipgloss.Color("#ff9ff3"),
		Muted: lipgloss.Color("#8b6b8c"),
	}

	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name, falling back to cyberpunk.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after name, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
