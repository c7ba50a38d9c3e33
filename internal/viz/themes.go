package viz

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name     string
	Title    lipgloss.Color
	Upper    lipgloss.Color
	Lower    lipgloss.Color
	Boundary lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Accent   lipgloss.Color
}

var (
	ThemeField = Theme{
		Name:     "field",
		Title:    lipgloss.Color("#e6edf3"),
		Upper:    lipgloss.Color("#889E81"), // sage
		Lower:    lipgloss.Color("#BC6C51"), // rust
		Boundary: lipgloss.Color("#f85149"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#6e7681"),
		Accent:   lipgloss.Color("#d2a8ff"),
	}

	ThemeOcean = Theme{
		Name:     "ocean",
		Title:    lipgloss.Color("#e0f0ff"),
		Upper:    lipgloss.Color("#00a8cc"),
		Lower:    lipgloss.Color("#ffcc00"),
		Boundary: lipgloss.Color("#4488aa"),
		Text:     lipgloss.Color("#e0f0ff"),
		Muted:    lipgloss.Color("#4488aa"),
		Accent:   lipgloss.Color("#ffd700"),
	}

	ThemeMinimal = Theme{
		Name:     "minimal",
		Title:    lipgloss.Color("#ffffff"),
		Upper:    lipgloss.Color("#ffffff"),
		Lower:    lipgloss.Color("#888888"),
		Boundary: lipgloss.Color("#cccccc"),
		Text:     lipgloss.Color("#ffffff"),
		Muted:    lipgloss.Color("#666666"),
		Accent:   lipgloss.Color("#0088ff"),
	}

	Themes = []Theme{ThemeField, ThemeOcean, ThemeMinimal}
)

// GetTheme returns a theme by name, falling back to field.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeField
}

func themeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func (t Theme) style(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

func (t Theme) outcomeColor(upper bool) lipgloss.Color {
	if upper {
		return t.Upper
	}
	return t.Lower
}
