package report

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme is the palette used for result cards.
type Theme struct {
	Name   string
	Card   lipgloss.Color
	Tile   lipgloss.Color
	Text   lipgloss.Color
	Muted  lipgloss.Color
	Pass   lipgloss.Color
	Fail   lipgloss.Color
	Border lipgloss.Color
}

var (
	Light = Theme{
		Name:   "light",
		Card:   lipgloss.Color("#F9F9F9"),
		Tile:   lipgloss.Color("#FFFFFF"),
		Text:   lipgloss.Color("#333333"),
		Muted:  lipgloss.Color("#666666"),
		Pass:   lipgloss.Color("#2E7D32"),
		Fail:   lipgloss.Color("#D32F2F"),
		Border: lipgloss.Color("#999999"),
	}

	Dark = Theme{
		Name:   "dark",
		Card:   lipgloss.Color("#333333"),
		Tile:   lipgloss.Color("#444444"),
		Text:   lipgloss.Color("#EEEEEE"),
		Muted:  lipgloss.Color("#AAAAAA"),
		Pass:   lipgloss.Color("#00FF00"), // lime
		Fail:   lipgloss.Color("#FA8072"), // salmon
		Border: lipgloss.Color("#666666"),
	}
)

// ThemeFor resolves a [display] theme name. "auto" asks the terminal.
func ThemeFor(name string) Theme {
	switch name {
	case "light":
		return Light
	case "dark":
		return Dark
	default:
		return DetectTheme(termenv.NewOutput(os.Stdout))
	}
}

func DetectTheme(out *termenv.Output) Theme {
	if out.HasDarkBackground() {
		return Dark
	}
	return Light
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t.Name == Dark.Name {
		return Light
	}
	return Dark
}
