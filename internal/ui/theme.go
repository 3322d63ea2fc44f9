package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Background is one selectable background color. The "default" entry keeps
// the terminal's own background.
type Background struct {
	Name  string
	Color string // empty keeps the terminal background
	Text  string // foreground that stays readable on this background
	Muted string
}

var backgrounds = []Background{
	{Name: "default", Color: "", Text: "#FFFFFF", Muted: "#888888"},
	{Name: "white", Color: "#FFFFFF", Text: "#1A1A1A", Muted: "#666666"},
	{Name: "black", Color: "#000000", Text: "#EEEEEE", Muted: "#777777"},
	{Name: "blue", Color: "#1E3A5F", Text: "#EAF2FF", Muted: "#9DB8D9"},
	{Name: "green", Color: "#1F4D2E", Text: "#EAFFEF", Muted: "#9CCBAA"},
	{Name: "red", Color: "#5F1E1E", Text: "#FFECEC", Muted: "#D9A0A0"},
	{Name: "magenta", Color: "#4B1E5F", Text: "#F8ECFF", Muted: "#C4A0D9"},
}

// GetBackground resolves a stored name, falling back to the default entry.
func GetBackground(name string) Background {
	return backgrounds[backgroundIndex(name)]
}

// NextBackground returns the name after the given one in cycle order.
func NextBackground(name string) string {
	return backgrounds[(backgroundIndex(name)+1)%len(backgrounds)].Name
}

// PrevBackground returns the name before the given one in cycle order.
func PrevBackground(name string) string {
	return backgrounds[(backgroundIndex(name)+len(backgrounds)-1)%len(backgrounds)].Name
}

func backgroundIndex(name string) int {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, bg := range backgrounds {
		if bg.Name == want {
			return i
		}
	}
	return 0
}

// Styles contains the pre-built lipgloss styles for one background choice.
type Styles struct {
	Screen  lipgloss.Style
	Logo    lipgloss.Style
	Banner  lipgloss.Style
	Caption lipgloss.Style
	Muted   lipgloss.Style
	Danger  lipgloss.Style
}

// NewStyles builds the style set for a background.
func NewStyles(bg Background) Styles {
	base := lipgloss.NewStyle()
	if bg.Color != "" {
		base = base.Background(lipgloss.Color(bg.Color))
	}

	return Styles{
		Screen: base,

		Logo: base.
			Foreground(lipgloss.Color(bg.Text)).
			Bold(true),

		Banner: base.
			Foreground(lipgloss.Color(bg.Text)).
			Bold(true),

		Caption: base.
			Foreground(lipgloss.Color(bg.Text)),

		Muted: base.
			Foreground(lipgloss.Color(bg.Muted)),

		Danger: base.
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
	}
}
