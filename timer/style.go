package timer

import "github.com/charmbracelet/lipgloss"

const (
	padding  = 2
	maxWidth = 80
)

type style struct {
	base      lipgloss.Style
	title     lipgloss.Style
	main      lipgloss.Style
	secondary lipgloss.Style
	hint      lipgloss.Style
}

func newStyle(dark bool) style {
	fg := lipgloss.Color("236")
	accent := lipgloss.Color("#5A56E0")
	dim := lipgloss.Color("241")

	if dark {
		fg = lipgloss.Color("252")
		accent = lipgloss.Color("#B4B2FF")
		dim = lipgloss.Color("245")
	}

	return style{
		base: lipgloss.NewStyle().
			Padding(1, padding),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),
		main: lipgloss.NewStyle().
			Bold(true).
			Foreground(fg),
		secondary: lipgloss.NewStyle().
			Foreground(fg),
		hint: lipgloss.NewStyle().
			Foreground(dim),
	}
}
