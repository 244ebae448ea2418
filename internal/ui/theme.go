package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme bundles the styles, border, and grid glyphs the renderers pull from.
type Theme struct {
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	XMark    lipgloss.Style
	OMark    lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Winner   lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.Color

	GridH, GridV, GridX string
}

// asciiBorder mirrors lipgloss.NormalBorder for terminals without box
// drawing glyphs.
var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

// ByName resolves a theme by name. Unknown names fall back to classic.
// "auto" picks mono on terminals without color support.
func ByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Title:       lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
			Muted:       lipgloss.NewStyle().Faint(true),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			XMark:       lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
			OMark:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
			Cursor:      lipgloss.NewStyle().Reverse(true).Bold(true),
			Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
			Winner:      lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
			GridH:       "─", GridV: "│", GridX: "┼",
		}
	case "mono":
		return Theme{
			Title:       lipgloss.NewStyle().Bold(true),
			Muted:       lipgloss.NewStyle(),
			Accent:      lipgloss.NewStyle(),
			XMark:       lipgloss.NewStyle(),
			OMark:       lipgloss.NewStyle(),
			Cursor:      lipgloss.NewStyle().Reverse(true),
			Selected:    lipgloss.NewStyle().Reverse(true),
			Winner:      lipgloss.NewStyle().Bold(true),
			Border:      asciiBorder,
			GridH:       "-", GridV: "|", GridX: "+",
		}
	case "auto":
		if termenv.ColorProfile() == termenv.Ascii {
			return ByName("mono")
		}
		return ByName("classic")
	default: // classic
		return Theme{
			Title:       lipgloss.NewStyle().Bold(true),
			Muted:       lipgloss.NewStyle().Faint(true),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			XMark:       lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
			OMark:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
			Cursor:      lipgloss.NewStyle().Bold(true).Reverse(true),
			Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
			Winner:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),
			GridH:       "─", GridV: "│", GridX: "┼",
		}
	}
}
