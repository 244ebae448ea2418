package ui

import "github.com/charmbracelet/lipgloss"

// Panel frames content with the theme border.
func Panel(t Theme, content string) string {
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(content)
}
