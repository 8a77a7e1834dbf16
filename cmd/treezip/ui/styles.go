// Package ui provides the visual styling and the interactive browser
// model for the treezip CLI.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorFocus    = lipgloss.Color("#8BC34A") // Lime green
	ColorAncestor = lipgloss.Color("#2196F3") // Blue
	ColorMuted    = lipgloss.Color("#6c7a89")
	ColorBranch   = lipgloss.Color("#4db6ac") // Teal
	ColorError    = lipgloss.Color("#e53935") // Red
	ColorBorder   = lipgloss.Color("#2a3850")
)

// Styles holds the lipgloss styles used by the renderer and browser.
type Styles struct {
	Focus    lipgloss.Style
	Ancestor lipgloss.Style
	Sibling  lipgloss.Style
	Child    lipgloss.Style
	Branch   lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Panel    lipgloss.Style
	Status   lipgloss.Style
}

// DefaultStyles returns the standard treezip styling.
func DefaultStyles() Styles {
	return Styles{
		Focus:    lipgloss.NewStyle().Foreground(ColorFocus).Bold(true),
		Ancestor: lipgloss.NewStyle().Foreground(ColorAncestor),
		Sibling:  lipgloss.NewStyle().Foreground(ColorMuted),
		Child:    lipgloss.NewStyle(),
		Branch:   lipgloss.NewStyle().Foreground(ColorBranch),
		Muted:    lipgloss.NewStyle().Foreground(ColorMuted),
		Error:    lipgloss.NewStyle().Foreground(ColorError),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),
		Status: lipgloss.NewStyle().Foreground(ColorMuted).Italic(true),
	}
}
