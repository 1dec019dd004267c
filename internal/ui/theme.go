// Package ui renders restsnap's terminal output: stage progress, the
// result card and the next-steps notes. Every component has a headless
// rendition for pipes and CI.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colors is the palette shared by all UI components.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Warning   string
	Error     string
	Muted     string
	Border    string
}

// Theme carries the palette and the no-color switch.
type Theme struct {
	NoColor bool
	Colors  Colors
}

// NewTheme returns the default restsnap theme.
func NewTheme(noColor bool) *Theme {
	return &Theme{
		NoColor: noColor,
		Colors: Colors{
			Primary:   "#2E86AB",
			Secondary: "#A23B72",
			Success:   "#10B981",
			Warning:   "#F59E0B",
			Error:     "#EF4444",
			Muted:     "#9CA3AF",
			Border:    "#4B5563",
		},
	}
}

func (t *Theme) style(color string) lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// Primary renders s in the accent color, bold.
func (t *Theme) Primary(s string) string {
	return t.style(t.Colors.Primary).Bold(!t.NoColor).Render(s)
}

// Success renders s in the success color.
func (t *Theme) Success(s string) string { return t.style(t.Colors.Success).Render(s) }

// Warning renders s in the warning color.
func (t *Theme) Warning(s string) string { return t.style(t.Colors.Warning).Render(s) }

// Error renders s in the error color.
func (t *Theme) Error(s string) string { return t.style(t.Colors.Error).Render(s) }

// Muted renders s in the muted color.
func (t *Theme) Muted(s string) string { return t.style(t.Colors.Muted).Render(s) }

// Card wraps body in a rounded border. Without color the body is only
// indented.
func (t *Theme) Card(body string) string {
	if t.NoColor {
		lines := strings.Split(body, "\n")
		for i, l := range lines {
			lines[i] = "  " + l
		}
		return strings.Join(lines, "\n")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Colors.Border)).
		Padding(0, 2).
		Render(body)
}

// Status glyphs.
const (
	glyphOK      = "✓"
	glyphFail    = "✗"
	glyphSkip    = "-"
	glyphWarning = "!"
)
