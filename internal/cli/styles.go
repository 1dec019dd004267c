package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/restsnap/restsnap/internal/ui"
)

// CLI output styles.
var (
	cliError  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"})
	cliMuted  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"})
	cliHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "#1F6F8B", Dark: "#2E86AB"})
	cliBorder = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"})
)

const (
	productName = "restsnap"
	tagline     = "TypeScript REST API scaffolding"
)

// PrintBanner writes the startup banner shown before the wizard.
func PrintBanner(w io.Writer, theme *ui.Theme, version string) {
	name := cases.Upper(language.English).String(productName)
	line := theme.Primary(name) + "  " + cliMuted.Render(version)
	if theme.NoColor {
		line = name + "  " + version
	}
	_, _ = fmt.Fprintln(w, theme.Card(line+"\n"+tagline))
	_, _ = fmt.Fprintln(w)
}

// formatError renders err as the final "Error: ..." line.
func formatError(err error, noColor bool) string {
	msg := "Error: " + err.Error()
	if noColor {
		return msg
	}
	return cliError.Render(msg)
}
