package ui

import (
	"fmt"

	"github.com/charmbracelet/glamour"

	"github.com/restsnap/restsnap/internal/core/project"
	"github.com/restsnap/restsnap/internal/template"
)

// NextStepsData derives the next-steps notes from a finished run.
func NextStepsData(res *project.Result) template.NextSteps {
	pm := res.Request.PackageManager
	data := template.NextSteps{
		Name:           res.Request.Name,
		Dockerize:      res.Request.Dockerize,
		Installed:      res.Install != nil,
		InstallCommand: pm.Binary() + " install",
		DevCommand:     pm.RunScript("dev"),
	}
	if res.Copy != nil {
		data.Skipped = res.Copy.SkippedPaths()
	}
	return data
}

// RenderNextSteps renders the embedded next-steps notes as terminal
// markdown wrapped at width columns. Colorless themes use glamour's
// notty style.
func RenderNextSteps(theme *Theme, data template.NextSteps, width int) (string, error) {
	notes, err := template.Notes()
	if err != nil {
		return "", err
	}
	md, err := template.NewRenderer(notes).Render(template.NextStepsTemplate, data)
	if err != nil {
		return "", fmt.Errorf("render next steps: %w", err)
	}

	style := glamour.WithAutoStyle()
	if theme.NoColor {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(string(md))
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}
