package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	tmpl "github.com/restsnap/restsnap/internal/template"
)

func newManifestCmd(getDeps func() *Dependencies) *cobra.Command {
	var docker bool

	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Show the files and folders a new project receives",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps := getDeps()
			t, err := tmpl.DefaultTable()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), renderManifest(t, docker, deps.Theme.NoColor))
			return err
		},
	}
	cmd.Flags().BoolVar(&docker, "docker", false, "Include the Docker entries")
	return cmd
}

// renderManifest formats the resolved manifest as a table followed by the
// folder set.
func renderManifest(t *tmpl.Table, docker, noColor bool) string {
	m := t.Resolve(docker)

	tbl := table.New().
		Headers("SOURCE", "DESTINATION", "WHEN", "REQUIRED")
	if noColor {
		tbl = tbl.Border(lipgloss.NormalBorder())
	} else {
		tbl = tbl.
			Border(lipgloss.RoundedBorder()).
			BorderStyle(cliBorder).
			StyleFunc(func(row, _ int) lipgloss.Style {
				if row == table.HeaderRow {
					return cliHeader.Padding(0, 1)
				}
				return lipgloss.NewStyle().Padding(0, 1)
			})
	}
	for _, e := range m.Entries {
		required := ""
		if e.Required {
			required = "yes"
		}
		tbl.Row(e.Source, e.Dest, string(e.When), required)
	}

	var b strings.Builder
	b.WriteString(tbl.Render())
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Folders (%d):\n", len(t.Folders))
	for _, f := range t.FolderSet() {
		b.WriteString("  " + f + "/\n")
	}
	return b.String()
}
