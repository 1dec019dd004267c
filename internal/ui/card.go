package ui

import (
	"fmt"
	"strings"

	"github.com/restsnap/restsnap/internal/core/project"
)

// ResultCard summarizes a successful run.
func ResultCard(theme *Theme, res *project.Result) string {
	var b strings.Builder
	b.WriteString(theme.Success(glyphOK) + " " + theme.Primary("Project "+res.Request.Name+" created"))
	b.WriteString("\n\n")

	rows := [][2]string{
		{"Location", res.Root},
		{"Package manager", string(res.Request.PackageManager)},
		{"Docker", yesNo(res.Request.Dockerize)},
	}
	if res.Copy != nil {
		rows = append(rows, [2]string{"Files", fmt.Sprintf("%d copied, %d skipped", len(res.Copy.Copied), len(res.Copy.Skipped))})
	}
	switch {
	case res.InstallSkipped:
		rows = append(rows, [2]string{"Dependencies", "not installed"})
	case res.Install != nil:
		rows = append(rows, [2]string{"Dependencies", "installed"})
	}

	for i, r := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s %s", theme.Muted(fmt.Sprintf("%-16s", r[0]+":")), r[1])
	}

	if len(res.Warnings) > 0 {
		b.WriteString("\n")
		for _, w := range res.Warnings {
			b.WriteString("\n" + theme.Warning(glyphWarning+" "+w))
		}
	}
	return theme.Card(b.String())
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
