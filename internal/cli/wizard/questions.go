package wizard

import (
	"strconv"

	"github.com/restsnap/restsnap/pkg/models"
)

// DefaultQuestions returns the questions asked by "restsnap new", with
// initial values taken from d.
func DefaultQuestions(d Defaults) []Question {
	pm := d.PackageManager
	if !pm.IsValid() {
		pm = models.DefaultPackageManager
	}

	return []Question{
		{
			ID:          QuestionProjectName,
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Used as the directory name and the package.json name",
			Default:     d.ProjectName,
			Required:    true,
		},
		{
			ID:          QuestionDockerize,
			Type:        QuestionTypeConfirm,
			Title:       "Dockerize the project?",
			Description: "Adds a Dockerfile and docker-compose.yml",
			Default:     strconv.FormatBool(d.Dockerize),
		},
		{
			ID:          QuestionPackageManager,
			Type:        QuestionTypeSelect,
			Title:       "Package manager",
			Description: "Installs dependencies once the project is generated",
			Options:     packageManagerOptions(),
			Default:     string(pm),
		},
	}
}

func packageManagerOptions() []Option {
	return []Option{
		{Label: "npm", Value: string(models.PackageManagerNPM), Desc: "bundled with Node.js"},
		{Label: "yarn", Value: string(models.PackageManagerYarn), Desc: "requires a global yarn install"},
	}
}
