package wizard

import "strings"

// Overrides are answers given on the command line. Empty strings and nil
// pointers mean "not given".
type Overrides struct {
	ProjectName    string
	Dockerize      *bool
	PackageManager string
}

// Resolve produces answers without prompting: each value comes from o
// when set, otherwise from d.
func Resolve(o Overrides, d Defaults) *Answers {
	a := &Answers{
		ProjectName:    d.ProjectName,
		Dockerize:      d.Dockerize,
		PackageManager: string(d.PackageManager),
	}
	if name := strings.TrimSpace(o.ProjectName); name != "" {
		a.ProjectName = name
	}
	if o.Dockerize != nil {
		a.Dockerize = *o.Dockerize
	}
	if o.PackageManager != "" {
		a.PackageManager = o.PackageManager
	}
	return a
}

// Pending returns the questions not already answered by o.
func Pending(questions []Question, o Overrides) []Question {
	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		switch {
		case q.ID == QuestionProjectName && strings.TrimSpace(o.ProjectName) != "":
		case q.ID == QuestionDockerize && o.Dockerize != nil:
		case q.ID == QuestionPackageManager && o.PackageManager != "":
		default:
			out = append(out, q)
		}
	}
	return out
}
