package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// NextStepsTemplate is the name of the embedded post-generation notes.
const NextStepsTemplate = "next-steps.md.tmpl"

// Renderer renders Go text/template files with strict mode enabled.
// Renderer output is shown to the user; it never touches generated files.
type Renderer interface {
	// Render parses the named template and executes it with data.
	// Returns ErrTemplateNotFound for unknown names and
	// ErrMissingTemplateKey when execution fails on missing data.
	Render(templateName string, data any) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with sprig functions and
// missingkey=error.
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	return buf.Bytes(), nil
}

// NextSteps is the data rendered into the next-steps notes.
type NextSteps struct {
	Name           string
	Dockerize      bool
	Installed      bool
	InstallCommand string
	DevCommand     string
	Skipped        []string
}
