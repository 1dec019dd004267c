package template

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

// payloadFS holds the project skeleton. The all: prefix keeps dotfiles
// such as .gitignore and .env.example.
//
//go:embed all:payload
var payloadFS embed.FS

//go:embed manifest.yaml
var manifestYAML []byte

//go:embed notes
var notesFS embed.FS

// EmbeddedTemplates returns the template root compiled into the binary.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(payloadFS, "payload")
	if err != nil {
		return nil, fmt.Errorf("open embedded payload: %w", err)
	}
	return sub, nil
}

// TemplateRoot returns the template source to copy from. An empty dir
// selects the embedded payload; otherwise dir must be an existing directory.
func TemplateRoot(dir string) (fs.FS, error) {
	if dir == "" {
		return EmbeddedTemplates()
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("template root %q: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("template root %q: not a directory", dir)
	}
	return os.DirFS(dir), nil
}

// DefaultTable parses the manifest table compiled into the binary.
func DefaultTable() (*Table, error) {
	return ParseTable(manifestYAML)
}

// Notes returns the embedded next-steps templates.
func Notes() (fs.FS, error) {
	sub, err := fs.Sub(notesFS, "notes")
	if err != nil {
		return nil, fmt.Errorf("open embedded notes: %w", err)
	}
	return sub, nil
}
