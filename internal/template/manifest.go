package template

import (
	"fmt"
	"path"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Condition decides whether a table entry is part of a resolved manifest.
type Condition string

const (
	// Always includes the entry in every manifest.
	Always Condition = "always"

	// WhenDocker includes the entry only for dockerized projects.
	WhenDocker Condition = "docker"
)

// CopyEntry is one source-to-destination copy instruction.
// Paths are slash-separated and relative to the template root and the
// project root respectively.
type CopyEntry struct {
	Source   string    `yaml:"source"`
	Dest     string    `yaml:"dest"`
	When     Condition `yaml:"when"`
	Required bool      `yaml:"required"`
}

// Includes reports whether the entry belongs to a manifest resolved with
// the given dockerize flag.
func (e CopyEntry) Includes(dockerize bool) bool {
	switch e.When {
	case WhenDocker:
		return dockerize
	default:
		return true
	}
}

// CopyManifest is the resolved, ordered list of copies for one run.
type CopyManifest struct {
	Entries []CopyEntry
}

// Len returns the number of entries.
func (m CopyManifest) Len() int {
	return len(m.Entries)
}

// Contains reports whether any entry writes to dest.
func (m CopyManifest) Contains(dest string) bool {
	return slices.ContainsFunc(m.Entries, func(e CopyEntry) bool {
		return e.Dest == dest
	})
}

// Table is the data-driven source of every manifest and the folder set.
type Table struct {
	Folders []string    `yaml:"folders"`
	Files   []CopyEntry `yaml:"files"`
}

// ParseTable decodes and validates a manifest table.
func ParseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	for i := range t.Files {
		if t.Files[i].When == "" {
			t.Files[i].When = Always
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Resolve returns the manifest for a run. Always-entries come first in
// table order, followed by the container entries when dockerize is set.
func (t *Table) Resolve(dockerize bool) CopyManifest {
	entries := make([]CopyEntry, 0, len(t.Files))
	for _, e := range t.Files {
		if e.When == Always {
			entries = append(entries, e)
		}
	}
	for _, e := range t.Files {
		if e.When != Always && e.Includes(dockerize) {
			entries = append(entries, e)
		}
	}
	return CopyManifest{Entries: entries}
}

// FolderSet returns a copy of the directories to materialize.
func (t *Table) FolderSet() []string {
	return slices.Clone(t.Folders)
}

// Validate checks the table invariants: known conditions, relative
// non-escaping paths, unique destinations, and a folder set covering the
// parent directory of every destination.
func (t *Table) Validate() error {
	folders := make(map[string]bool, len(t.Folders))
	for _, f := range t.Folders {
		if err := checkRelative(f); err != nil {
			return fmt.Errorf("%w: folder: %w", ErrInvalidManifest, err)
		}
		folders[path.Clean(f)] = true
	}

	seen := make(map[string]bool, len(t.Files))
	for _, e := range t.Files {
		if e.Source == "" || e.Dest == "" {
			return fmt.Errorf("%w: entry with empty source or dest", ErrInvalidManifest)
		}
		switch e.When {
		case Always, WhenDocker:
		default:
			return fmt.Errorf("%w: %s: unknown condition %q", ErrInvalidManifest, e.Dest, e.When)
		}
		if err := checkRelative(e.Source); err != nil {
			return fmt.Errorf("%w: source: %w", ErrInvalidManifest, err)
		}
		if err := checkRelative(e.Dest); err != nil {
			return fmt.Errorf("%w: dest: %w", ErrInvalidManifest, err)
		}
		dest := path.Clean(e.Dest)
		if seen[dest] {
			return fmt.Errorf("%w: duplicate destination %q", ErrInvalidManifest, e.Dest)
		}
		seen[dest] = true

		if parent := path.Dir(dest); parent != "." && !folders[parent] {
			return fmt.Errorf("%w: folder set does not cover %q (needed by %s)", ErrInvalidManifest, parent, e.Dest)
		}
	}
	return nil
}

// checkRelative rejects absolute paths and parent references.
func checkRelative(p string) error {
	if path.IsAbs(p) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, p)
	}
	cleaned := path.Clean(p)
	if cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, p)
	}
	return nil
}
