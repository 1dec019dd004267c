package project

import (
	"os"
	"path/filepath"

	"github.com/restsnap/restsnap/internal/defs"
)

// Materialize creates root and every folder beneath it. Existing
// directories are left alone, so a second call is a no-op. It returns the
// relative folders ensured, in the order given.
func Materialize(root string, folders []string) ([]string, error) {
	if err := os.MkdirAll(root, defs.DirPerm); err != nil {
		return nil, &StructureCreationError{Path: root, Err: err}
	}

	ensured := make([]string, 0, len(folders))
	for _, dir := range folders {
		full := filepath.Join(root, filepath.FromSlash(dir))
		if err := os.MkdirAll(full, defs.DirPerm); err != nil {
			return ensured, &StructureCreationError{Path: full, Err: err}
		}
		ensured = append(ensured, dir)
	}
	return ensured, nil
}
