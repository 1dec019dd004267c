package project

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/restsnap/restsnap/pkg/models"
)

// ProjectRequest is the validated answer set for one generation run.
// The name is an opaque path segment; anything the filesystem rejects
// surfaces as a StructureCreationError later.
type ProjectRequest struct {
	Name           string
	Dockerize      bool
	PackageManager models.PackageManager
}

// NewRequest builds a ProjectRequest from raw answers. The name is trimmed
// and NFC-normalized; an empty name or unknown manager is rejected with
// ErrInvalidRequest.
func NewRequest(name string, dockerize bool, pm string) (ProjectRequest, error) {
	name = norm.NFC.String(strings.TrimSpace(name))
	if name == "" {
		return ProjectRequest{}, fmt.Errorf("%w: project name is required", ErrInvalidRequest)
	}

	manager, err := models.ParsePackageManager(strings.ToLower(strings.TrimSpace(pm)))
	if err != nil {
		return ProjectRequest{}, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	return ProjectRequest{
		Name:           name,
		Dockerize:      dockerize,
		PackageManager: manager,
	}, nil
}
