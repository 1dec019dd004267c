// Package project implements the generation pipeline behind "restsnap new":
// request validation, directory materialization, descriptor rewriting,
// dependency installation, and the orchestrator that sequences them.
package project

import (
	"errors"
	"fmt"
	"strings"

	"github.com/restsnap/restsnap/pkg/models"
)

// Sentinel errors for the project package.
var (
	// ErrInvalidRequest indicates the collected answers cannot form a ProjectRequest.
	ErrInvalidRequest = errors.New("invalid project request")

	// ErrTargetExists indicates the target directory is already present.
	ErrTargetExists = errors.New("target directory already exists")

	// ErrStructureCreation indicates a project directory could not be created.
	ErrStructureCreation = errors.New("structure creation failed")

	// ErrDescriptorNotFound indicates the copied package descriptor is missing.
	ErrDescriptorNotFound = errors.New("package descriptor not found")

	// ErrDescriptorParse indicates the package descriptor is not a JSON object.
	ErrDescriptorParse = errors.New("package descriptor is malformed")

	// ErrInstall indicates the package manager failed.
	ErrInstall = errors.New("dependency installation failed")
)

// TargetExistsError reports a pre-existing project root.
type TargetExistsError struct {
	Path string
}

func (e *TargetExistsError) Error() string {
	return fmt.Sprintf("directory %s already exists", e.Path)
}

func (e *TargetExistsError) Is(target error) bool {
	return target == ErrTargetExists
}

// StructureCreationError reports a directory the filesystem refused to create.
type StructureCreationError struct {
	Path string
	Err  error
}

func (e *StructureCreationError) Error() string {
	return fmt.Sprintf("create directory %s: %v", e.Path, e.Err)
}

func (e *StructureCreationError) Unwrap() error { return e.Err }

func (e *StructureCreationError) Is(target error) bool {
	return target == ErrStructureCreation
}

// DescriptorNotFoundError reports that package.json was not copied.
type DescriptorNotFoundError struct {
	Path string
	Err  error
}

func (e *DescriptorNotFoundError) Error() string {
	return fmt.Sprintf("package descriptor %s not found", e.Path)
}

func (e *DescriptorNotFoundError) Unwrap() error { return e.Err }

func (e *DescriptorNotFoundError) Is(target error) bool {
	return target == ErrDescriptorNotFound
}

// DescriptorParseError reports a package.json that is not a JSON object.
type DescriptorParseError struct {
	Path string
	Err  error
}

func (e *DescriptorParseError) Error() string {
	return fmt.Sprintf("parse package descriptor %s: %v", e.Path, e.Err)
}

func (e *DescriptorParseError) Unwrap() error { return e.Err }

func (e *DescriptorParseError) Is(target error) bool {
	return target == ErrDescriptorParse
}

// InstallError reports a failed "<manager> install" run. ExitCode is -1
// when the process could not be started.
type InstallError struct {
	Manager  models.PackageManager
	ExitCode int
	Output   string
	Err      error
}

func (e *InstallError) Error() string {
	var b strings.Builder
	if e.ExitCode >= 0 {
		fmt.Fprintf(&b, "%s install exited with code %d", e.Manager, e.ExitCode)
	} else {
		fmt.Fprintf(&b, "%s install: %v", e.Manager, e.Err)
	}
	if out := strings.TrimSpace(e.Output); out != "" {
		b.WriteString(": ")
		b.WriteString(lastLine(out))
	}
	return b.String()
}

func (e *InstallError) Unwrap() error { return e.Err }

func (e *InstallError) Is(target error) bool {
	return target == ErrInstall
}

// StageError names the pipeline stage that failed.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// lastLine returns the final non-empty line of s.
func lastLine(s string) string {
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
