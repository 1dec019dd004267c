package template

import (
	"errors"
	"fmt"
)

// Sentinel errors for the template package.
var (
	// ErrTemplateNotFound indicates a named template does not exist in the source FS.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrPathTraversal indicates a manifest path escapes the project root.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrInvalidManifest indicates the manifest table is malformed or inconsistent.
	ErrInvalidManifest = errors.New("invalid manifest")

	// ErrCopy indicates a present template source could not be copied.
	ErrCopy = errors.New("template copy failed")

	// ErrMissingTemplateKey indicates a rendered template referenced unknown data.
	ErrMissingTemplateKey = errors.New("missing template key")
)

// CopyError reports a fatal failure while copying one manifest entry.
type CopyError struct {
	Entry CopyEntry
	Err   error
}

// Error implements the error interface.
func (e *CopyError) Error() string {
	return fmt.Sprintf("copy %s -> %s: %v", e.Entry.Source, e.Entry.Dest, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *CopyError) Unwrap() error {
	return e.Err
}

// Is reports ErrCopy so callers can match the failure class.
func (e *CopyError) Is(target error) bool {
	return target == ErrCopy
}
