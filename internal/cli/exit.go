package cli

import (
	"context"
	"errors"

	"github.com/restsnap/restsnap/internal/config"
	"github.com/restsnap/restsnap/internal/core/project"
	"github.com/restsnap/restsnap/internal/template"
)

// Exit codes returned by the restsnap binary.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitInvalidInput indicates bad flags, answers or configuration.
	ExitInvalidInput = 2

	// ExitTargetExists indicates the project directory already exists.
	ExitTargetExists = 3

	// ExitGenerationFailed indicates the project tree could not be written.
	ExitGenerationFailed = 4

	// ExitInstallFailed indicates the package manager failed.
	ExitInstallFailed = 5

	// ExitInterrupted indicates the run was cancelled by a signal.
	ExitInterrupted = 130
)

// ErrInvalidInput marks errors caused by user input.
var ErrInvalidInput = errors.New("invalid input")

// ExitError wraps an error with an exit code.
type ExitError struct {
	Err  error
	Code int
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given error and exit code.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{Err: err, Code: code}
}

// ExitCodeFromError determines the exit code for an error returned by Execute.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case errors.Is(err, project.ErrTargetExists):
		return ExitTargetExists
	case errors.Is(err, project.ErrInvalidRequest),
		errors.Is(err, config.ErrInvalidConfig),
		errors.Is(err, config.ErrReadConfig),
		errors.Is(err, ErrInvalidInput):
		return ExitInvalidInput
	case errors.Is(err, project.ErrInstall):
		return ExitInstallFailed
	case errors.Is(err, project.ErrStructureCreation),
		errors.Is(err, project.ErrDescriptorNotFound),
		errors.Is(err, project.ErrDescriptorParse),
		errors.Is(err, template.ErrCopy),
		errors.Is(err, template.ErrPathTraversal):
		return ExitGenerationFailed
	default:
		return ExitGeneralError
	}
}

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitInvalidInput:
		return "Invalid Input"
	case ExitTargetExists:
		return "Target Exists"
	case ExitGenerationFailed:
		return "Generation Failed"
	case ExitInstallFailed:
		return "Install Failed"
	case ExitInterrupted:
		return "Interrupted"
	default:
		return "Unknown"
	}
}
