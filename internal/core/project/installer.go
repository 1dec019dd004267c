package project

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/restsnap/restsnap/internal/logging"
	"github.com/restsnap/restsnap/pkg/models"
)

// InstallResult captures a successful dependency installation.
type InstallResult struct {
	Manager  models.PackageManager
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Installer installs the dependencies of a generated project.
type Installer interface {
	// Install runs the package manager's install command inside root.
	// Returns *InstallError when the manager cannot be started or exits
	// non-zero. The project tree is never modified on failure.
	Install(ctx context.Context, root string, pm models.PackageManager) (*InstallResult, error)
}

// CommandFunc builds the command for a package manager invocation.
type CommandFunc func(ctx context.Context, name string, args ...string) *exec.Cmd

// InstallerOption configures an Installer.
type InstallerOption func(*processInstaller)

// WithCommandFunc replaces exec.CommandContext.
func WithCommandFunc(fn CommandFunc) InstallerOption {
	return func(i *processInstaller) {
		i.commandFunc = fn
	}
}

// WithLookPath replaces exec.LookPath.
func WithLookPath(fn func(string) (string, error)) InstallerOption {
	return func(i *processInstaller) {
		i.lookPath = fn
	}
}

// processInstaller runs the package manager as a child process.
type processInstaller struct {
	commandFunc CommandFunc
	lookPath    func(string) (string, error)
	logger      *slog.Logger
}

// NewInstaller creates an Installer that shells out to the package manager.
func NewInstaller(logger *slog.Logger, opts ...InstallerOption) Installer {
	if logger == nil {
		logger = logging.Discard()
	}
	i := &processInstaller{
		commandFunc: exec.CommandContext,
		lookPath:    exec.LookPath,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Install runs "<pm> install" with root as the working directory.
func (i *processInstaller) Install(ctx context.Context, root string, pm models.PackageManager) (*InstallResult, error) {
	if !pm.IsValid() {
		return nil, &InstallError{Manager: pm, ExitCode: -1, Err: fmt.Errorf("unsupported package manager %q", pm)}
	}

	bin, err := i.lookPath(pm.Binary())
	if err != nil {
		return nil, &InstallError{
			Manager:  pm,
			ExitCode: -1,
			Err:      fmt.Errorf("%s not found in PATH (%s): %w", pm.Binary(), installHint(pm), err),
		}
	}

	var stdout, stderr bytes.Buffer
	cmd := i.commandFunc(ctx, bin, pm.InstallArgs()...)
	cmd.Dir = root
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	i.logger.Debug("running package manager", "bin", bin, "args", pm.InstallArgs(), "dir", root)

	start := time.Now()
	runErr := cmd.Run()
	elapsed := time.Since(start)

	if runErr != nil {
		installErr := &InstallError{
			Manager:  pm,
			ExitCode: -1,
			Output:   combinedOutput(stdout.String(), stderr.String()),
			Err:      runErr,
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			installErr.Err = fmt.Errorf("%w: %v", ctxErr, runErr)
			return nil, installErr
		}
		var exitErr *exec.ExitError
		if errors.As(runErr, &exitErr) {
			installErr.ExitCode = exitErr.ExitCode()
		}
		return nil, installErr
	}

	i.logger.Debug("package manager finished", "manager", string(pm), "duration", elapsed)

	return &InstallResult{
		Manager:  pm,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: elapsed,
	}, nil
}

// installHint tells the user how to obtain a missing package manager.
func installHint(pm models.PackageManager) string {
	switch pm {
	case models.PackageManagerYarn:
		return "install it with: npm install -g yarn"
	default:
		return "install Node.js from https://nodejs.org"
	}
}

func combinedOutput(stdout, stderr string) string {
	switch {
	case stderr == "":
		return stdout
	case stdout == "":
		return stderr
	default:
		return stdout + "\n" + stderr
	}
}
