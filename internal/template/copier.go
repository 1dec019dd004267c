package template

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/restsnap/restsnap/internal/defs"
	"github.com/restsnap/restsnap/internal/logging"
)

// SkippedSource records a manifest entry whose template source was absent.
type SkippedSource struct {
	Entry  CopyEntry
	Reason string
}

// CopyReport summarizes a CopyAll run.
type CopyReport struct {
	Copied  []string        // Destination paths written, in manifest order.
	Skipped []SkippedSource // Entries whose source was missing.
}

// SkippedPaths returns the source paths of skipped entries.
func (r *CopyReport) SkippedPaths() []string {
	out := make([]string, len(r.Skipped))
	for i, s := range r.Skipped {
		out[i] = s.Entry.Source
	}
	return out
}

// MissingRequired reports whether a required entry was skipped.
func (r *CopyReport) MissingRequired() bool {
	for _, s := range r.Skipped {
		if s.Entry.Required {
			return true
		}
	}
	return false
}

// Warnings renders one human-readable line per skipped entry.
func (r *CopyReport) Warnings() []string {
	out := make([]string, 0, len(r.Skipped))
	for _, s := range r.Skipped {
		msg := fmt.Sprintf("template file %s not found, skipped", s.Entry.Source)
		if s.Entry.Required {
			msg = fmt.Sprintf("required template file %s not found, skipped", s.Entry.Source)
		}
		out = append(out, msg)
	}
	return out
}

// Copier executes a CopyManifest against a template source tree.
type Copier interface {
	// CopyAll copies every entry of m from the template root into root.
	// Missing sources are recorded in the report; any other failure on a
	// present source aborts with *CopyError.
	CopyAll(ctx context.Context, root string, m CopyManifest) (*CopyReport, error)
}

// copier is the concrete implementation of Copier.
type copier struct {
	fsys   fs.FS
	logger *slog.Logger
}

// NewCopier creates a Copier reading from fsys.
// In production fsys comes from go:embed or os.DirFS; in tests use testing/fstest.MapFS.
func NewCopier(fsys fs.FS, logger *slog.Logger) Copier {
	if logger == nil {
		logger = logging.Discard()
	}
	return &copier{fsys: fsys, logger: logger}
}

// CopyAll processes entries one at a time in manifest order. Parent
// directories are not created here; the folder set must already cover them.
func (c *copier) CopyAll(ctx context.Context, root string, m CopyManifest) (*CopyReport, error) {
	root = filepath.Clean(root)
	report := &CopyReport{}

	for _, entry := range m.Entries {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		if err := validateDeployPath(root, entry.Dest); err != nil {
			return report, &CopyError{Entry: entry, Err: err}
		}

		info, err := fs.Stat(c.fsys, entry.Source)
		if errors.Is(err, fs.ErrNotExist) {
			report.Skipped = append(report.Skipped, SkippedSource{Entry: entry, Reason: "source not found"})
			c.logger.Warn("template source missing, skipping",
				"source", entry.Source,
				"required", entry.Required,
			)
			continue
		}
		if err != nil {
			return report, &CopyError{Entry: entry, Err: err}
		}
		if info.IsDir() {
			return report, &CopyError{Entry: entry, Err: fmt.Errorf("source is a directory")}
		}

		destPath := filepath.Join(root, filepath.FromSlash(entry.Dest))
		if err := c.copyFile(entry.Source, destPath, filePerm(entry.Dest)); err != nil {
			return report, &CopyError{Entry: entry, Err: err}
		}

		c.logger.Debug("copied template file", "source", entry.Source, "dest", entry.Dest)
		report.Copied = append(report.Copied, entry.Dest)
	}

	return report, nil
}

// copyFile streams src from the template FS to dest byte-for-byte.
func (c *copier) copyFile(src, dest string, perm fs.FileMode) (err error) {
	in, err := c.fsys.Open(src)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return fmt.Errorf("create destination: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close destination: %w", cerr)
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}

// filePerm returns the mode for a destination; shell scripts stay executable.
func filePerm(dest string) fs.FileMode {
	if strings.HasSuffix(dest, ".sh") {
		return defs.ExecPerm
	}
	return defs.FilePerm
}

// validateDeployPath ensures a manifest destination does not escape projectRoot.
func validateDeployPath(projectRoot, relPath string) error {
	cleaned := filepath.Clean(filepath.FromSlash(relPath))

	if filepath.IsAbs(cleaned) {
		return fmt.Errorf("%w: absolute path %q", ErrPathTraversal, relPath)
	}

	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return fmt.Errorf("%w: parent reference in %q", ErrPathTraversal, relPath)
	}

	absProjectRoot, err := filepath.Abs(projectRoot)
	if err != nil {
		return fmt.Errorf("resolve project root: %w", err)
	}

	absPath := filepath.Join(absProjectRoot, cleaned)
	if !strings.HasPrefix(absPath, absProjectRoot+string(filepath.Separator)) {
		return fmt.Errorf("%w: %q escapes project root", ErrPathTraversal, relPath)
	}

	return nil
}
