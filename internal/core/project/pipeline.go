package project

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/restsnap/restsnap/internal/logging"
	"github.com/restsnap/restsnap/internal/template"
)

// Options tunes a Pipeline run.
type Options struct {
	// SkipInstall reports the install stage as skipped instead of running it.
	SkipInstall bool

	// Sink receives stage events. Nil discards them.
	Sink ProgressSink
}

// Result describes a finished (possibly partial) run.
type Result struct {
	Root           string
	Request        ProjectRequest
	Folders        []string
	Copy           *template.CopyReport
	Install        *InstallResult
	InstallSkipped bool
	Warnings       []string
}

// Pipeline sequences the generation stages for one project.
type Pipeline struct {
	table     *template.Table
	copier    template.Copier
	installer Installer
	sink      ProgressSink
	opts      Options
	logger    *slog.Logger
}

// NewPipeline wires a Pipeline from its collaborators.
func NewPipeline(table *template.Table, copier template.Copier, installer Installer, logger *slog.Logger, opts Options) *Pipeline {
	if logger == nil {
		logger = logging.Discard()
	}
	sink := opts.Sink
	if sink == nil {
		sink = NopSink{}
	}
	return &Pipeline{
		table:     table,
		copier:    copier,
		installer: installer,
		sink:      sink,
		opts:      opts,
		logger:    logger,
	}
}

// stageFunc runs one stage and returns a one-line summary on success.
type stageFunc func(ctx context.Context) (string, error)

// Run generates req.Name under workDir. Stages run in order and the first
// failure stops the run; nothing already written is rolled back. The
// returned Result is non-nil even on failure and reflects the stages that
// completed.
func (p *Pipeline) Run(ctx context.Context, workDir string, req ProjectRequest) (*Result, error) {
	root := filepath.Join(workDir, req.Name)
	manifest := p.table.Resolve(req.Dockerize)
	result := &Result{Root: root, Request: req}

	p.logger.Info("generating project",
		"root", root,
		"dockerize", req.Dockerize,
		"package_manager", string(req.PackageManager),
		"entries", manifest.Len(),
	)

	stages := []struct {
		stage Stage
		run   stageFunc
	}{
		{StageCheckTarget, func(context.Context) (string, error) {
			return checkTarget(root)
		}},
		{StageMaterialize, func(context.Context) (string, error) {
			folders, err := Materialize(root, p.table.FolderSet())
			result.Folders = folders
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("created %d directories", len(folders)), nil
		}},
		{StageCopy, func(ctx context.Context) (string, error) {
			report, err := p.copier.CopyAll(ctx, root, manifest)
			result.Copy = report
			if report != nil {
				result.Warnings = append(result.Warnings, report.Warnings()...)
			}
			if err != nil {
				return "", err
			}
			return copySummary(report), nil
		}},
		{StageDescriptor, func(context.Context) (string, error) {
			if err := RewriteDescriptor(root, req.Name); err != nil {
				return "", err
			}
			return fmt.Sprintf("set name to %q", req.Name), nil
		}},
		{StageInstall, func(ctx context.Context) (string, error) {
			res, err := p.installer.Install(ctx, root, req.PackageManager)
			if err != nil {
				return "", err
			}
			result.Install = res
			if stderr := strings.TrimSpace(res.Stderr); stderr != "" {
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("%s install reported: %s", req.PackageManager, lastLine(stderr)))
			}
			return fmt.Sprintf("%s install finished in %s", req.PackageManager, res.Duration.Round(100*time.Millisecond)), nil
		}},
	}

	for _, s := range stages {
		if s.stage == StageInstall && p.opts.SkipInstall {
			result.InstallSkipped = true
			p.sink.Skipped(s.stage, "--skip-install")
			p.logger.Debug("stage skipped", "stage", string(s.stage))
			continue
		}

		if err := ctx.Err(); err != nil {
			p.sink.Failed(s.stage, err)
			return result, &StageError{Stage: s.stage, Err: err}
		}

		p.sink.Started(s.stage)
		summary, err := s.run(ctx)
		if err != nil {
			p.sink.Failed(s.stage, err)
			p.logger.Error("stage failed", "stage", string(s.stage), "error", err)
			return result, &StageError{Stage: s.stage, Err: err}
		}
		p.sink.Succeeded(s.stage, summary)
		p.logger.Debug("stage finished", "stage", string(s.stage), "summary", summary)
	}

	return result, nil
}

// checkTarget refuses to proceed when anything already occupies root.
func checkTarget(root string) (string, error) {
	_, err := os.Lstat(root)
	switch {
	case err == nil:
		return "", &TargetExistsError{Path: root}
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Sprintf("%s is available", root), nil
	default:
		return "", fmt.Errorf("inspect target %s: %w", root, err)
	}
}

func copySummary(r *template.CopyReport) string {
	s := fmt.Sprintf("copied %d files", len(r.Copied))
	if n := len(r.Skipped); n > 0 {
		s += fmt.Sprintf(", skipped %d missing", n)
	}
	return s
}
