// Package cli provides the Cobra command tree for restsnap and the
// composition root that wires configuration, logging and UI into the
// generation pipeline.
package cli

import (
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/restsnap/restsnap/internal/config"
	"github.com/restsnap/restsnap/internal/core/project"
	"github.com/restsnap/restsnap/internal/logging"
	"github.com/restsnap/restsnap/internal/template"
	"github.com/restsnap/restsnap/internal/ui"
)

// Dependencies holds the services shared by commands. It is the only
// place where concrete types are instantiated.
type Dependencies struct {
	Config   *config.Config
	Logger   *slog.Logger
	Theme    *ui.Theme
	Headless *ui.HeadlessManager
}

// globalOptions are the persistent root flags.
type globalOptions struct {
	configPath string
	verbose    bool
	noColor    bool
}

// newInstaller builds the dependency installer. Tests replace it with a fake.
var newInstaller = func(logger *slog.Logger) project.Installer {
	return project.NewInstaller(logger)
}

// newHeadlessManager builds the TTY detector. Tests force headless mode.
var newHeadlessManager = ui.NewHeadlessManager

// InitDependencies loads configuration and builds the logger and UI
// services for one invocation.
func InitDependencies(opts globalOptions) (*Dependencies, error) {
	cfg, err := config.NewLoader().Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Verbose: opts.verbose,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if cfg.Source != "" {
		logger.Debug("configuration loaded", "path", cfg.Source)
	}

	return &Dependencies{
		Config:   cfg,
		Logger:   logger,
		Theme:    ui.NewTheme(opts.noColor || cfg.UI.NoColor),
		Headless: newHeadlessManager(),
	}, nil
}

// templateSource resolves the template root and manifest table. A
// non-empty dir overrides the configured templates.dir.
func (d *Dependencies) templateSource(dir string) (fs.FS, *template.Table, error) {
	if dir == "" {
		dir = d.Config.Templates.Dir
	}
	fsys, err := template.TemplateRoot(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	table, err := template.DefaultTable()
	if err != nil {
		return nil, nil, err
	}
	return fsys, table, nil
}
