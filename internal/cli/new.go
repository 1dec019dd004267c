package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/restsnap/restsnap/internal/cli/wizard"
	"github.com/restsnap/restsnap/internal/core/project"
	"github.com/restsnap/restsnap/internal/template"
	"github.com/restsnap/restsnap/internal/ui"
	"github.com/restsnap/restsnap/pkg/models"
	"github.com/restsnap/restsnap/pkg/version"
)

// nextStepsWidth is the wrap width for the rendered notes.
const nextStepsWidth = 80

type newOptions struct {
	docker         bool
	packageManager string
	yes            bool
	skipInstall    bool
	templatesDir   string
}

func newNewCmd(getDeps func() *Dependencies) *cobra.Command {
	var opts newOptions

	cmd := &cobra.Command{
		Use:   "new [project-name]",
		Short: "Generate a new TypeScript REST API project",
		Long: `Generate a new TypeScript REST API project in ./<project-name>.

Answers not given as flags are asked interactively. With --yes, or when
stdin is not a terminal, configured defaults are used instead.`,
		Example: `  restsnap new
  restsnap new demo-api --docker -p yarn
  restsnap new demo-api --yes --skip-install`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, getDeps(), opts, args)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.docker, "docker", false, "Include Dockerfile and docker-compose.yml")
	f.StringVarP(&opts.packageManager, "package-manager", "p", "",
		fmt.Sprintf("Package manager (%s)", joinManagers()))
	f.BoolVarP(&opts.yes, "yes", "y", false, "Accept defaults without prompting")
	f.BoolVar(&opts.skipInstall, "skip-install", false, "Do not install dependencies")
	f.StringVar(&opts.templatesDir, "templates", "", "Copy templates from this directory instead of the built-in set")
	return cmd
}

func runNew(cmd *cobra.Command, deps *Dependencies, opts newOptions, args []string) error {
	ctx := cmd.Context()
	logger := deps.Logger
	out := cmd.OutOrStdout()

	pm := strings.ToLower(strings.TrimSpace(opts.packageManager))
	overrides := wizard.Overrides{PackageManager: pm}
	if len(args) > 0 {
		overrides.ProjectName = args[0]
	}
	if cmd.Flags().Changed("docker") {
		overrides.Dockerize = &opts.docker
	}
	if pm != "" && !models.PackageManager(pm).IsValid() {
		return NewExitError(fmt.Errorf("%w: unknown package manager %q (want %s)",
			ErrInvalidInput, opts.packageManager, joinManagers()), ExitInvalidInput)
	}

	defaults := wizard.Defaults{
		ProjectName:    deps.Config.Defaults.ProjectName,
		Dockerize:      deps.Config.Defaults.Dockerize,
		PackageManager: deps.Config.Defaults.PackageManager,
	}

	var answers *wizard.Answers
	if opts.yes || deps.Headless.IsHeadless() {
		logger.Debug("resolving answers without prompts", "yes", opts.yes)
		answers = wizard.Resolve(overrides, defaults)
	} else {
		PrintBanner(out, deps.Theme, version.GetVersion())
		a, err := wizard.Collect(ctx, overrides, defaults, deps.Theme.NoColor)
		if errors.Is(err, wizard.ErrCancelled) {
			_, _ = fmt.Fprintln(out, "Generation cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
		answers = a
	}

	req, err := project.NewRequest(answers.ProjectName, answers.Dockerize, answers.PackageManager)
	if err != nil {
		return err
	}

	fsys, table, err := deps.templateSource(opts.templatesDir)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	pipeline := project.NewPipeline(
		table,
		template.NewCopier(fsys, logger),
		newInstaller(logger),
		logger,
		project.Options{
			SkipInstall: opts.skipInstall || deps.Config.Install.Skip,
			Sink:        ui.NewProgressSink(deps.Theme, deps.Headless, out),
		},
	)

	res, err := pipeline.Run(ctx, workDir, req)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, ui.ResultCard(deps.Theme, res))

	notes, err := ui.RenderNextSteps(deps.Theme, ui.NextStepsData(res), nextStepsWidth)
	if err != nil {
		logger.Warn("next steps unavailable", "error", err)
		return nil
	}
	_, _ = fmt.Fprint(out, notes)
	return nil
}

func joinManagers() string {
	managers := models.ValidPackageManagers()
	names := make([]string, len(managers))
	for i, pm := range managers {
		names[i] = string(pm)
	}
	return strings.Join(names, ", ")
}
