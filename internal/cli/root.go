package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/restsnap/restsnap/pkg/version"
)

// NewRootCmd builds the restsnap command tree.
func NewRootCmd() *cobra.Command {
	var opts globalOptions
	var deps *Dependencies

	root := &cobra.Command{
		Use:   "restsnap",
		Short: "Generate TypeScript REST API projects",
		Long: `restsnap scaffolds a ready-to-run TypeScript REST API: an Express
server with layered folders, exception classes, lint and test configuration,
optional Docker files, and installed dependencies.`,
		Version:       version.GetVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			d, err := InitDependencies(opts)
			if err != nil {
				return err
			}
			deps = d
			return nil
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("restsnap %s\n", version.GetVersion()))
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return NewExitError(err, ExitInvalidInput)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "Config file (default: $RESTSNAP_CONFIG or ~/.restsnap/config.yaml)")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	pf.BoolVar(&opts.noColor, "no-color", false, "Disable colors and animations")

	getDeps := func() *Dependencies { return deps }
	root.AddCommand(
		newNewCmd(getDeps),
		newManifestCmd(getDeps),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command tree with ctx and prints any error to stderr.
// The caller maps the returned error to an exit code with ExitCodeFromError.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCmd()
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil {
		noColor, _ := root.PersistentFlags().GetBool("no-color")
		_, _ = fmt.Fprintln(root.ErrOrStderr(), formatError(err, noColor))
	}
	return err
}
