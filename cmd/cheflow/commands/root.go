// Package commands implements the CLI commands for cheflow.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cheflow/internal/app"
	"go.trai.ch/cheflow/internal/build"
	"go.trai.ch/cheflow/internal/core/domain"
	"go.trai.ch/cheflow/internal/ui/report"
	"go.trai.ch/cheflow/internal/ui/style"
)

// CLI represents the command line interface for cheflow.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	opts    app.Options
}

// Application represents the application logic interface.
type Application interface {
	ConfigureLogging(opts app.Options)
	Bump(ctx context.Context, opts app.Options, level string) (from, to domain.SemanticVersion, err error)
	Info(ctx context.Context, opts app.Options, infoOpts app.InfoOptions) (*app.Report, error)
	Upload(ctx context.Context, opts app.Options) error
	Apply(ctx context.Context, opts app.Options, label string, yes bool) (domain.LockTarget, error)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:           "cheflow",
		Short:         "Release workflow for Chef cookbooks",
		Long:          "Classify, upload and bump cookbook versions and lock node environments to a Berksfile.lock.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          cobra.NoArgs,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			c.app.ConfigureLogging(c.opts)
		},
		RunE: c.runDefault,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// Persistent flags come first so -v stays with --verbose.
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.opts.ConfigPath, "config", "", "Path to the cheflow configuration file")
	flags.StringVarP(&c.opts.Berksfile, "berksfile", "b", "", "Path to a Berksfile to operate off of")
	flags.BoolVarP(&c.opts.Verbose, "verbose", "v", false, "Output debug information")
	flags.StringVar(&c.opts.LogFormat, "log-format", "", "Log format: pretty or json (default from configuration)")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newVersionCmd())
	rootCmd.AddCommand(c.newBumpCmd())
	rootCmd.AddCommand(c.newInfoCmd())
	rootCmd.AddCommand(c.newUploadCmd())
	rootCmd.AddCommand(c.newApplyCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// runDefault prints the version, the cookbook info and the help, separated by rules.
func (c *CLI) runDefault(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	printVersion(out)
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, style.Rule)

	r, err := c.app.Info(cmd.Context(), c.opts, app.InfoOptions{})
	if err != nil {
		return err
	}
	if err := report.Render(out, r, report.FormatText); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, style.Rule)
	_, _ = fmt.Fprintln(out)
	return cmd.Help()
}
