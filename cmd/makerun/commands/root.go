// Package commands implements the CLI for makerun.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/makerun/internal/app"
	"go.trai.ch/makerun/internal/build"
	"go.trai.ch/makerun/internal/core/domain"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for makerun.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	flags   flags
}

// Application represents the application logic interface.
type Application interface {
	Dispatch(ctx context.Context, req app.Request) error
	Last(ctx context.Context, opts app.Options) error
}

type flags struct {
	configPath    string
	logFormat     string
	verbose       bool
	propagateExit bool
	dryRun        bool
	last          bool
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "makerun [flags] <make_target> <bin_path>",
		Short: "Run a binary through a make target",
		Long: "makerun runs `make <make_target> BIN_PATH=<bin_path>`.\n" +
			"Unless the binary path ends in " + domain.TestBinarySuffix + ", QEMU_ARGS is set to\n" +
			"\"" + domain.DefaultQEMUArgs() + "\".",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          c.validateArgs,
		RunE:          c.run,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))

	fs := rootCmd.Flags()
	// Everything after the make target belongs to the invocation.
	fs.SetInterspersed(false)
	fs.StringVarP(&c.flags.configPath, "config", "c", "", "Path to "+domain.ConfigFileName+" (default: search upwards)")
	fs.BoolVar(&c.flags.propagateExit, "propagate-exit", false, "Exit with make's exit code")
	fs.BoolVarP(&c.flags.dryRun, "dry-run", "n", false, "Print the command without running it")
	fs.StringVar(&c.flags.logFormat, "log-format", "", "Log format: pretty or json")
	fs.BoolVarP(&c.flags.verbose, "verbose", "v", false, "Enable debug logging")
	fs.BoolVar(&c.flags.last, "last", false, "Print the latest run record and exit")

	rootCmd.InitDefaultVersionFlag()
	fs.Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	fs.Lookup("help").Usage = "Show help for command"

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) validateArgs(_ *cobra.Command, args []string) error {
	if c.flags.last {
		if len(args) > 0 {
			return zerr.With(domain.ErrUnexpectedArguments, "received", len(args))
		}
		return nil
	}
	if len(args) < 2 {
		return zerr.With(domain.ErrNotEnoughArguments, "received", len(args))
	}
	return nil
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	opts := app.Options{
		ConfigPath: c.flags.configPath,
		LogFormat:  c.flags.logFormat,
		Verbose:    c.flags.verbose,
	}

	if c.flags.last {
		return c.app.Last(cmd.Context(), opts)
	}

	return c.app.Dispatch(cmd.Context(), app.Request{
		Options:       opts,
		Target:        args[0],
		BinPath:       args[1],
		Extra:         args[2:],
		PropagateExit: c.flags.propagateExit,
		DryRun:        c.flags.dryRun,
	})
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
