package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"fmgr/internal/config"
	"fmgr/internal/errors"
	"fmgr/internal/fileops"
	"fmgr/internal/log"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Env is what a command invocation runs against
type Env struct {
	Fs     afero.Fs
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultEnv is the real filesystem and the process's standard streams
func DefaultEnv() Env {
	return Env{
		Fs:     afero.NewOsFs(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// app holds the state of one invocation: parsed options and the components
// built from them
type app struct {
	env     Env
	opts    *config.Options
	printer *Printer
	logger  *log.Logger
	ops     *fileops.Operations
	started time.Time
}

// setup validates options and builds the logger and operations
func (a *app) setup() error {
	if err := a.opts.Validate(); err != nil {
		return err
	}

	a.logger = log.NewLogger(
		log.WithOutput(a.env.Stderr),
		log.WithVerbose(a.opts.Verbose),
		log.WithJSON(a.opts.LogFormat == config.LogFormatJSON),
	)
	a.ops = fileops.NewWithOptions(a.env.Fs, a.opts, a.logger)
	a.started = time.Now()

	a.logger.With(
		log.F("dry_run", a.opts.DryRun),
		log.F("collision", string(a.opts.Collision)),
	).Debug("Options loaded")
	return nil
}

// finish reports timing in verbose mode
func (a *app) finish() {
	if !a.opts.Verbose || a.started.IsZero() {
		return
	}
	elapsed := float64(time.Since(a.started).Microseconds()) / 1000
	a.printer.Plain(fmt.Sprintf("⚡ Completed in %.2fms", elapsed))
}

// NewRootCmd creates the root command and its subcommands
func NewRootCmd(env Env, version string) *cobra.Command {
	a := &app{
		env:     env,
		opts:    config.New(),
		printer: NewPrinter(env.Stdout, env.Stderr),
	}

	rootCmd := &cobra.Command{
		Use:   "fmgr",
		Short: "Fast file management from the command line",
		Long: `📁 fmgr - fast file management from the command line

Copy and move files, list directories and organize files into
subdirectories by extension.`,
		Example: `  fmgr copy document.txt backup/document.txt
  fmgr move old-file.txt archive/
  fmgr organize ~/Downloads
  fmgr organize ~/Downloads --pattern ".pdf"
  fmgr list . --recursive`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		// No Run: without a subcommand, help is shown
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			a.finish()
		},
	}

	rootCmd.SetOut(env.Stdout)
	rootCmd.SetErr(env.Stderr)
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return errors.NewArgumentError(err.Error(), c.UseLine(), nil)
	})

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&a.opts.Verbose, "verbose", "v", false, "Log each step and report elapsed time")
	flags.StringVar((*string)(&a.opts.LogFormat), "log-format", string(config.LogFormatText), "Log line format: text or json")
	flags.BoolVarP(&a.opts.Recursive, "recursive", "r", false, "list: include entries of all subdirectories (ignored by other commands)")
	flags.BoolVarP(&a.opts.DryRun, "dry-run", "n", false, "Show what would be done without changing anything")
	flags.StringVar((*string)(&a.opts.Collision), "on-conflict", string(config.CollisionOverwrite),
		"What to do when a destination exists: overwrite, skip or rename")

	rootCmd.AddCommand(newCopyCmd(a))
	rootCmd.AddCommand(newMoveCmd(a))
	rootCmd.AddCommand(newOrganizeCmd(a))
	rootCmd.AddCommand(newListCmd(a))

	return rootCmd
}

// Execute runs fmgr with args and returns the process exit status.
// Failed file operations are reported and still exit 0; only argument errors
// exit 1.
func Execute(args []string, env Env, version string) int {
	if args == nil {
		args = []string{}
	}

	rootCmd := NewRootCmd(env, version)
	rootCmd.SetArgs(args)

	if err := rootCmd.Execute(); err != nil {
		p := NewPrinter(env.Stdout, env.Stderr)
		p.Error(err.Error())

		var argErr *errors.ArgumentError
		if errors.As(err, &argErr) && argErr.Usage() != "" {
			p.Hint("Usage: " + argErr.Usage())
		} else {
			p.Hint("Run 'fmgr help' for usage.")
		}
		return 1
	}
	return 0
}

// requireArgs validates that at least n positional arguments are present.
// Extra arguments are ignored.
func requireArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return errors.NewArgumentError(cmd.Name(),
				cmd.CommandPath()+" "+argsSynopsis(cmd), errors.ErrMissingArgument)
		}
		return nil
	}
}

// argsSynopsis returns the positional part of a command's Use line
func argsSynopsis(cmd *cobra.Command) string {
	use := cmd.Use
	for i, r := range use {
		if r == ' ' {
			return use[i+1:]
		}
	}
	return ""
}
