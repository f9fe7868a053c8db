package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"fmgr/internal/config"
	"fmgr/internal/errors"
	"fmgr/internal/fileops"
	"fmgr/pkg/types"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newCopyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "copy <source> <destination>",
		Aliases: []string{"cp"},
		Short:   "Copy a file",
		Long: `Copy a file to a new location. Missing parent directories of the
destination are created. If the destination is an existing directory the
file is copied into it under its own name.`,
		Example: `  fmgr copy document.txt backup/document.txt
  fmgr copy photo.jpg albums/`,
		Args: requireArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			res, err := a.ops.Copy(args[0], args[1])
			a.reportTransfer("copy", res, err)
		},
	}
}

func newMoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "move <source> <destination>",
		Aliases: []string{"mv"},
		Short:   "Move or rename a file",
		Long: `Move a file to a new location. A rename is attempted first; across
filesystems the file is copied, verified and the original removed.`,
		Example: `  fmgr move old-file.txt archive/old-file.txt
  fmgr move draft.md final.md`,
		Args: requireArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			res, err := a.ops.Move(args[0], args[1])
			a.reportTransfer("move", res, err)
		},
	}
}

// reportTransfer prints the outcome of a copy or move
func (a *app) reportTransfer(verb string, res types.TransferResult, err error) {
	name := filepath.Base(res.Source)

	switch {
	case err != nil:
		a.printer.Error(fmt.Sprintf("Failed to %s %s: %v", verb, name, err))
		a.logger.WithError(err).Debug("Operation failed")
	case res.Skipped:
		a.printer.Warning(fmt.Sprintf("Skipped %s: %s already exists", name, res.Destination))
	case res.DryRun:
		a.printer.Info(fmt.Sprintf("Would %s %s → %s", verb, res.Source, res.Destination))
	case verb == "copy":
		a.printer.Success(fmt.Sprintf("Copied %s → %s", name, res.Destination))
	default:
		a.printer.Success(fmt.Sprintf("Moved %s → %s", name, res.Destination))
	}
}

func newOrganizeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize <directory> [pattern]",
		Short: "Sort files into subdirectories by extension",
		Long: `Move every regular file directly inside a directory into a
subdirectory named after its lower-cased extension (txt/, pdf/, ...).
Files without an extension go to no-extension/. Hidden files and
subdirectories are left alone.

An optional pattern keeps only files whose name contains it. The
--pattern flag takes precedence over the positional pattern.`,
		Example: `  fmgr organize ~/Downloads
  fmgr organize ~/Downloads .pdf
  fmgr organize ~/Downloads --pattern report -n`,
		Args: requireArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if a.opts.Pattern == "" && len(args) > 1 {
				a.opts.Pattern = args[1]
			}
			a.runOrganize(args[0], a.opts.Pattern)
		},
	}

	cmd.Flags().StringVarP(&a.opts.Pattern, "pattern", "p", "", "Only organize files whose name contains this text")
	return cmd
}

func (a *app) runOrganize(directory, pattern string) {
	if pattern != "" {
		a.printer.Info(fmt.Sprintf("Organizing files matching %q in %s", pattern, directory))
	}

	results, err := a.ops.Organize(directory, pattern)
	if err != nil {
		a.printer.Error(fmt.Sprintf("Failed to organize %s: %v", directory, err))
		a.logger.WithError(err).Debug("Organize failed")
		return
	}

	if len(results) == 0 {
		a.printer.Info("No files needed organization.")
		return
	}

	var moved, skipped, failed int
	for _, res := range results {
		name := filepath.Base(res.SourcePath)
		target := filepath.Join(res.Bucket, filepath.Base(res.DestinationPath))

		switch {
		case res.Failed():
			failed++
			a.printer.Error(fmt.Sprintf("%s: %v", name, res.Error))
		case res.Skipped:
			skipped++
			a.printer.Warning(fmt.Sprintf("Skipped %s: %s already exists", name, target))
		case a.ops.IsDryRun():
			a.printer.Info(fmt.Sprintf("Would move %s → %s", name, target))
		default:
			moved++
			a.printer.Success(fmt.Sprintf("Moved %s → %s", name, target))
		}
	}

	if a.ops.IsDryRun() {
		a.printer.Info(fmt.Sprintf("Dry run complete. %d files would be organized, nothing was moved.", len(results)-failed-skipped))
		return
	}

	summary := fmt.Sprintf("Organization complete for %s (%d moved", directory, moved)
	if skipped > 0 {
		summary += fmt.Sprintf(", %d skipped", skipped)
	}
	if failed > 0 {
		summary += fmt.Sprintf(", %d failed", failed)
	}
	a.printer.Success(summary + ")")
}

func newListCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list <directory>",
		Aliases: []string{"ls"},
		Short:   "List directory contents",
		Long: `List the entries of a directory, sorted by name. With --recursive,
entries of all subdirectories are included with their relative path.
Hidden entries are left out unless --all is given.`,
		Example: `  fmgr list .
  fmgr list ~/Documents --recursive --long
  fmgr list src -r --match "*.go" --format json`,
		Args: requireArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runList(args[0])
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&a.opts.All, "all", "a", false, "Include hidden entries")
	flags.BoolVarP(&a.opts.Long, "long", "l", false, "Show file sizes")
	flags.StringVarP((*string)(&a.opts.Format), "format", "f", string(config.FormatText), "Output format: text, json or yaml")
	flags.StringVarP(&a.opts.Match, "match", "m", "", "Only list entries whose name matches this glob")
	return cmd
}

// runList returns only argument errors; other failures are printed
func (a *app) runList(directory string) error {
	entries, err := a.ops.List(directory, fileops.ListOptions{
		Recursive: a.opts.Recursive,
		Match:     a.opts.Match,
		All:       a.opts.All,
	})
	if err != nil {
		if errors.IsArgument(err) {
			return err
		}
		a.printer.Error(fmt.Sprintf("Failed to list %s: %v", directory, err))
		a.logger.WithError(err).Debug("List failed")
		return nil
	}

	switch a.opts.Format {
	case config.FormatJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to encode entries")
		}
		a.printer.Plain(string(data))
	case config.FormatYAML:
		data, err := yaml.Marshal(entries)
		if err != nil {
			return errors.Wrap(err, "failed to encode entries")
		}
		a.printer.Plain(string(data))
	default:
		a.printEntries(directory, entries)
	}
	return nil
}

func (a *app) printEntries(directory string, entries []types.Entry) {
	a.printer.Header(fmt.Sprintf("📁 Contents of %s:", directory))
	for _, e := range entries {
		icon := "📄"
		if e.IsDir {
			icon = "📁"
		}

		var detail string
		if a.opts.Long && !e.IsDir {
			detail = humanize.Bytes(uint64(e.Size))
		}
		a.printer.Entry(icon, e.Path, detail)
	}
}
