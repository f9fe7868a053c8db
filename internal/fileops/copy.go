package fileops

import (
	"os"
	"path/filepath"

	"fmgr/internal/errors"
	"fmgr/internal/log"
	"fmgr/pkg/types"

	"github.com/spf13/afero"
)

// Copy reads source in full and writes it to destination, creating the
// destination's parent directory when needed. An existing destination file is
// handled by the collision strategy; an existing destination directory
// receives the file under its own name.
func (o *Operations) Copy(source, destination string) (types.TransferResult, error) {
	res := types.TransferResult{
		Source:      source,
		Destination: destination,
		Method:      types.MethodCopy,
		DryRun:      o.dryRun,
	}

	info, err := o.statSource(source)
	if err != nil {
		return res, err
	}

	dest := o.destinationFor(source, destination)
	res.Destination = dest
	if samePath(source, dest) {
		o.log.With(log.F("path", source)).Debug("Source and destination are the same, skipping")
		return res, nil
	}

	final, skip, err := o.handleCollision(dest)
	if err != nil {
		return res, err
	}
	if skip {
		res.Skipped = true
		return res, nil
	}
	res.Destination = final

	logger := o.log.With(log.F("source", source), log.F("destination", final))
	if o.dryRun {
		logger.Info("Would copy file")
		return res, nil
	}

	if err := o.ensureDir(filepath.Dir(final)); err != nil {
		return res, err
	}
	if err := o.copyContents(source, final, info.Mode().Perm()); err != nil {
		return res, err
	}

	logger.Info("Copied file")
	return res, nil
}

// copyContents writes the bytes of src to dst, replacing dst
func (o *Operations) copyContents(src, dst string, perm os.FileMode) error {
	data, err := afero.ReadFile(o.fs, src)
	if err != nil {
		return errors.NewIOError("cannot read source file", src, err)
	}
	if err := afero.WriteFile(o.fs, dst, data, perm); err != nil {
		return errors.NewIOError("cannot write destination file", dst, err)
	}
	return nil
}
