package fileops

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"fmgr/internal/errors"
	"fmgr/internal/log"
	"fmgr/pkg/types"

	"github.com/spf13/afero"
)

// Move moves source to destination.
//
// A rename is tried first and is atomic on a single volume. When the rename
// crosses volumes the file is copied to a temporary name beside the
// destination, verified, the source is removed and the copy is renamed into
// place. If the source cannot be removed the copy is discarded, so a failed
// move never leaves the file in two places.
func (o *Operations) Move(source, destination string) (types.TransferResult, error) {
	info, err := o.statSource(source)
	if err != nil {
		return types.TransferResult{
			Source:      source,
			Destination: destination,
			Method:      types.MethodRename,
			DryRun:      o.dryRun,
		}, err
	}
	return o.move(source, info, o.destinationFor(source, destination))
}

// move moves an already checked source to the exact path dest
func (o *Operations) move(source string, info os.FileInfo, dest string) (types.TransferResult, error) {
	res := types.TransferResult{
		Source:      source,
		Destination: dest,
		Method:      types.MethodRename,
		DryRun:      o.dryRun,
	}

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
		logger.Info("Would move file")
		return res, nil
	}

	if err := o.ensureDir(filepath.Dir(final)); err != nil {
		return res, err
	}

	err = o.fs.Rename(source, final)
	if err == nil {
		logger.Info("Moved file")
		return res, nil
	}
	if !isCrossDevice(err) {
		return res, errors.NewIOError("cannot move file", source, err)
	}

	logger.Debug("Rename crosses devices, falling back to copy")
	res.Method = types.MethodCopy
	if err := o.copyAcross(source, final, info.Mode().Perm()); err != nil {
		return res, err
	}

	logger.With(log.F("method", string(res.Method))).Info("Moved file")
	return res, nil
}

// copyAcross moves src to dst through a verified temporary copy
func (o *Operations) copyAcross(src, dst string, perm os.FileMode) error {
	data, err := afero.ReadFile(o.fs, src)
	if err != nil {
		return errors.NewIOError("cannot read source file", src, err)
	}

	tmp, err := afero.TempFile(o.fs, filepath.Dir(dst), "."+filepath.Base(dst)+".fmgr-*")
	if err != nil {
		return errors.NewIOError("cannot create temporary file", filepath.Dir(dst), err)
	}
	tmpName := tmp.Name()

	_, werr := tmp.Write(data)
	cerr := tmp.Close()
	if werr != nil || cerr != nil {
		o.discard(tmpName)
		if werr == nil {
			werr = cerr
		}
		return errors.NewIOError("cannot write temporary file", tmpName, werr)
	}
	if err := o.fs.Chmod(tmpName, perm); err != nil {
		o.log.WithError(err).With(log.F("path", tmpName)).Warn("Cannot set permissions on copy")
	}

	written, err := afero.ReadFile(o.fs, tmpName)
	if err != nil || !bytes.Equal(written, data) {
		o.discard(tmpName)
		return errors.NewFileError(errors.ErrVerifyMismatch.Error(), dst, errors.IOFailure, err)
	}

	if err := o.fs.Remove(src); err != nil {
		o.discard(tmpName)
		return errors.NewIOError("cannot remove source file, move abandoned", src, err)
	}

	if err := o.fs.Rename(tmpName, dst); err != nil {
		return errors.NewIOError(fmt.Sprintf("source removed but copy left at %s", tmpName), dst, err)
	}
	return nil
}

// discard removes a temporary file, logging rather than returning failures
func (o *Operations) discard(path string) {
	if err := o.fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		o.log.WithError(err).With(log.F("path", path)).Warn("Cannot remove temporary file")
	}
}

func isCrossDevice(err error) bool {
	return errors.Is(err, syscall.EXDEV)
}
