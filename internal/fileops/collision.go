package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fmgr/internal/config"
	"fmgr/internal/errors"
	"fmgr/internal/log"
)

// maxRenameAttempts bounds the search for a free name_(N).ext
const maxRenameAttempts = 1000

// handleCollision implements collision resolution strategies.
// It returns the final destination path. skip is true when the file must be
// left where it is.
func (o *Operations) handleCollision(dest string) (final string, skip bool, err error) {
	info, err := o.fs.Stat(dest)
	if errors.Is(err, os.ErrNotExist) {
		return dest, false, nil
	}
	if err != nil {
		return "", false, errors.NewIOError("cannot check destination", dest, err)
	}
	if info.IsDir() {
		return "", false, errors.NewIOError("invalid destination", dest, errors.ErrIsDirectory)
	}

	logger := o.log.With(log.F("destination", dest), log.F("strategy", string(o.collision)))

	switch o.collision {
	case config.CollisionSkip:
		logger.Info("Destination exists, skipping")
		return "", true, nil

	case config.CollisionOverwrite:
		logger.Debug("Destination exists, overwriting")
		return dest, false, nil

	case config.CollisionRename:
		final, err := o.findUniqueDestName(dest)
		if err != nil {
			return "", false, err
		}
		logger.With(log.F("renamed", final)).Info("Destination exists, renaming")
		return final, false, nil

	default:
		return "", false, errors.NewArgumentError(
			fmt.Sprintf("unknown collision strategy: %s", o.collision), "", nil)
	}
}

// findUniqueDestName finds a unique filename by adding counter to the basename
func (o *Operations) findUniqueDestName(originalPath string) (string, error) {
	ext := filepath.Ext(originalPath)
	if ext == filepath.Base(originalPath) {
		ext = ""
	}
	base := strings.TrimSuffix(originalPath, ext)

	for counter := 1; counter <= maxRenameAttempts; counter++ {
		newName := fmt.Sprintf("%s_(%d)%s", base, counter, ext)

		if _, err := o.fs.Stat(newName); errors.Is(err, os.ErrNotExist) {
			return newName, nil
		}
	}

	return "", errors.NewIOError(
		fmt.Sprintf("no free name after %d attempts", maxRenameAttempts), originalPath, nil)
}
