package fileops

import (
	"path/filepath"
	"sort"
	"strings"

	"fmgr/internal/errors"
	"fmgr/internal/log"
	"fmgr/pkg/types"

	"github.com/spf13/afero"
)

// NoExtensionBucket is the subdirectory for files without an extension
const NoExtensionBucket = "no-extension"

// Organize moves the regular files directly inside directory into one
// subdirectory per lower-cased extension. Hidden files are left in place.
// When pattern is not empty only files whose name contains it are moved.
//
// Only the top level is scanned, so the extension subdirectories themselves
// are never re-bucketed and a second run moves nothing. A failure on one
// file is recorded in its result and the remaining files are still processed.
func (o *Operations) Organize(directory, pattern string) ([]types.OrganizeResult, error) {
	if err := o.statDir(directory); err != nil {
		return nil, err
	}

	entries, err := afero.ReadDir(o.fs, directory)
	if err != nil {
		return nil, errors.NewIOError("cannot read directory", directory, err)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	logger := o.log.With(log.F("directory", directory))
	if pattern != "" {
		logger = logger.With(log.F("pattern", pattern))
	}
	logger.Debugf("Scanning %d entries", len(entries))

	var results []types.OrganizeResult
	// Two names differing only in extension case map to one destination;
	// the later one gets a numbered name instead of replacing the earlier.
	claimed := make(map[string]bool)

	for _, entry := range entries {
		// Skip directories, symlinks and other special files
		if !entry.Mode().IsRegular() {
			continue
		}
		name := entry.Name()
		if isHidden(name) {
			continue
		}
		if pattern != "" && !strings.Contains(name, pattern) {
			continue
		}

		source := filepath.Join(directory, name)
		bucket := Bucket(name)
		dest := filepath.Join(directory, bucket, BucketFileName(name))

		if claimed[dest] {
			unique, err := o.findUniqueDestName(dest)
			if err == nil {
				dest = unique
			}
		}

		result := types.OrganizeResult{
			SourcePath:      source,
			DestinationPath: dest,
			Bucket:          bucket,
		}

		tr, err := o.move(source, entry, dest)
		result.DestinationPath = tr.Destination
		if err != nil {
			result.Error = err
			logger.WithError(err).Warn("Cannot organize file")
		} else {
			result.Skipped = tr.Skipped
			result.Moved = !tr.Skipped && !o.dryRun
			claimed[tr.Destination] = true
		}

		results = append(results, result)
	}

	return results, nil
}

// Bucket returns the subdirectory name a file is organized into: its
// extension, lower-cased and without the dot, or NoExtensionBucket.
func Bucket(name string) string {
	ext := extension(name)
	if ext == "" {
		return NoExtensionBucket
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// BucketFileName returns name with its extension lower-cased
func BucketFileName(name string) string {
	ext := extension(name)
	if ext == "" {
		return name
	}
	return strings.TrimSuffix(name, ext) + strings.ToLower(ext)
}

// extension returns the extension of name including the dot, "" for none
func extension(name string) string {
	ext := filepath.Ext(name)
	if ext == name || ext == "." {
		return ""
	}
	return ext
}
