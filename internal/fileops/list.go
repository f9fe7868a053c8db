package fileops

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"fmgr/internal/errors"
	"fmgr/internal/log"
	"fmgr/pkg/types"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/gobwas/glob"
	"github.com/spf13/afero"
)

// ListOptions controls List
type ListOptions struct {
	// Recursive includes entries of all subdirectories
	Recursive bool
	// Match, when set, keeps only entries whose base name matches this glob
	Match string
	// All includes hidden entries and the contents of hidden directories
	All bool
}

// Glob patterns used to enumerate a directory
const (
	shallowPattern   = "*"
	recursivePattern = "**/*"
)

// List returns the entries of directory sorted lexicographically by their
// slash-separated path relative to directory. An empty directory yields an
// empty slice and no error. Hidden entries are left out unless opts.All is set.
func (o *Operations) List(directory string, opts ListOptions) ([]types.Entry, error) {
	if err := o.statDir(directory); err != nil {
		return nil, err
	}

	var matcher glob.Glob
	if opts.Match != "" {
		g, err := glob.Compile(opts.Match)
		if err != nil {
			return nil, errors.NewArgumentError(fmt.Sprintf("invalid match pattern %q", opts.Match), "", err)
		}
		matcher = g
	}

	pattern := shallowPattern
	if opts.Recursive {
		pattern = recursivePattern
	}

	paths, err := doublestar.Glob(o.dirFS(directory), pattern, doublestar.WithFailOnIOErrors(), doublestar.WithNoFollow())
	if err != nil {
		return nil, errors.NewIOError("cannot list directory", directory, err)
	}
	sort.Strings(paths)

	o.log.With(log.F("directory", directory), log.F("pattern", pattern)).Debugf("Matched %d entries", len(paths))

	entries := make([]types.Entry, 0, len(paths))
	for _, p := range paths {
		if !opts.All && hasHiddenSegment(p) {
			continue
		}
		if matcher != nil && !matcher.Match(path.Base(p)) {
			continue
		}

		full := filepath.Join(directory, filepath.FromSlash(p))
		info, err := o.lstat(full)
		if err != nil {
			return nil, errors.NewIOError("cannot stat entry", full, err)
		}

		entry := types.Entry{
			Path:    p,
			IsDir:   info.IsDir(),
			ModTime: info.ModTime(),
		}
		if !entry.IsDir {
			entry.Size = info.Size()
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// hasHiddenSegment reports whether any element of a slash-separated path is
// hidden
func hasHiddenSegment(p string) bool {
	for _, seg := range strings.Split(p, "/") {
		if isHidden(seg) {
			return true
		}
	}
	return false
}

// dirFS exposes directory as an io/fs filesystem rooted at it
func (o *Operations) dirFS(directory string) fs.FS {
	// BasePathFs rejects every name under a "." base
	if filepath.Clean(directory) == "." {
		return afero.NewIOFS(o.fs)
	}
	return afero.NewIOFS(afero.NewBasePathFs(o.fs, directory))
}
