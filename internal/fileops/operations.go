// Package fileops implements the file operations behind the fmgr commands:
// copy, move, organize by extension and list.
//
// Every operation runs against an afero.Fs so the same code serves the OS
// filesystem and in-memory filesystems in tests. Operations are sequential
// and single-pass; failures come back as classified errors from
// fmgr/internal/errors and are never retried.
package fileops

import (
	"os"
	"path/filepath"
	"strings"

	"fmgr/internal/config"
	"fmgr/internal/errors"
	"fmgr/internal/log"

	"github.com/spf13/afero"
)

// Operations performs file operations on a filesystem
type Operations struct {
	fs        afero.Fs
	log       *log.Logger
	dryRun    bool
	collision config.Collision
}

// Option configures Operations
type Option func(*Operations)

// WithLogger sets the logger used for informational output
func WithLogger(l *log.Logger) Option {
	return func(o *Operations) {
		if l != nil {
			o.log = l
		}
	}
}

// WithDryRun makes every mutating operation only report what it would do
func WithDryRun(dryRun bool) Option {
	return func(o *Operations) {
		o.dryRun = dryRun
	}
}

// WithCollision sets the strategy used when a destination already exists
func WithCollision(c config.Collision) Option {
	return func(o *Operations) {
		if c != "" {
			o.collision = c
		}
	}
}

// New creates Operations on fs. Without options it logs nothing, touches the
// disk and overwrites existing destinations.
func New(fs afero.Fs, opts ...Option) *Operations {
	o := &Operations{
		fs:        fs,
		log:       log.Discard(),
		collision: config.CollisionOverwrite,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewWithOptions creates Operations configured from command line options
func NewWithOptions(fs afero.Fs, opts *config.Options, l *log.Logger) *Operations {
	return New(fs,
		WithLogger(l),
		WithDryRun(opts.DryRun),
		WithCollision(opts.Collision),
	)
}

// IsDryRun returns whether operations are only simulated
func (o *Operations) IsDryRun() bool {
	return o.dryRun
}

// statSource checks that a copy or move source exists and is not a directory
func (o *Operations) statSource(path string) (os.FileInfo, error) {
	info, err := o.fs.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, errors.NewNotFoundError("source file does not exist", path)
		}
		return nil, errors.NewIOError("cannot access source file", path, err)
	}
	if info.IsDir() {
		return nil, errors.NewIOError("invalid source", path, errors.ErrIsDirectory)
	}
	return info, nil
}

// statDir checks that path exists and is a directory
func (o *Operations) statDir(path string) error {
	info, err := o.fs.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errors.NewNotFoundError("directory does not exist", path)
		}
		return errors.NewIOError("cannot access directory", path, err)
	}
	if !info.IsDir() {
		return errors.NewIOError("invalid directory", path, errors.ErrNotDirectory)
	}
	return nil
}

// destinationFor returns where src lands when written to dst. A destination
// that is an existing directory, or ends with a separator, receives the file
// under its own base name.
func (o *Operations) destinationFor(src, dst string) string {
	if strings.HasSuffix(dst, "/") || strings.HasSuffix(dst, string(filepath.Separator)) {
		return filepath.Join(dst, filepath.Base(src))
	}
	if info, err := o.fs.Stat(dst); err == nil && info.IsDir() {
		return filepath.Join(dst, filepath.Base(src))
	}
	return dst
}

// ensureDir creates dir and its parents when missing
func (o *Operations) ensureDir(dir string) error {
	info, err := o.fs.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.NewIOError("cannot create directory", dir, errors.ErrNotDirectory)
		}
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return errors.NewIOError("cannot access directory", dir, err)
	}

	if err := o.fs.MkdirAll(dir, 0755); err != nil {
		return errors.NewIOError("cannot create directory", dir, err)
	}
	o.log.With(log.F("directory", dir)).Info("Created directory")
	return nil
}

// lstat describes path itself rather than a symlink target when the
// filesystem supports it
func (o *Operations) lstat(path string) (os.FileInfo, error) {
	if l, ok := o.fs.(afero.Lstater); ok {
		info, _, err := l.LstatIfPossible(path)
		return info, err
	}
	return o.fs.Stat(path)
}

// isHidden reports whether a directory entry name is a dotfile
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}
