package config

import (
	"fmt"
	"strings"

	"fmgr/internal/errors"
)

// Collision names the strategy applied when a destination already exists.
type Collision string

const (
	// CollisionOverwrite replaces the existing destination
	CollisionOverwrite Collision = "overwrite"
	// CollisionSkip leaves the existing destination and the source untouched
	CollisionSkip Collision = "skip"
	// CollisionRename writes to name_(N).ext instead
	CollisionRename Collision = "rename"
)

// Format selects how list results are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// LogFormat selects how log lines are written to stderr.
type LogFormat string

const (
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Options is the flat configuration of a single fmgr invocation.
// It is populated from command line flags only.
type Options struct {
	Recursive bool      // list: descend into subdirectories
	Verbose   bool      // log informational messages
	LogFormat LogFormat // text or json log lines
	Pattern   string    // organize: substring filter on file names
	DryRun    bool      // plan operations without touching the disk
	Collision Collision // copy/move/organize: destination exists
	Format    Format    // list: output format
	Long      bool      // list: show sizes
	Match     string    // list: glob filter on base names
	All       bool      // list: include hidden entries
}

// New returns options with defaults applied.
func New() *Options {
	return &Options{
		Collision: CollisionOverwrite,
		Format:    FormatText,
		LogFormat: LogFormatText,
	}
}

var (
	validCollisions = []Collision{CollisionOverwrite, CollisionSkip, CollisionRename}
	validFormats    = []Format{FormatText, FormatJSON, FormatYAML}
	validLogFormats = []LogFormat{LogFormatText, LogFormatJSON}
)

// Validate checks that enumerated options hold known values.
// Empty values are replaced by their defaults.
func (o *Options) Validate() error {
	if o == nil {
		return errors.NewArgumentError("nil options", "", nil)
	}

	if o.Collision == "" {
		o.Collision = CollisionOverwrite
	}
	o.Collision = Collision(strings.ToLower(string(o.Collision)))
	if !containsCollision(o.Collision) {
		return errors.NewArgumentError(
			fmt.Sprintf("invalid collision strategy %q (want one of %s)", o.Collision, joinCollisions()), "", nil)
	}

	if o.Format == "" {
		o.Format = FormatText
	}
	o.Format = Format(strings.ToLower(string(o.Format)))
	if !containsFormat(o.Format) {
		return errors.NewArgumentError(
			fmt.Sprintf("invalid output format %q (want one of %s)", o.Format, joinFormats()), "", nil)
	}

	if o.LogFormat == "" {
		o.LogFormat = LogFormatText
	}
	o.LogFormat = LogFormat(strings.ToLower(string(o.LogFormat)))
	if !containsLogFormat(o.LogFormat) {
		return errors.NewArgumentError(
			fmt.Sprintf("invalid log format %q (want one of %s)", o.LogFormat, joinLogFormats()), "", nil)
	}

	return nil
}

func containsCollision(c Collision) bool {
	for _, v := range validCollisions {
		if v == c {
			return true
		}
	}
	return false
}

func containsFormat(f Format) bool {
	for _, v := range validFormats {
		if v == f {
			return true
		}
	}
	return false
}

func containsLogFormat(f LogFormat) bool {
	for _, v := range validLogFormats {
		if v == f {
			return true
		}
	}
	return false
}

func joinCollisions() string {
	names := make([]string, len(validCollisions))
	for i, c := range validCollisions {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

func joinFormats() string {
	names := make([]string, len(validFormats))
	for i, f := range validFormats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

func joinLogFormats() string {
	names := make([]string, len(validLogFormats))
	for i, f := range validLogFormats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
