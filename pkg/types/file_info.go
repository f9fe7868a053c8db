package types

import "time"

// Entry is a single listed filesystem entry.
type Entry struct {
	Path    string    `json:"path" yaml:"path"` // Relative to the listed directory, slash separated
	IsDir   bool      `json:"is_dir" yaml:"is_dir"`
	Size    int64     `json:"size" yaml:"size"`
	ModTime time.Time `json:"mod_time" yaml:"mod_time"`
}
