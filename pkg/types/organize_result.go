package types

// OrganizeResult holds the outcome of an organization attempt for a single file
type OrganizeResult struct {
	SourcePath      string `json:"source_path" yaml:"source_path"`
	DestinationPath string `json:"destination_path" yaml:"destination_path"`
	Bucket          string `json:"bucket" yaml:"bucket"`                       // Extension subdirectory the file belongs in
	Moved           bool   `json:"moved" yaml:"moved"`                         // False in dry run mode or when skipped
	Skipped         bool   `json:"skipped,omitempty" yaml:"skipped,omitempty"` // Destination existed and collision strategy is skip
	Error           error  `json:"-" yaml:"-"`
}

// Failed reports whether moving the file failed.
func (r OrganizeResult) Failed() bool {
	return r.Error != nil
}
