package types

// TransferMethod records how a file reached its destination
type TransferMethod string

const (
	// MethodCopy: bytes were read from the source and written to the destination
	MethodCopy TransferMethod = "copy"
	// MethodRename: the filesystem renamed the source in place
	MethodRename TransferMethod = "rename"
)

// TransferResult holds the outcome of a copy or move
type TransferResult struct {
	Source      string         `json:"source" yaml:"source"`
	Destination string         `json:"destination" yaml:"destination"` // Final path after directory and collision resolution
	Method      TransferMethod `json:"method" yaml:"method"`
	Skipped     bool           `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	DryRun      bool           `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
}
