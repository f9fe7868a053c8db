// Package errors provides standardized error handling for fmgr.
// It defines a closed set of error kinds, typed errors for file and argument
// failures, and helpers for wrapping and classifying them.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// Common error constants for frequently occurring errors
var (
	ErrNotDirectory    = NewFileError("not a directory", "", IOFailure, nil)
	ErrIsDirectory     = NewFileError("is a directory", "", IOFailure, nil)
	ErrVerifyMismatch  = NewFileError("copy verification failed", "", IOFailure, nil)
	ErrMissingArgument = NewArgumentError("missing required arguments", "", nil)
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// NotFound: a source file or directory does not exist
	NotFound
	// IOFailure: a read, write, delete, mkdir or rename failed
	IOFailure
	// InvalidArgument: missing positionals, unknown command, bad option value
	InvalidArgument
)

// String returns the kind name used in log fields and messages
func (k ErrorKind) String() string {
	switch k {
	case NotFound:
		return "not_found"
	case IOFailure:
		return "io"
	case InvalidArgument:
		return "argument"
	default:
		return "unknown"
	}
}

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to file operations
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// NewNotFoundError creates a file error of kind NotFound
func NewNotFoundError(msg string, path string) *FileError {
	return NewFileError(msg, path, NotFound, nil)
}

// NewIOError creates a file error of kind IOFailure wrapping err
func NewIOError(msg string, path string, err error) *FileError {
	return NewFileError(msg, path, IOFailure, err)
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ArgumentError represents a command line usage error
type ArgumentError struct {
	ApplicationError
	usage string
}

// NewArgumentError creates a new argument error. usage, when set, is the
// synopsis of the command that was misused.
func NewArgumentError(msg string, usage string, err error) *ArgumentError {
	return &ArgumentError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: InvalidArgument,
		},
		usage: usage,
	}
}

// Usage returns the command synopsis associated with the error
func (e *ArgumentError) Usage() string {
	return e.usage
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: KindOf(err),
	}
}

// KindOf returns the kind of the first classified error in err's chain,
// or Unknown if there is none.
func KindOf(err error) ErrorKind {
	var k interface{ Kind() ErrorKind }
	for err != nil {
		if errors.As(err, &k) && k.Kind() != Unknown {
			return k.Kind()
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == NotFound
	}
	return false
}

// IsIO checks if the error is an I/O failure
func IsIO(err error) bool {
	var fileErr *FileError
	if errors.As(err, &fileErr) {
		return fileErr.Kind() == IOFailure
	}
	return false
}

// IsArgument checks if the error is a command line usage error
func IsArgument(err error) bool {
	var argErr *ArgumentError
	return errors.As(err, &argErr)
}
