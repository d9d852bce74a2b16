// Package searcherr defines the typed error taxonomy shared by every
// component of the search engine: the handful of fatal error kinds that
// abort a search, and the transient kinds that the traversal logs and
// swallows so it keeps walking.
package searcherr

import (
	"fmt"
)

// Kind identifies which category of failure an error belongs to.
type Kind int

const (
	// KindInvalidPath means the search root is missing or not a directory.
	KindInvalidPath Kind = iota
	// KindConfigLoad means the configuration file could not be read or parsed.
	KindConfigLoad
	// KindConfigSave means the configuration file could not be written.
	KindConfigSave
	// KindInvalidArgument means a CLI flag value failed validation.
	KindInvalidArgument
	// KindRegexCompile means a user-supplied pattern failed to compile.
	KindRegexCompile
	// KindAccess is a transient permission/not-found error encountered mid-walk.
	KindAccess
	// KindIO is a transient I/O error encountered mid-walk.
	KindIO
	// KindWorkerPanic records a recovered panic from a worker goroutine.
	KindWorkerPanic
)

// String renders the kind the way it appears in diagnostic output.
func (k Kind) String() string {
	switch k {
	case KindInvalidPath:
		return "invalid_path"
	case KindConfigLoad:
		return "config_load"
	case KindConfigSave:
		return "config_save"
	case KindInvalidArgument:
		return "invalid_argument"
	case KindRegexCompile:
		return "regex_compile"
	case KindAccess:
		return "access"
	case KindIO:
		return "io"
	case KindWorkerPanic:
		return "worker_panic"
	default:
		return "unknown"
	}
}

// Fatal reports whether errors of this kind should abort the search rather
// than being logged and absorbed by the traversal.
func (k Kind) Fatal() bool {
	switch k {
	case KindAccess, KindIO, KindWorkerPanic:
		return false
	default:
		return true
	}
}

// Error is the concrete error type produced by this package. Path is the
// filesystem path being operated on when the error occurred, if any.
type Error struct {
	Kind    Kind
	Path    string
	Message string
	Err     error
}

// New creates an Error with no wrapped cause.
func New(kind Kind, path, message string) *Error {
	return &Error{Kind: kind, Path: path, Message: message}
}

// Wrap creates an Error that wraps an underlying cause.
func Wrap(kind Kind, path, message string, err error) *Error {
	return &Error{Kind: kind, Path: path, Message: message, Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s (%s): %v", e.Kind, e.Message, e.Path, e.Err)
		}
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap supports errors.Is/errors.As against the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// InvalidPath builds a fatal KindInvalidPath error.
func InvalidPath(path string, err error) *Error {
	return Wrap(KindInvalidPath, path, "root is not a valid directory", err)
}

// ConfigLoad builds a fatal KindConfigLoad error.
func ConfigLoad(path string, err error) *Error {
	return Wrap(KindConfigLoad, path, "failed to load configuration", err)
}

// ConfigSave builds a fatal KindConfigSave error.
func ConfigSave(path string, err error) *Error {
	return Wrap(KindConfigSave, path, "failed to save configuration", err)
}

// InvalidArgument builds a fatal KindInvalidArgument error.
func InvalidArgument(message string) *Error {
	return New(KindInvalidArgument, "", message)
}

// RegexCompile builds a fatal KindRegexCompile error.
func RegexCompile(pattern string, err error) *Error {
	return Wrap(KindRegexCompile, "", fmt.Sprintf("invalid pattern %q", pattern), err)
}

// Access builds a transient KindAccess error, for logging only.
func Access(path string, err error) *Error {
	return Wrap(KindAccess, path, "access denied", err)
}

// IO builds a transient KindIO error, for logging only.
func IO(path string, err error) *Error {
	return Wrap(KindIO, path, "read failed", err)
}

// WorkerPanic builds a KindWorkerPanic error from a recovered panic value.
func WorkerPanic(workerID int, recovered interface{}) *Error {
	return New(KindWorkerPanic, "", fmt.Sprintf("worker %d panicked: %v", workerID, recovered))
}
