package domain

import (
	"errors"
)

// Common domain errors
var (
	ErrNotDirectory = errors.New("not a directory")
	ErrEmptyQueue   = errors.New("candidate queue is empty")
)

// ErrorKind classifies a CleanupError.
type ErrorKind int

const (
	// KindPathResolution means the root directory is missing or unresolvable.
	KindPathResolution ErrorKind = iota + 1
	// KindFilesystemQuery means filesystem statistics could not be read or were invalid.
	KindFilesystemQuery
	// KindScanEntry is a per-entry failure during scanning. It is the only
	// kind that is logged and skipped.
	KindScanEntry
	// KindDeletion means removing a candidate failed.
	KindDeletion
)

// String returns the kind name
func (k ErrorKind) String() string {
	switch k {
	case KindPathResolution:
		return "path resolution"
	case KindFilesystemQuery:
		return "filesystem query"
	case KindScanEntry:
		return "scan entry"
	case KindDeletion:
		return "deletion"
	default:
		return "unknown"
	}
}

// CleanupError is an error with a kind and a "while doing X" context.
type CleanupError struct {
	Kind    ErrorKind
	Context string
	Err     error
}

// Error returns the error message
func (e *CleanupError) Error() string {
	if e.Context != "" {
		if e.Err != nil {
			return e.Context + ": " + e.Err.Error()
		}
		return e.Context
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String() + " error"
}

// Unwrap returns the underlying error
func (e *CleanupError) Unwrap() error {
	return e.Err
}

// NewPathResolutionError creates an error for an unresolvable root.
func NewPathResolutionError(err error, context string) *CleanupError {
	return &CleanupError{Kind: KindPathResolution, Context: context, Err: err}
}

// NewFilesystemQueryError creates an error for a failed usage query.
func NewFilesystemQueryError(err error, context string) *CleanupError {
	return &CleanupError{Kind: KindFilesystemQuery, Context: context, Err: err}
}

// NewScanEntryError creates a skippable per-entry scan error.
func NewScanEntryError(err error, context string) *CleanupError {
	return &CleanupError{Kind: KindScanEntry, Context: context, Err: err}
}

// NewDeletionError creates an error for a failed removal.
func NewDeletionError(err error, context string) *CleanupError {
	return &CleanupError{Kind: KindDeletion, Context: context, Err: err}
}

// IsKind returns true if err wraps a CleanupError of the given kind
func IsKind(err error, kind ErrorKind) bool {
	var ce *CleanupError
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

// IsSkippable returns true if the error can be logged and skipped.
// Processing can continue with the next entry when this is true.
func IsSkippable(err error) bool {
	return IsKind(err, KindScanEntry)
}
