package port

import (
	"github.com/vertextoedge/violent-cleanup/internal/domain"
	"github.com/vertextoedge/violent-cleanup/internal/domain/vo"
)

// UsageReader reports how full the filesystem backing a path is
type UsageReader interface {
	// UsagePercent returns used space as an integer 0-100.
	// Failures are domain FilesystemQuery errors.
	UsagePercent(path string) (int, error)
}

// CandidateScanner enumerates deletion candidates under a root
type CandidateScanner interface {
	// Scan walks root and returns matching regular files sorted oldest first.
	// Per-entry failures are logged and skipped, never returned.
	Scan(root string, extensions vo.ExtensionSet) ([]domain.Candidate, error)
}

// Remover deletes a single file
type Remover interface {
	// Remove deletes the file at path
	Remove(path string) error
}

// FileSystem defines the interface for filesystem operations
type FileSystem interface {
	UsageReader
	CandidateScanner
	Remover
}
