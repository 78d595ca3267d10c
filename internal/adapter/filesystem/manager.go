package filesystem

import (
	"fmt"
	"os"

	"github.com/vertextoedge/violent-cleanup/internal/domain"
	"github.com/vertextoedge/violent-cleanup/internal/port"
	"go.uber.org/zap"
)

// Manager handles local filesystem operations
type Manager struct {
	logger *zap.Logger
}

// Ensure Manager implements port.FileSystem
var _ port.FileSystem = (*Manager)(nil)

// NewManager creates a new filesystem manager
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{logger: logger}
}

// UsagePercent returns the used percentage of the filesystem containing path
func (m *Manager) UsagePercent(path string) (int, error) {
	total, free, err := blockCounts(path)
	if err != nil {
		return 0, domain.NewFilesystemQueryError(err, fmt.Sprintf("reading filesystem stats for %s", path))
	}
	pct, err := usedPercent(total, free)
	if err != nil {
		return 0, domain.NewFilesystemQueryError(err, fmt.Sprintf("computing usage for %s", path))
	}
	return pct, nil
}

// Remove deletes a single file. A missing file is an error since the
// candidate was seen during the scan.
func (m *Manager) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return domain.NewDeletionError(err, fmt.Sprintf("removing %s", path))
	}
	return nil
}
