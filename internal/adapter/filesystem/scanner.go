package filesystem

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/vertextoedge/violent-cleanup/internal/domain"
	"github.com/vertextoedge/violent-cleanup/internal/domain/vo"
	"go.uber.org/zap"
)

// initial capacity for the candidate slice
const scanBatchSize = 1024

// Scan walks root and returns the regular files whose extension is in
// extensions, sorted oldest first.
//
// Symlinks are neither followed nor matched. Errors reading an entry or
// entering a directory are logged at debug level and the entry is skipped.
func (m *Manager) Scan(root string, extensions vo.ExtensionSet) ([]domain.Candidate, error) {
	candidates := make([]domain.Candidate, 0, scanBatchSize)
	if extensions.IsEmpty() {
		m.logger.Debug("empty extension filter, nothing can match", zap.String("root", root))
	}

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			m.skip(domain.NewScanEntryError(err, fmt.Sprintf("walking %s", path)))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if !extensions.Matches(path) {
			return nil
		}

		candidate, err := candidateFromEntry(path, d)
		if err != nil {
			m.skip(err)
			return nil
		}
		candidates = append(candidates, candidate)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, walkErr)
	}

	domain.SortOldestFirst(candidates)
	return candidates, nil
}

func candidateFromEntry(path string, d fs.DirEntry) (domain.Candidate, error) {
	info, err := d.Info()
	if err != nil {
		return domain.Candidate{}, domain.NewScanEntryError(err, fmt.Sprintf("reading %s", path))
	}
	return domain.Candidate{
		Path:       path,
		ModifiedAt: info.ModTime().Unix(),
		Size:       info.Size(),
	}, nil
}

func (m *Manager) skip(err error) {
	m.logger.Debug("error reading directory, ignoring", zap.Error(err))
}
