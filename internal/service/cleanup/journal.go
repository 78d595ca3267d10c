package cleanup

import (
	"github.com/vertextoedge/violent-cleanup/internal/domain"
	"github.com/vertextoedge/violent-cleanup/internal/port"
)

// nopJournal is used when no journal is configured
type nopJournal struct{}

var _ port.RunJournal = nopJournal{}

func (nopJournal) StartRun(run *domain.Run) error { return nil }
func (nopJournal) RecordRemoval(runID int64, candidate domain.Candidate, removed bool) error {
	return nil
}
func (nopJournal) FinishRun(run *domain.Run) error                      { return nil }
func (nopJournal) ListRuns(limit int) ([]*domain.Run, error)            { return nil, nil }
func (nopJournal) ListRemovals(runID int64) ([]domain.Candidate, error) { return nil, nil }
func (nopJournal) Close() error                                         { return nil }
