package port

import (
	"github.com/vertextoedge/violent-cleanup/internal/domain"
)

// RunJournal records cleanup runs and the candidates each one acted on
type RunJournal interface {
	// StartRun persists a new run in the running state and sets run.ID
	StartRun(run *domain.Run) error

	// RecordRemoval stores one reported candidate for a run.
	// removed is false in dry-run mode.
	RecordRemoval(runID int64, candidate domain.Candidate, removed bool) error

	// FinishRun stores the terminal state of a run
	FinishRun(run *domain.Run) error

	// ListRuns returns the most recent runs, newest first
	ListRuns(limit int) ([]*domain.Run, error)

	// ListRemovals returns the candidates recorded for a run, in report order
	ListRemovals(runID int64) ([]domain.Candidate, error)

	// Close releases the journal
	Close() error
}
