package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/vertextoedge/violent-cleanup/internal/domain"
)

// StartRun inserts a run in the running state and sets run.ID
func (s *Store) StartRun(run *domain.Run) error {
	if run.Status == "" {
		run.Status = domain.RunStatusRunning
	}

	query := `
		INSERT INTO runs (root, target_percent, initial_usage, commit_mode, status, started_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	result, err := s.db.Exec(query,
		run.Root, run.TargetPercent, run.InitialUsage, run.Commit, string(run.Status), run.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get run id: %w", err)
	}
	run.ID = id
	return nil
}

// RecordRemoval stores one reported candidate for a run
func (s *Store) RecordRemoval(runID int64, candidate domain.Candidate, removed bool) error {
	query := `
		INSERT INTO removals (run_id, path, modified_at, size, removed)
		VALUES (?, ?, ?, ?, ?)
	`
	if _, err := s.db.Exec(query, runID, candidate.Path, candidate.ModifiedAt, candidate.Size, removed); err != nil {
		return fmt.Errorf("failed to insert removal: %w", err)
	}
	return nil
}

// FinishRun stores the terminal state of a run
func (s *Store) FinishRun(run *domain.Run) error {
	var finishedAt sql.NullTime
	if run.FinishedAt != nil {
		finishedAt = sql.NullTime{Time: *run.FinishedAt, Valid: true}
	}

	query := `
		UPDATE runs
		SET initial_usage = ?, final_usage = ?, status = ?, scanned = ?, removed = ?,
			reclaimed_bytes = ?, error = ?, finished_at = ?
		WHERE id = ?
	`
	result, err := s.db.Exec(query,
		run.InitialUsage, run.FinalUsage, string(run.Status), run.Scanned, run.Removed,
		run.ReclaimedBytes, run.Error, finishedAt, run.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update run: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("run %d: %w", run.ID, sql.ErrNoRows)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first
func (s *Store) ListRuns(limit int) ([]*domain.Run, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, root, target_percent, initial_usage, final_usage, commit_mode, status,
			   scanned, removed, reclaimed_bytes, error, started_at, finished_at
		FROM runs
		ORDER BY id DESC
		LIMIT ?
	`
	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*domain.Run
	for rows.Next() {
		run := &domain.Run{}
		var status string
		var finishedAt sql.NullTime

		if err := rows.Scan(
			&run.ID, &run.Root, &run.TargetPercent, &run.InitialUsage, &run.FinalUsage, &run.Commit, &status,
			&run.Scanned, &run.Removed, &run.ReclaimedBytes, &run.Error, &run.StartedAt, &finishedAt,
		); err != nil {
			return nil, err
		}

		run.Status = domain.RunStatus(status)
		if finishedAt.Valid {
			t := finishedAt.Time
			run.FinishedAt = &t
		}
		runs = append(runs, run)
	}

	return runs, rows.Err()
}

// ListRemovals returns the candidates recorded for a run, in report order
func (s *Store) ListRemovals(runID int64) ([]domain.Candidate, error) {
	query := `
		SELECT path, modified_at, size
		FROM removals
		WHERE run_id = ?
		ORDER BY id ASC
	`
	rows, err := s.db.Query(query, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var candidates []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		if err := rows.Scan(&c.Path, &c.ModifiedAt, &c.Size); err != nil {
			return nil, err
		}
		candidates = append(candidates, c)
	}

	return candidates, rows.Err()
}
