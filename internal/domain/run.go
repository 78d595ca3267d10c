package domain

import "time"

// RunStatus is the terminal state of a cleanup run.
type RunStatus string

const (
	RunStatusRunning             RunStatus = "running"
	RunStatusAlreadyUnderTarget  RunStatus = "already_under_target"
	RunStatusTargetMet           RunStatus = "target_met"
	RunStatusCandidatesExhausted RunStatus = "candidates_exhausted"
	RunStatusFailed              RunStatus = "failed"
	RunStatusInterrupted         RunStatus = "interrupted"
)

// IsTerminal returns true if the run has finished, successfully or not
func (s RunStatus) IsTerminal() bool {
	return s != RunStatusRunning && s != ""
}

// Run is the journaled record of one cleanup invocation.
type Run struct {
	ID             int64
	Root           string
	TargetPercent  int
	InitialUsage   int
	FinalUsage     int
	Commit         bool
	Status         RunStatus
	Scanned        int
	Removed        int
	ReclaimedBytes int64
	Error          string
	StartedAt      time.Time
	FinishedAt     *time.Time
}

// Duration returns how long the run took, or zero if it has not finished
func (r *Run) Duration() time.Duration {
	if r.FinishedAt == nil {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
