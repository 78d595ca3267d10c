package event

import (
	"time"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	// EventName returns the name of the event
	EventName() string
	// OccurredAt returns when the event occurred
	OccurredAt() time.Time
}

// BaseEvent provides common fields for all events
type BaseEvent struct {
	Timestamp time.Time
}

// OccurredAt returns when the event occurred
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// UsageChecked is raised after the initial usage gate check
type UsageChecked struct {
	BaseEvent
	Root          string
	Current       int
	TargetPercent int
}

// EventName returns the event name
func (e UsageChecked) EventName() string {
	return "usage.checked"
}

// NewUsageChecked creates a new UsageChecked event
func NewUsageChecked(root string, current, target int) UsageChecked {
	return UsageChecked{
		BaseEvent:     BaseEvent{Timestamp: time.Now()},
		Root:          root,
		Current:       current,
		TargetPercent: target,
	}
}

// CandidateReported is raised for every candidate the loop acts on,
// whether or not it is actually removed.
type CandidateReported struct {
	BaseEvent
	Path       string
	ModifiedAt int64
	Size       int64
	Usage      int
	Commit     bool
}

// EventName returns the event name
func (e CandidateReported) EventName() string {
	return "candidate.reported"
}

// Action returns the log prefix for this report
func (e CandidateReported) Action() string {
	if e.Commit {
		return "removing"
	}
	return "would remove"
}

// NewCandidateReported creates a new CandidateReported event
func NewCandidateReported(path string, modifiedAt, size int64, usage int, commit bool) CandidateReported {
	return CandidateReported{
		BaseEvent:  BaseEvent{Timestamp: time.Now()},
		Path:       path,
		ModifiedAt: modifiedAt,
		Size:       size,
		Usage:      usage,
		Commit:     commit,
	}
}

// CleanupCompleted is raised when a run reaches a terminal state without error
type CleanupCompleted struct {
	BaseEvent
	Root           string
	Status         string
	Scanned        int
	Removed        int
	ReclaimedBytes int64
	FinalUsage     int
	Commit         bool
	Duration       time.Duration
}

// EventName returns the event name
func (e CleanupCompleted) EventName() string {
	return "cleanup.completed"
}

// NewCleanupCompleted creates a new CleanupCompleted event
func NewCleanupCompleted(root, status string, scanned, removed int, reclaimed int64, finalUsage int, commit bool, duration time.Duration) CleanupCompleted {
	return CleanupCompleted{
		BaseEvent:      BaseEvent{Timestamp: time.Now()},
		Root:           root,
		Status:         status,
		Scanned:        scanned,
		Removed:        removed,
		ReclaimedBytes: reclaimed,
		FinalUsage:     finalUsage,
		Commit:         commit,
		Duration:       duration,
	}
}
