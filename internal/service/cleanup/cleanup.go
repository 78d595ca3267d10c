package cleanup

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vertextoedge/violent-cleanup/internal/domain"
	"github.com/vertextoedge/violent-cleanup/internal/domain/event"
	"github.com/vertextoedge/violent-cleanup/internal/domain/vo"
	"github.com/vertextoedge/violent-cleanup/internal/port"
	"go.uber.org/zap"
)

// Config contains cleanup run configuration
type Config struct {
	// Directory is the root to clean. It is resolved to a canonical path.
	Directory string

	// Extensions selects which files are candidates
	Extensions vo.ExtensionSet

	// TargetPercent is the usage level to get below
	TargetPercent int

	// Commit actually removes files; false is a dry run
	Commit bool
}

// Result describes a finished run
type Result struct {
	Root          string
	TargetPercent int
	InitialUsage  int
	// FinalUsage is the last measured usage, taken before the final
	// deletion when the queue ran out.
	FinalUsage int
	Commit     bool
	Status     domain.RunStatus
	Scanned    int
	Removed    []domain.Candidate
	Reclaimed  vo.FileSize
}

// Service runs the oldest-first cleanup loop
type Service struct {
	config  *Config
	fs      port.FileSystem
	journal port.RunJournal
	events  event.EventDispatcher
	logger  *zap.Logger
}

// New creates a new cleanup Service. journal and events may be nil.
func New(cfg *Config, fs port.FileSystem, journal port.RunJournal, events event.EventDispatcher, logger *zap.Logger) *Service {
	if journal == nil {
		journal = nopJournal{}
	}
	if events == nil {
		events = event.NewNullDispatcher()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		config:  cfg,
		fs:      fs,
		journal: journal,
		events:  events,
		logger:  logger,
	}
}

// Run checks usage and, if at or above target, removes candidates oldest
// first until usage drops below target or candidates run out. Usage is
// re-measured before every candidate. The context is only checked between
// candidates.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	started := time.Now()

	root, err := ResolveRoot(s.config.Directory)
	if err != nil {
		return nil, err
	}

	current, err := s.fs.UsagePercent(root)
	if err != nil {
		return nil, err
	}
	s.events.Dispatch(event.NewUsageChecked(root, current, s.config.TargetPercent))

	result := &Result{
		Root:          root,
		TargetPercent: s.config.TargetPercent,
		InitialUsage:  current,
		FinalUsage:    current,
		Commit:        s.config.Commit,
	}
	run := s.startRun(result, started)

	if current < s.config.TargetPercent {
		result.Status = domain.RunStatusAlreadyUnderTarget
		s.finish(run, result, started, nil)
		return result, nil
	}

	candidates, err := s.fs.Scan(root, s.config.Extensions)
	if err != nil {
		return s.fail(run, result, started, err)
	}
	queue := domain.NewCandidateQueue(candidates)
	result.Scanned = queue.Len()
	s.logger.Debug("scan completed",
		zap.String("root", root),
		zap.Int("candidates", result.Scanned),
		zap.Stringer("extensions", s.config.Extensions))

	for !queue.IsEmpty() {
		select {
		case <-ctx.Done():
			result.Status = domain.RunStatusInterrupted
			s.finish(run, result, started, ctx.Err())
			return result, ctx.Err()
		default:
		}

		current, err := s.fs.UsagePercent(root)
		if err != nil {
			return s.fail(run, result, started, err)
		}
		result.FinalUsage = current
		if current < s.config.TargetPercent {
			result.Status = domain.RunStatusTargetMet
			break
		}

		candidate, err := queue.Pop()
		if err != nil {
			return s.fail(run, result, started, err)
		}
		s.events.Dispatch(event.NewCandidateReported(candidate.Path, candidate.ModifiedAt, candidate.Size, current, s.config.Commit))

		if s.config.Commit {
			if err := s.fs.Remove(candidate.Path); err != nil {
				if !domain.IsKind(err, domain.KindDeletion) {
					err = domain.NewDeletionError(err, fmt.Sprintf("removing %s", candidate.Path))
				}
				return s.fail(run, result, started, err)
			}
		}

		result.Removed = append(result.Removed, candidate)
		result.Reclaimed = result.Reclaimed.Add(vo.NewFileSize(candidate.Size))
		s.recordRemoval(run, candidate)
	}

	if result.Status == "" {
		result.Status = domain.RunStatusCandidatesExhausted
		s.logger.Debug("no candidates left",
			zap.Int("usage_pct", result.FinalUsage),
			zap.Int("target_pct", s.config.TargetPercent))
	}

	s.finish(run, result, started, nil)
	return result, nil
}

// ResolveRoot returns the canonical absolute path of dir, which must be an
// existing directory.
func ResolveRoot(dir string) (string, error) {
	if dir == "" {
		return "", domain.NewPathResolutionError(os.ErrNotExist, "resolving empty directory")
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", domain.NewPathResolutionError(err, fmt.Sprintf("resolving %s", dir))
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", domain.NewPathResolutionError(err, fmt.Sprintf("resolving %s", dir))
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", domain.NewPathResolutionError(err, fmt.Sprintf("resolving %s", dir))
	}
	if !info.IsDir() {
		return "", domain.NewPathResolutionError(domain.ErrNotDirectory, fmt.Sprintf("resolving %s", dir))
	}

	return resolved, nil
}

func (s *Service) fail(run *domain.Run, result *Result, started time.Time, err error) (*Result, error) {
	result.Status = domain.RunStatusFailed
	s.finish(run, result, started, err)
	return result, err
}

func (s *Service) startRun(result *Result, started time.Time) *domain.Run {
	run := &domain.Run{
		Root:          result.Root,
		TargetPercent: result.TargetPercent,
		InitialUsage:  result.InitialUsage,
		Commit:        result.Commit,
		Status:        domain.RunStatusRunning,
		StartedAt:     started,
	}
	if err := s.journal.StartRun(run); err != nil {
		s.logger.Warn("failed to journal run start", zap.Error(err))
	}
	return run
}

func (s *Service) recordRemoval(run *domain.Run, candidate domain.Candidate) {
	if run.ID == 0 {
		return
	}
	if err := s.journal.RecordRemoval(run.ID, candidate, s.config.Commit); err != nil {
		s.logger.Warn("failed to journal removal",
			zap.String("path", candidate.Path),
			zap.Error(err))
	}
}

func (s *Service) finish(run *domain.Run, result *Result, started time.Time, runErr error) {
	finished := time.Now()

	if runErr == nil {
		s.events.Dispatch(event.NewCleanupCompleted(
			result.Root, string(result.Status), result.Scanned, len(result.Removed),
			result.Reclaimed.Bytes(), result.FinalUsage, result.Commit, finished.Sub(started),
		))
	}

	if run.ID == 0 {
		return
	}
	run.FinalUsage = result.FinalUsage
	run.Status = result.Status
	run.Scanned = result.Scanned
	run.Removed = len(result.Removed)
	run.ReclaimedBytes = result.Reclaimed.Bytes()
	run.FinishedAt = &finished
	if runErr != nil {
		run.Error = runErr.Error()
	}
	if err := s.journal.FinishRun(run); err != nil {
		s.logger.Warn("failed to journal run result", zap.Error(err))
	}
}
