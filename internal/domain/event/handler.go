package event

import (
	"github.com/vertextoedge/violent-cleanup/internal/domain/vo"
	"go.uber.org/zap"
)

// LoggingHandler logs all events
type LoggingHandler struct {
	logger *zap.Logger
}

// NewLoggingHandler creates a new LoggingHandler
func NewLoggingHandler(logger *zap.Logger) *LoggingHandler {
	return &LoggingHandler{logger: logger}
}

// Handle logs the event
func (h *LoggingHandler) Handle(event DomainEvent) error {
	switch e := event.(type) {
	case UsageChecked:
		h.logger.Info("filesystem usage",
			zap.String("root", e.Root),
			zap.Int("current_pct", e.Current),
			zap.Int("target_pct", e.TargetPercent),
		)
	case CandidateReported:
		h.logger.Info(e.Action(),
			zap.String("path", e.Path),
			zap.Time("modified_at", timeFromUnix(e.ModifiedAt)),
			zap.Stringer("size", vo.NewFileSize(e.Size)),
			zap.Int("usage_pct", e.Usage),
		)
	case CleanupCompleted:
		h.logger.Info("cleanup finished",
			zap.String("root", e.Root),
			zap.String("status", e.Status),
			zap.Int("scanned", e.Scanned),
			zap.Int("removed", e.Removed),
			zap.Stringer("reclaimed", vo.NewFileSize(e.ReclaimedBytes)),
			zap.Int("final_usage_pct", e.FinalUsage),
			zap.Bool("dry_run", !e.Commit),
			zap.Duration("duration", e.Duration),
		)
	default:
		h.logger.Debug("domain event",
			zap.String("event", event.EventName()),
			zap.Time("occurred_at", event.OccurredAt()),
		)
	}
	return nil
}

// HandledEvents returns the events this handler handles
func (h *LoggingHandler) HandledEvents() []string {
	return []string{"*"} // Handle all events
}
