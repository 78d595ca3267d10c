package event

import (
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingHandler_CandidateReported(t *testing.T) {
	tests := []struct {
		name    string
		commit  bool
		message string
	}{
		{"dry run", false, "would remove"},
		{"commit", true, "removing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			h := NewLoggingHandler(zap.New(core))

			if err := h.Handle(NewCandidateReported("/d/a.mp4", 100, 2048, 91, tt.commit)); err != nil {
				t.Fatalf("Handle() error = %v", err)
			}

			entries := logs.All()
			if len(entries) != 1 {
				t.Fatalf("logged %d entries, want 1", len(entries))
			}
			if entries[0].Message != tt.message {
				t.Errorf("message = %q, want %q", entries[0].Message, tt.message)
			}
			fields := entries[0].ContextMap()
			if fields["path"] != "/d/a.mp4" {
				t.Errorf("path field = %v", fields["path"])
			}
			if fields["size"] != "2.00 KB" {
				t.Errorf("size field = %v, want 2.00 KB", fields["size"])
			}
		})
	}
}

func TestLoggingHandler_UsageAndSummary(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	h := NewLoggingHandler(zap.New(core))

	h.Handle(NewUsageChecked("/d", 85, 80))
	h.Handle(NewCleanupCompleted("/d", "target_met", 3, 1, 10, 75, true, time.Second))

	if got := logs.FilterMessage("filesystem usage").Len(); got != 1 {
		t.Errorf("usage entries = %d, want 1", got)
	}
	summary := logs.FilterMessage("cleanup finished").All()
	if len(summary) != 1 {
		t.Fatalf("summary entries = %d, want 1", len(summary))
	}
	if summary[0].ContextMap()["dry_run"] != false {
		t.Errorf("dry_run = %v, want false", summary[0].ContextMap()["dry_run"])
	}
}

type countingHandler struct {
	names []string
	count int
}

func (h *countingHandler) Handle(e DomainEvent) error {
	h.count++
	return nil
}
func (h *countingHandler) HandledEvents() []string { return h.names }

func TestInMemoryDispatcher_RoutesByName(t *testing.T) {
	d := NewInMemoryDispatcher()
	reported := &countingHandler{names: []string{"candidate.reported"}}
	all := &countingHandler{names: []string{"*"}}
	d.Subscribe(reported)
	d.Subscribe(all)

	d.Dispatch(NewUsageChecked("/d", 1, 2))
	d.Dispatch(NewCandidateReported("/d/a", 1, 1, 1, false))

	if reported.count != 1 {
		t.Errorf("reported handler count = %d, want 1", reported.count)
	}
	if all.count != 2 {
		t.Errorf("wildcard handler count = %d, want 2", all.count)
	}
}

func TestNullDispatcher(t *testing.T) {
	d := NewNullDispatcher()
	h := &countingHandler{names: []string{"*"}}
	d.Subscribe(h)
	d.Dispatch(NewUsageChecked("/d", 1, 2))

	if h.count != 0 {
		t.Errorf("count = %d, want 0", h.count)
	}
}
