package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vertextoedge/violent-cleanup/internal/domain"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "journal", "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_RunLifecycle(t *testing.T) {
	store := openTestStore(t)
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	run := &domain.Run{
		Root:          "/data",
		TargetPercent: 80,
		InitialUsage:  91,
		Commit:        true,
		StartedAt:     started,
	}
	require.NoError(t, store.StartRun(run))
	require.NotZero(t, run.ID)
	assert.Equal(t, domain.RunStatusRunning, run.Status)

	first := domain.Candidate{Path: "/data/old.mp4", ModifiedAt: 100, Size: 2048}
	second := domain.Candidate{Path: "/data/newer.jpg", ModifiedAt: 200, Size: 1024}
	require.NoError(t, store.RecordRemoval(run.ID, first, true))
	require.NoError(t, store.RecordRemoval(run.ID, second, true))

	finished := started.Add(3 * time.Second)
	run.FinalUsage = 79
	run.Status = domain.RunStatusTargetMet
	run.Scanned = 5
	run.Removed = 2
	run.ReclaimedBytes = 3072
	run.FinishedAt = &finished
	require.NoError(t, store.FinishRun(run))

	runs, err := store.ListRuns(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	got := runs[0]
	assert.Equal(t, run.ID, got.ID)
	assert.Equal(t, "/data", got.Root)
	assert.Equal(t, 80, got.TargetPercent)
	assert.Equal(t, 91, got.InitialUsage)
	assert.Equal(t, 79, got.FinalUsage)
	assert.True(t, got.Commit)
	assert.Equal(t, domain.RunStatusTargetMet, got.Status)
	assert.Equal(t, 5, got.Scanned)
	assert.Equal(t, 2, got.Removed)
	assert.Equal(t, int64(3072), got.ReclaimedBytes)
	assert.True(t, got.StartedAt.Equal(started))
	require.NotNil(t, got.FinishedAt)
	assert.Equal(t, 3*time.Second, got.Duration())

	removals, err := store.ListRemovals(run.ID)
	require.NoError(t, err)
	assert.Equal(t, []domain.Candidate{first, second}, removals)
}

func TestStore_ListRunsNewestFirst(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 3; i++ {
		run := &domain.Run{Root: "/data", TargetPercent: 50 + i, StartedAt: time.Now()}
		require.NoError(t, store.StartRun(run))
	}

	runs, err := store.ListRuns(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 52, runs[0].TargetPercent)
	assert.Equal(t, 51, runs[1].TargetPercent)
	assert.Nil(t, runs[0].FinishedAt)
	assert.Equal(t, time.Duration(0), runs[0].Duration())
}

func TestStore_FinishUnknownRun(t *testing.T) {
	store := openTestStore(t)

	now := time.Now()
	err := store.FinishRun(&domain.Run{ID: 42, Status: domain.RunStatusFailed, FinishedAt: &now})
	assert.Error(t, err)
}

func TestStore_ReopenKeepsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.StartRun(&domain.Run{Root: "/a", TargetPercent: 10, StartedAt: time.Now()}))
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.ListRuns(0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
