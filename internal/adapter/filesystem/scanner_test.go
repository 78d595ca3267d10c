package filesystem

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vertextoedge/violent-cleanup/internal/domain"
	"github.com/vertextoedge/violent-cleanup/internal/domain/vo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// writeFile creates path (and parents) with the given mtime offset from epoch in seconds
func writeFile(t *testing.T, path string, offset int64) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("data"), 0644))
	mtime := epoch.Add(time.Duration(offset) * time.Second)
	require.NoError(t, os.Chtimes(path, mtime, mtime))
}

func paths(candidates []domain.Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Path
	}
	return out
}

func TestScan_FiltersAndSortsOldestFirst(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "five.mp4"), 5)
	writeFile(t, filepath.Join(root, "sub", "one.jpg"), 1)
	writeFile(t, filepath.Join(root, "sub", "deeper", "three.mp4"), 3)
	writeFile(t, filepath.Join(root, "notes.txt"), 0)
	writeFile(t, filepath.Join(root, "README"), 0)
	writeFile(t, filepath.Join(root, "upper.MP4"), 0)

	m := NewManager(zap.NewNop())
	got, err := m.Scan(root, vo.NewExtensionSet("mp4", "jpg"))
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "sub", "one.jpg"),
		filepath.Join(root, "sub", "deeper", "three.mp4"),
		filepath.Join(root, "five.mp4"),
	}, paths(got))

	assert.Equal(t, epoch.Unix()+1, got[0].ModifiedAt)
	assert.Equal(t, epoch.Unix()+3, got[1].ModifiedAt)
	assert.Equal(t, epoch.Unix()+5, got[2].ModifiedAt)
	assert.Equal(t, int64(len("data")), got[0].Size)
}

func TestScan_EmptyExtensionSetMatchesNothing(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.mp4"), 1)
	writeFile(t, filepath.Join(root, "noext"), 2)

	m := NewManager(zap.NewNop())
	got, err := m.Scan(root, vo.NewExtensionSet())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestScan_SkipsDirectoriesWithMatchingNames(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "album.jpg"), 0755))
	writeFile(t, filepath.Join(root, "album.jpg", "inside.jpg"), 1)

	m := NewManager(zap.NewNop())
	got, err := m.Scan(root, vo.NewExtensionSet("jpg"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "album.jpg", "inside.jpg")}, paths(got))
}

func TestScan_DoesNotFollowSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	root := t.TempDir()
	outside := t.TempDir()
	writeFile(t, filepath.Join(root, "real.mp4"), 1)
	writeFile(t, filepath.Join(outside, "elsewhere.mp4"), 2)

	// file symlink with a matching name
	require.NoError(t, os.Symlink(filepath.Join(root, "real.mp4"), filepath.Join(root, "link.mp4")))
	// directory symlink pointing outside the root
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "linked-dir")))
	// directory symlink cycle
	require.NoError(t, os.Symlink(root, filepath.Join(root, "loop")))

	m := NewManager(zap.NewNop())
	got, err := m.Scan(root, vo.NewExtensionSet("mp4"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "real.mp4")}, paths(got))
}

func TestScan_UnreadableDirectoryIsSkipped(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ok.mp4"), 1)
	locked := filepath.Join(root, "locked")
	writeFile(t, filepath.Join(locked, "hidden.mp4"), 0)
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { os.Chmod(locked, 0755) })

	core, logs := observer.New(zapcore.DebugLevel)
	m := NewManager(zap.New(core))

	got, err := m.Scan(root, vo.NewExtensionSet("mp4"))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "ok.mp4")}, paths(got))

	entries := logs.FilterMessage("error reading directory, ignoring").All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
}

func TestScan_MissingRootYieldsNothing(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := NewManager(zap.New(core))

	got, err := m.Scan(filepath.Join(t.TempDir(), "gone"), vo.NewExtensionSet("mp4"))
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 1, logs.FilterMessage("error reading directory, ignoring").Len())
}
