package sarc

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/sarc/internal/testutil"
)

func loadSample(t *testing.T, files []testutil.File) *File {
	t.Helper()
	f, err := Load((&testutil.Builder{Files: files}).Bytes())
	require.NoError(t, err)
	return f
}

func TestCopyTo(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{-1, 0, 4} {
		dest := filepath.Join(t.TempDir(), "out", "nested")
		f := loadSample(t, sampleFiles())

		stats, err := f.CopyTo(dest, CopyWithWorkers(workers))
		require.NoError(t, err)
		assert.Equal(t, 3, stats.Processed)
		assert.Zero(t, stats.Skipped)

		var total uint64
		for _, want := range sampleFiles() {
			got, err := os.ReadFile(filepath.Join(dest, filepath.FromSlash(want.Name)))
			require.NoError(t, err)
			assert.Equal(t, want.Data, got)
			total += uint64(len(want.Data))
		}
		assert.Equal(t, total, stats.TotalBytes)
	}
}

func TestCopyToOverwrite(t *testing.T) {
	t.Parallel()

	dest := t.TempDir()
	existing := filepath.Join(dest, "a")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o600))
	f := loadSample(t, sampleFiles())

	stats, err := f.CopyTo(dest, CopyWithOverwrite(false))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Processed)
	assert.Equal(t, 1, stats.Skipped)
	got, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, []byte("old"), got)

	stats, err = f.CopyTo(dest)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Processed)
	got, err = os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, sampleFiles()[1].Data, got)
}

func TestCopyToFileMode(t *testing.T) {
	t.Parallel()

	dest := t.TempDir()
	f := loadSample(t, sampleFiles()[1:2])
	_, err := f.CopyTo(dest, CopyWithFileMode(0o600))
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dest, "a"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCopyToRejectsUnsafeNames(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"../escape", "/etc/passwd", "a/../../b", `dir\file`} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			dest := t.TempDir()
			f := loadSample(t, []testutil.File{
				{Name: "fine.txt", Data: []byte("ok")},
				{Name: name, Data: []byte("bad")},
			})

			_, err := f.CopyTo(dest)
			require.ErrorIs(t, err, ErrUnsafePath)

			// Nothing is written, not even the safe entry.
			dirEntries, err := os.ReadDir(dest)
			require.NoError(t, err)
			assert.Empty(t, dirEntries)
		})
	}
}

func TestCopyToRejectsUnsafeNameWithExistingTarget(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	outside := filepath.Join(root, "escape")
	require.NoError(t, os.WriteFile(outside, []byte("outside"), 0o600))
	dest := filepath.Join(root, "out")

	f := loadSample(t, []testutil.File{
		{Name: "fine.txt", Data: []byte("ok")},
		{Name: "../escape", Data: []byte("bad")},
	})
	stats, err := f.CopyTo(dest, CopyWithOverwrite(false))
	require.ErrorIs(t, err, ErrUnsafePath)
	assert.Zero(t, stats.Processed)
	assert.Zero(t, stats.Skipped)

	dirEntries, err := os.ReadDir(dest)
	require.NoError(t, err)
	assert.Empty(t, dirEntries)
	got, err := os.ReadFile(outside)
	require.NoError(t, err)
	assert.Equal(t, []byte("outside"), got)
}

func TestCopyToProgress(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var names []string
	f := loadSample(t, sampleFiles())
	_, err := f.CopyTo(t.TempDir(), CopyWithWorkers(2), CopyWithProgress(func(ev ProgressEvent) {
		mu.Lock()
		defer mu.Unlock()
		assert.Equal(t, StageWriting, ev.Stage)
		assert.Equal(t, 3, ev.FilesTotal)
		names = append(names, ev.Name)
	}))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Actor/Link.bfres", "a", "Map/Field/A-1.smubin"}, names)
}

func TestCopyToExtractError(t *testing.T) {
	t.Parallel()

	f := loadSample(t, sampleFiles())
	f.archive.NameTable.Names = f.archive.NameTable.Names[:1]

	dest := filepath.Join(t.TempDir(), "never")
	_, err := f.CopyTo(dest)
	require.ErrorIs(t, err, ErrNodeNameCountMismatch)
	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}
