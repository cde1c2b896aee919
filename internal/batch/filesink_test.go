package batch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/sarc/internal/sarctype"
)

func TestFileSink_WriteCommit(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sink := NewFileSink(dir)
	entry := &Entry{Name: "Actor/Pack/Link.bin", Data: []byte("link")}

	require.NoError(t, sink.Validate(entry))
	assert.True(t, sink.ShouldProcess(entry))

	w, err := sink.Writer(entry)
	require.NoError(t, err)
	_, err = w.Write(entry.Data)
	require.NoError(t, err)
	require.NoError(t, w.Commit())

	path := filepath.Join(dir, "Actor", "Pack", "Link.bin")
	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, entry.Data, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultFileMode, info.Mode().Perm())

	// No temp files are left behind.
	leftovers, err := filepath.Glob(filepath.Join(dir, "Actor", "Pack", ".*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestFileSink_Discard(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sink := NewFileSink(dir)
	entry := &Entry{Name: "a.bin", Data: []byte("a")}

	w, err := sink.Writer(entry)
	require.NoError(t, err)
	_, err = w.Write(entry.Data)
	require.NoError(t, err)
	require.NoError(t, w.Discard())

	_, err = os.Stat(filepath.Join(dir, "a.bin"))
	assert.True(t, os.IsNotExist(err))
	files, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFileSink_Overwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	existing := filepath.Join(dir, "a.bin")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0o644))
	entry := &Entry{Name: "a.bin", Data: []byte("new")}

	assert.False(t, NewFileSink(dir).ShouldProcess(entry))
	assert.True(t, NewFileSink(dir, WithOverwrite(true)).ShouldProcess(entry))

	stats, err := NewProcessor().Process([]Entry{*entry}, NewFileSink(dir, WithOverwrite(true)))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Processed)
	got, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), got)
}

func TestFileSink_FileMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	entries := []Entry{{Name: "x.bin", Data: []byte("x")}}
	_, err := NewProcessor().Process(entries, NewFileSink(dir, WithFileMode(0o600)))
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dir, "x.bin"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileSink_RejectsTraversal(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	dest := filepath.Join(root, "out")
	entries := []Entry{
		{Name: "ok.bin", Data: []byte("ok")},
		{Name: "../escape.bin", Data: []byte("bad")},
	}

	_, err := NewProcessor().Process(entries, NewFileSink(dest))
	require.ErrorIs(t, err, sarctype.ErrUnsafePath)

	_, err = os.Stat(filepath.Join(root, "escape.bin"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dest, "ok.bin"))
	assert.True(t, os.IsNotExist(err), "validation must happen before any write")

	_, err = NewFileSink(dest).Writer(&entries[1])
	require.ErrorIs(t, err, sarctype.ErrUnsafePath)
}
