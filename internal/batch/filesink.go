package batch

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/meigma/sarc/internal/pathutil"
)

// DefaultFileMode is the permission applied to extracted files.
const DefaultFileMode fs.FileMode = 0o644

// FileSink writes entries to the filesystem with atomic, durable writes.
//
// Files are written to a temporary file in the same directory, synced,
// then renamed to the final path on Commit. This ensures that partially
// written files are never visible at the final path.
type FileSink struct {
	destDir   string
	overwrite bool
	mode      fs.FileMode
}

// FileSinkOption configures a FileSink.
type FileSinkOption func(*FileSink)

// WithOverwrite allows overwriting existing files.
// By default, existing files are skipped.
func WithOverwrite(overwrite bool) FileSinkOption {
	return func(s *FileSink) {
		s.overwrite = overwrite
	}
}

// WithFileMode sets the permission bits of written files.
func WithFileMode(mode fs.FileMode) FileSinkOption {
	return func(s *FileSink) {
		s.mode = mode.Perm()
	}
}

// NewFileSink creates a FileSink that writes to destDir.
//
// destDir must be an absolute path or relative to the current directory.
// Parent directories are created automatically as needed.
func NewFileSink(destDir string, opts ...FileSinkOption) *FileSink {
	s := &FileSink{
		destDir: destDir,
		mode:    DefaultFileMode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// destPath maps an entry name to its location under destDir.
func (s *FileSink) destPath(entry *Entry) string {
	return filepath.Join(s.destDir, filepath.FromSlash(pathutil.Clean(entry.Name)))
}

// Validate rejects entry names that would land outside destDir.
func (s *FileSink) Validate(entry *Entry) error {
	return pathutil.Validate(entry.Name)
}

// ShouldProcess returns false if the file already exists and overwrite is disabled.
func (s *FileSink) ShouldProcess(entry *Entry) bool {
	if s.overwrite {
		return true
	}
	_, err := os.Stat(s.destPath(entry))
	return os.IsNotExist(err)
}

// Writer returns a Committer that writes to a temp file and renames on Commit.
func (s *FileSink) Writer(entry *Entry) (Committer, error) {
	if err := pathutil.Validate(entry.Name); err != nil {
		return nil, err
	}
	destPath := s.destPath(entry)

	// Create parent directories
	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create directory %s: %w", dir, err)
	}

	// Create temp file in same directory (for atomic rename)
	tempFile, err := os.CreateTemp(dir, "."+pathutil.Base(entry.Name)+"-*")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}

	return &fileCommitter{
		destPath: destPath,
		tempFile: tempFile,
		sink:     s,
	}, nil
}

// fileCommitter writes to a temp file and renames on Commit.
type fileCommitter struct {
	destPath string
	tempFile *os.File
	sink     *FileSink
}

// Write implements io.Writer.
func (c *fileCommitter) Write(p []byte) (int, error) {
	return c.tempFile.Write(p)
}

// Commit syncs and closes the temp file, applies the mode, and renames
// it to the final path.
func (c *fileCommitter) Commit() error {
	tempPath := c.tempFile.Name()

	if err := c.tempFile.Sync(); err != nil {
		_ = c.tempFile.Close()  //nolint:errcheck // already failing
		_ = os.Remove(tempPath) //nolint:errcheck // best-effort cleanup
		return fmt.Errorf("sync temp file: %w", err)
	}

	if err := c.tempFile.Close(); err != nil {
		_ = os.Remove(tempPath) //nolint:errcheck // best-effort cleanup
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Chmod(tempPath, c.sink.mode); err != nil {
		_ = os.Remove(tempPath) //nolint:errcheck // best-effort cleanup
		return fmt.Errorf("chmod: %w", err)
	}

	// Atomic rename to final path
	if err := os.Rename(tempPath, c.destPath); err != nil {
		_ = os.Remove(tempPath) //nolint:errcheck // best-effort cleanup
		return fmt.Errorf("rename to %s: %w", c.destPath, err)
	}

	return nil
}

// Discard closes and removes the temp file.
func (c *fileCommitter) Discard() error {
	tempPath := c.tempFile.Name()
	_ = c.tempFile.Close() //nolint:errcheck // we're cleaning up
	return os.Remove(tempPath)
}
