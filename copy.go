package sarc

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/meigma/sarc/internal/batch"
)

// CopyStats reports the outcome of CopyTo.
type CopyStats = batch.ProcessStats

// CopyOption configures CopyTo.
type CopyOption func(*copyConfig)

type copyConfig struct {
	overwrite bool
	workers   int
	mode      fs.FileMode
	progress  ProgressFunc
}

// CopyWithOverwrite controls whether existing files are replaced.
// By default, existing files are overwritten.
func CopyWithOverwrite(overwrite bool) CopyOption {
	return func(c *copyConfig) {
		c.overwrite = overwrite
	}
}

// CopyWithWorkers sets the number of workers for parallel writes.
// Values < 0 force serial processing. Zero uses GOMAXPROCS.
// Values > 0 force a specific worker count.
func CopyWithWorkers(n int) CopyOption {
	return func(c *copyConfig) {
		c.workers = n
	}
}

// CopyWithFileMode sets the permission bits of written files (default 0644).
func CopyWithFileMode(mode fs.FileMode) CopyOption {
	return func(c *copyConfig) {
		c.mode = mode
	}
}

// CopyWithProgress sets a callback invoked after each file is written.
func CopyWithProgress(fn ProgressFunc) CopyOption {
	return func(c *copyConfig) {
		c.progress = fn
	}
}

// CopyTo extracts every file into destDir, creating it and any parent
// directories an entry name implies.
//
// Every name is checked before the first write; a name that is absolute
// or climbs out with ".." fails the whole copy with ErrUnsafePath.
// Files are written atomically using temp files and renames.
func (f *File) CopyTo(destDir string, opts ...CopyOption) (CopyStats, error) {
	cfg := copyConfig{overwrite: true, mode: batch.DefaultFileMode}
	for _, opt := range opts {
		opt(&cfg)
	}

	entries, err := f.Extract()
	if err != nil {
		return CopyStats{}, err
	}

	if err := os.MkdirAll(destDir, 0o750); err != nil {
		return CopyStats{}, fmt.Errorf("create destination %s: %w", destDir, err)
	}

	sink := batch.NewFileSink(destDir,
		batch.WithOverwrite(cfg.overwrite),
		batch.WithFileMode(cfg.mode),
	)
	proc := batch.NewProcessor(
		batch.WithWorkers(cfg.workers),
		batch.WithProgress(cfg.progress),
		batch.WithProcessorLogger(f.cfg.logger),
	)
	stats, err := proc.Process(entries, sink)
	if err != nil {
		return stats, err
	}
	f.cfg.log().Debug("archive copied", "dest", destDir, "written", stats.Processed, "skipped", stats.Skipped)
	return stats, nil
}
