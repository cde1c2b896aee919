package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/meigma/sarc/internal/sarctype"
)

// Processor writes extracted entries to a sink.
//
// Entries are already in memory, so writes are independent and may run
// on several workers. Order of completion is not guaranteed when more
// than one worker is used.
type Processor struct {
	workers  int // 0 = auto, <0 = serial, >0 = fixed count
	progress sarctype.ProgressFunc
	logger   *slog.Logger
}

// log returns the logger, falling back to a discard logger if nil.
func (p *Processor) log() *slog.Logger {
	if p.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.logger
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*Processor)

// WithWorkers sets the number of workers for parallel processing.
// Values < 0 force serial processing. Zero uses GOMAXPROCS.
// Values > 0 force a specific worker count.
func WithWorkers(n int) ProcessorOption {
	return func(p *Processor) {
		p.workers = n
	}
}

// WithProgress sets a callback invoked after each entry is committed.
func WithProgress(fn sarctype.ProgressFunc) ProcessorOption {
	return func(p *Processor) {
		p.progress = fn
	}
}

// WithProcessorLogger sets the logger for batch processing operations.
// If not set, logging is disabled.
func WithProcessorLogger(logger *slog.Logger) ProcessorOption {
	return func(p *Processor) {
		p.logger = logger
	}
}

// NewProcessor creates a new batch processor.
func NewProcessor(opts ...ProcessorOption) *Processor {
	p := &Processor{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process writes entries to the sink.
//
// If the sink implements Validator, every entry is validated first, before
// sink.ShouldProcess sees it, so a rejected name leaves the destination
// untouched. Remaining entries are filtered through sink.ShouldProcess.
//
// Processing stops on the first error encountered.
func (p *Processor) Process(entries []Entry, sink Sink) (ProcessStats, error) {
	var stats ProcessStats
	if len(entries) == 0 {
		return stats, nil
	}

	if v, ok := sink.(Validator); ok {
		for i := range entries {
			if err := v.Validate(&entries[i]); err != nil {
				return stats, fmt.Errorf("batch: %s: %w", entries[i].Name, err)
			}
		}
	}

	toProcess := make([]*Entry, 0, len(entries))
	for i := range entries {
		if sink.ShouldProcess(&entries[i]) {
			toProcess = append(toProcess, &entries[i])
		} else {
			p.log().Debug("skipping entry", "name", entries[i].Name)
			stats.Skipped++
		}
	}
	if len(toProcess) == 0 {
		return stats, nil
	}

	workers := p.workerCount(len(toProcess))
	p.log().Debug("batch processing", "entries", len(toProcess), "workers", workers)

	t := &tracker{total: len(toProcess), progress: p.progress, stats: &stats}
	if workers < 2 {
		for _, entry := range toProcess {
			if err := p.processEntry(entry, sink); err != nil {
				return stats, err
			}
			t.done(entry)
		}
		return stats, nil
	}

	eg, ctx := errgroup.WithContext(context.Background())
	eg.SetLimit(workers)
	for _, entry := range toProcess {
		if ctx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := p.processEntry(entry, sink); err != nil {
				return err
			}
			t.done(entry)
			return nil
		})
	}
	err := eg.Wait()
	return stats, err
}

// processEntry writes a single entry and commits it.
func (p *Processor) processEntry(entry *Entry, sink Sink) error {
	if bufferedSink, ok := sink.(BufferedSink); ok {
		if err := bufferedSink.PutBuffered(entry, entry.Data); err != nil {
			return fmt.Errorf("batch: %s: %w", entry.Name, err)
		}
		return nil
	}

	w, err := sink.Writer(entry)
	if err != nil {
		return fmt.Errorf("batch: %s: %w", entry.Name, err)
	}

	if err := writeAll(w, entry.Data); err != nil {
		_ = w.Discard() //nolint:errcheck // best-effort cleanup
		return fmt.Errorf("batch: %s: %w", entry.Name, err)
	}

	if err := w.Commit(); err != nil {
		return fmt.Errorf("batch: %s: commit: %w", entry.Name, err)
	}
	p.log().Debug("entry committed", "name", entry.Name, "size", len(entry.Data))
	return nil
}

// workerCount determines the number of workers to use for n entries.
func (p *Processor) workerCount(n int) int {
	if n < 2 || p.workers < 0 {
		return 1
	}
	workers := p.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if workers < 2 {
		return 1
	}
	return workers
}

// tracker accumulates stats and reports progress from concurrent workers.
type tracker struct {
	mu       sync.Mutex
	total    int
	progress sarctype.ProgressFunc
	stats    *ProcessStats
}

func (t *tracker) done(entry *Entry) {
	t.mu.Lock()
	t.stats.Processed++
	t.stats.TotalBytes += uint64(len(entry.Data))
	event := sarctype.ProgressEvent{
		Stage:      sarctype.StageWriting,
		Name:       entry.Name,
		BytesDone:  t.stats.TotalBytes,
		FilesDone:  t.stats.Processed,
		FilesTotal: t.total,
	}
	t.mu.Unlock()
	if t.progress != nil {
		t.progress(event)
	}
}

func writeAll(w io.Writer, data []byte) error {
	for len(data) > 0 {
		n, err := w.Write(data)
		if err != nil {
			return err
		}
		if n == 0 {
			return io.ErrShortWrite
		}
		data = data[n:]
	}
	return nil
}
