package sarc

import (
	"log/slog"

	"github.com/meigma/sarc/internal/sarctype"
)

// config holds settings shared by Decode, Load and Open.
type config struct {
	logger     *slog.Logger
	progress   ProgressFunc
	honorOrder bool
	maxSize    uint64
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// log returns the logger, falling back to a discard logger if nil.
func (c *config) log() *slog.Logger {
	if c.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return c.logger
}

func (c *config) report(ev sarctype.ProgressEvent) {
	if c.progress != nil {
		c.progress(ev)
	}
}

// Option configures Decode, Load and Open.
type Option func(*config)

// WithLogger sets the logger for decode and extraction.
// If not set, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithProgress sets a callback for progress updates.
func WithProgress(fn ProgressFunc) Option {
	return func(c *config) {
		c.progress = fn
	}
}

// WithHonorByteOrder makes the decoder read integers in the order declared
// by the header's byte-order marker.
//
// By default every integer is read big-endian and the marker is only
// recorded, so little-endian archives decode with nonsensical sizes.
func WithHonorByteOrder(honor bool) Option {
	return func(c *config) {
		c.honorOrder = honor
	}
}

// WithMaxSize limits how many bytes Open reads from disk and how large a
// Yaz0 or zstd wrapped archive may decompress to. Zero means
// DefaultMaxSize.
func WithMaxSize(n uint64) Option {
	return func(c *config) {
		c.maxSize = n
	}
}
