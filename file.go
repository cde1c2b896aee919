package sarc

import (
	"bytes"
	"fmt"
	"os"

	"github.com/meigma/sarc/internal/sarctype"
	"github.com/meigma/sarc/internal/sizing"
	"github.com/meigma/sarc/internal/unwrap"
)

// File is an archive held in memory, with any Yaz0 or zstd wrapper
// already removed.
type File struct {
	archive     *Archive
	data        []byte
	compression Compression
	cfg         config
}

// Open reads the archive at path and decodes it. The file itself may be
// no larger than the WithMaxSize limit.
func Open(path string, opts ...Option) (*File, error) {
	cfg := newConfig(opts)
	limit := cfg.maxSize
	if limit == 0 {
		limit = DefaultMaxSize
	}

	fh, err := os.Open(path) //nolint:gosec // User-provided path is intentional
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer fh.Close()

	data, err := sizing.ReadAllWithLimit(fh, limit, sarctype.ErrSizeOverflow)
	if err != nil {
		return nil, fmt.Errorf("read archive %s: %w", path, err)
	}
	f, err := Load(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Load decodes an archive from data. A Yaz0 or zstd wrapper is detected
// by its magic and removed first; the decompressed size is bounded by
// WithMaxSize.
func Load(data []byte, opts ...Option) (*File, error) {
	cfg := newConfig(opts)

	scheme := unwrap.Sniff(data)
	if scheme != unwrap.SchemeNone {
		cfg.report(sarctype.ProgressEvent{Stage: sarctype.StageDecompressing})
	}
	raw, scheme, err := unwrap.Bytes(data, cfg.maxSize)
	if err != nil {
		return nil, err
	}
	if scheme != unwrap.SchemeNone {
		cfg.log().Debug("archive unwrapped", "compression", scheme, "compressed", len(data), "size", len(raw))
	}

	archive, err := Decode(bytes.NewReader(raw), opts...)
	if err != nil {
		return nil, err
	}
	return &File{
		archive:     archive,
		data:        raw,
		compression: scheme,
		cfg:         cfg,
	}, nil
}

// Archive returns the decoded header and tables.
func (f *File) Archive() *Archive {
	return f.archive
}

// Bytes returns the unwrapped archive bytes. The slice must not be modified.
func (f *File) Bytes() []byte {
	return f.data
}

// Compression reports the wrapper that was removed on load.
func (f *File) Compression() Compression {
	return f.compression
}

// Extract returns every file in the archive in file table order.
func (f *File) Extract() ([]ExtractedEntry, error) {
	return f.archive.Extract(bytes.NewReader(f.data))
}
