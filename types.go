package sarc

import (
	"github.com/meigma/sarc/internal/sarctype"
	"github.com/meigma/sarc/internal/unwrap"
)

// ExtractedEntry is one file pulled out of an archive: its name and an
// owned copy of its bytes.
type ExtractedEntry = sarctype.Entry

// Compression identifies the whole-archive wrapper removed by Load or Open.
type Compression = unwrap.Scheme

// Compression wrappers recognized by Load and Open.
const (
	CompressionNone = unwrap.SchemeNone
	CompressionYaz0 = unwrap.SchemeYaz0
	CompressionZstd = unwrap.SchemeZstd
)

// DefaultMaxSize caps the decompressed size of a wrapped archive (1 GiB).
const DefaultMaxSize = unwrap.DefaultMaxSize
