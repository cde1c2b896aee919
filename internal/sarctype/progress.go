package sarctype

// ProgressEvent represents a progress update while an archive is opened or extracted.
type ProgressEvent struct {
	// Stage identifies the current phase of the operation.
	Stage ProgressStage

	// Name is the entry currently being processed, if applicable.
	Name string

	// BytesDone is the number of entry bytes written so far.
	BytesDone uint64

	// FilesDone is the number of entries completed.
	FilesDone int

	// FilesTotal is the total number of entries.
	FilesTotal int
}

// ProgressStage identifies the current phase of an operation.
type ProgressStage uint8

// Progress stages for opening and extraction.
const (
	// StageDecompressing indicates the compression wrapper is being removed.
	StageDecompressing ProgressStage = iota

	// StageDecoding indicates the header and tables are being parsed.
	StageDecoding

	// StageExtracting indicates entry data is being sliced out of the archive.
	StageExtracting

	// StageWriting indicates entries are being persisted by a sink.
	StageWriting
)

// String returns the string representation of the stage.
func (s ProgressStage) String() string {
	switch s {
	case StageDecompressing:
		return "decompressing"
	case StageDecoding:
		return "decoding"
	case StageExtracting:
		return "extracting"
	case StageWriting:
		return "writing"
	default:
		return "unknown"
	}
}

// ProgressFunc receives progress updates during operations.
// Implementations must be safe for concurrent calls.
type ProgressFunc func(ProgressEvent)
