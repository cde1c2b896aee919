package sarc

import "github.com/meigma/sarc/internal/sarctype"

// Re-export progress types from internal/sarctype.
type (
	// ProgressEvent represents a progress update while an archive is opened or extracted.
	ProgressEvent = sarctype.ProgressEvent

	// ProgressStage identifies the current phase of an operation.
	ProgressStage = sarctype.ProgressStage

	// ProgressFunc receives progress updates during operations.
	// Implementations must be safe for concurrent calls.
	ProgressFunc = sarctype.ProgressFunc
)

// Re-export progress stage constants.
const (
	// StageDecompressing indicates the compression wrapper is being removed.
	StageDecompressing = sarctype.StageDecompressing

	// StageDecoding indicates the header and tables are being parsed.
	StageDecoding = sarctype.StageDecoding

	// StageExtracting indicates entry data is being sliced out of the archive.
	StageExtracting = sarctype.StageExtracting

	// StageWriting indicates entries are being written to disk.
	StageWriting = sarctype.StageWriting
)
