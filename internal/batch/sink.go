package batch

import (
	"io"

	"github.com/meigma/sarc/internal/sarctype"
)

// Entry is an alias for sarctype.Entry.
type Entry = sarctype.Entry

// Sink receives extracted entries during batch processing.
//
// Implementations determine where content is written (filesystem, memory, etc.)
// and can filter which entries to process.
type Sink interface {
	// ShouldProcess returns false if this entry should be skipped.
	// This allows implementations to skip existing files.
	ShouldProcess(entry *Entry) bool

	// Writer returns a writer for the entry's content.
	// The returned Committer must have Commit() called after a successful
	// write, or Discard() called on any error.
	Writer(entry *Entry) (Committer, error)
}

// Validator is implemented by sinks that can reject an entry before any
// entry in the batch is written.
type Validator interface {
	Validate(entry *Entry) error
}

// BufferedSink allows sinks to take entry content without copying.
//
// Implementations should not mutate the content slice.
type BufferedSink interface {
	PutBuffered(entry *Entry, content []byte) error
}

// Committer is a writer that can be committed or discarded.
//
// Implementations should buffer or stage writes until Commit is called.
// For example, a file-based implementation might write to a temp file
// and rename it on Commit, or delete it on Discard.
type Committer interface {
	io.Writer

	// Commit finalizes the write, making content available.
	Commit() error

	// Discard aborts the write and cleans up any temporary resources.
	Discard() error
}
