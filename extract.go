package sarc

import (
	"fmt"
	"io"

	"github.com/meigma/sarc/internal/binio"
	"github.com/meigma/sarc/internal/sarctype"
	"github.com/meigma/sarc/internal/sizing"
)

// Extract pairs nodes with names by position and reads each file's bytes
// from r, the same source the archive was decoded from. Data ranges are
// resolved against Offset.
//
// The file and name tables must be the same length; otherwise a
// *CountMismatchError is returned before anything is read. Entries are
// returned in file table order and own their data.
func (a *Archive) Extract(r io.ReadSeeker) ([]ExtractedEntry, error) {
	nodes := a.FileTable.Nodes
	names := a.NameTable.Names
	if len(nodes) != len(names) {
		return nil, &sarctype.CountMismatchError{NodeCount: len(nodes), NameCount: len(names)}
	}

	br := binio.NewReader(r)
	size, err := br.Size()
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}

	entries := make([]ExtractedEntry, 0, len(nodes))
	var done uint64
	for i, node := range nodes {
		if node.DataEnd < node.DataStart {
			return nil, &sarctype.RangeError{Index: i, Start: node.DataStart, End: node.DataEnd}
		}
		start, end := sizing.Span(a.Header.DataOffset, node.DataStart, node.DataEnd)
		start += uint64(a.offset)
		end += uint64(a.offset)
		if end > uint64(size) {
			return nil, fmt.Errorf("extract %s: %w: data ends at %d, source is %d bytes",
				names[i], sarctype.ErrTruncated, end, size)
		}

		n, err := sizing.ToInt(end-start, sarctype.ErrSizeOverflow)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", names[i], err)
		}
		data := make([]byte, n)
		if err := br.SeekTo(int64(start)); err != nil {
			return nil, fmt.Errorf("extract %s: %w", names[i], err)
		}
		if err := br.ReadFull(data); err != nil {
			return nil, fmt.Errorf("extract %s: %w", names[i], err)
		}
		entries = append(entries, ExtractedEntry{Name: names[i], Data: data})

		done += uint64(len(data))
		a.cfg.report(sarctype.ProgressEvent{
			Stage:      sarctype.StageExtracting,
			Name:       names[i],
			BytesDone:  done,
			FilesDone:  i + 1,
			FilesTotal: len(nodes),
		})
	}

	a.cfg.log().Debug("archive extracted", "entries", len(entries), "bytes", done)
	return entries, nil
}
