package sarc

import (
	"fmt"
	"io"

	"github.com/meigma/sarc/internal/binio"
	"github.com/meigma/sarc/internal/sarctype"
)

// Archive is a decoded SARC archive: its header and both tables.
//
// Decoding does not read the data region. Extract reads it from the same
// source on demand.
type Archive struct {
	Header    Header
	FileTable FileTable
	NameTable NameTable

	// offset is the absolute source position of the "SARC" magic.
	offset int64
	cfg    config
}

// Decode parses the header, file table and name table from r, starting
// at its current position. Name alignment and data offsets are measured
// from that position, so an archive embedded in a larger source decodes
// the same as a standalone one.
//
// Sections are expected back to back: the file table right after the
// header and the name table right after the last node. Names are decoded
// until the node count is reached; whether the two tables agree is left
// to Extract.
func Decode(r io.ReadSeeker, opts ...Option) (*Archive, error) {
	cfg := newConfig(opts)
	cfg.report(sarctype.ProgressEvent{Stage: sarctype.StageDecoding})

	br := binio.NewReader(r)
	offset, err := br.Pos()
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	br.SetBase(offset)

	hdr, err := decodeHeader(br, cfg.honorOrder)
	if err != nil {
		return nil, fmt.Errorf("decode header: %w", err)
	}
	fat, err := decodeFileTable(br)
	if err != nil {
		return nil, fmt.Errorf("decode file table: %w", err)
	}
	fnt, err := decodeNameTable(br, int(fat.NodeCount))
	if err != nil {
		return nil, fmt.Errorf("decode name table: %w", err)
	}

	cfg.log().Debug("archive decoded",
		"byte_order", hdr.ByteOrder,
		"version", hdr.Version,
		"nodes", fat.NodeCount,
		"data_offset", hdr.DataOffset)

	return &Archive{
		Header:    hdr,
		FileTable: fat,
		NameTable: fnt,
		offset:    offset,
		cfg:       cfg,
	}, nil
}

// Offset returns the position in the decoded source where the archive
// starts. Header and node offsets are relative to it.
func (a *Archive) Offset() int64 {
	return a.offset
}

// Len returns the number of file nodes.
func (a *Archive) Len() int {
	return len(a.FileTable.Nodes)
}
