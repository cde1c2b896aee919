package sarc

import (
	"fmt"

	"github.com/meigma/sarc/internal/binio"
)

var magicSFAT = [4]byte{'S', 'F', 'A', 'T'}

// FileTable is the SFAT section: one node per archived file.
type FileTable struct {
	HeaderLength   uint16
	NodeCount      uint16
	HashMultiplier uint32
	// Nodes are in file order, which is the only link to the name table.
	Nodes []FileNode
}

// FileNode locates one file in the data region.
//
// NameHash and Attributes are carried as read; neither is checked.
type FileNode struct {
	NameHash   uint32
	Attributes uint32
	// DataStart and DataEnd are relative to Header.DataOffset.
	DataStart uint32
	DataEnd   uint32
}

// Size returns the length of the node's data, or zero for an inverted range.
func (n FileNode) Size() uint32 {
	if n.DataEnd < n.DataStart {
		return 0
	}
	return n.DataEnd - n.DataStart
}

func decodeFileTable(r *binio.Reader) (FileTable, error) {
	var t FileTable
	if err := r.Magic(magicSFAT); err != nil {
		return t, err
	}

	var err error
	if t.HeaderLength, err = r.Uint16(); err != nil {
		return t, err
	}
	if t.NodeCount, err = r.Uint16(); err != nil {
		return t, err
	}
	if t.HashMultiplier, err = r.Uint32(); err != nil {
		return t, err
	}

	t.Nodes = make([]FileNode, 0, t.NodeCount)
	for i := range int(t.NodeCount) {
		node, err := decodeFileNode(r)
		if err != nil {
			return t, fmt.Errorf("node %d: %w", i, err)
		}
		t.Nodes = append(t.Nodes, node)
	}
	return t, nil
}

func decodeFileNode(r *binio.Reader) (FileNode, error) {
	var n FileNode
	var err error
	if n.NameHash, err = r.Uint32(); err != nil {
		return n, err
	}
	if n.Attributes, err = r.Uint32(); err != nil {
		return n, err
	}
	if n.DataStart, err = r.Uint32(); err != nil {
		return n, err
	}
	if n.DataEnd, err = r.Uint32(); err != nil {
		return n, err
	}
	return n, nil
}
