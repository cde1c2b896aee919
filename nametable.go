package sarc

import (
	"fmt"

	"github.com/meigma/sarc/internal/binio"
)

var magicSFNT = [4]byte{'S', 'F', 'N', 'T'}

// nameAlign is the boundary every name starts on.
const nameAlign = 4

// NameTable is the SFNT section. Names[i] belongs to FileTable.Nodes[i].
type NameTable struct {
	HeaderLength uint16
	Names        []string
}

// decodeNameTable reads the SFNT header and then count names. The table
// does not record its own length, so count comes from the file table.
func decodeNameTable(r *binio.Reader, count int) (NameTable, error) {
	var t NameTable
	if err := r.Magic(magicSFNT); err != nil {
		return t, err
	}

	var err error
	if t.HeaderLength, err = r.Uint16(); err != nil {
		return t, err
	}

	t.Names = make([]string, 0, count)
	for i := range count {
		if err := r.Align(nameAlign); err != nil {
			return t, fmt.Errorf("name %d: %w", i, err)
		}
		name, err := r.CString()
		if err != nil {
			return t, fmt.Errorf("name %d: %w", i, err)
		}
		t.Names = append(t.Names, name)
	}
	return t, nil
}
