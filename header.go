package sarc

import (
	"encoding/binary"
	"fmt"

	"github.com/meigma/sarc/internal/binio"
	"github.com/meigma/sarc/internal/sarctype"
)

var magicSARC = [4]byte{'S', 'A', 'R', 'C'}

// ByteOrder is the byte-order marker declared in the archive header.
type ByteOrder uint16

// Known byte-order marker values, as read big-endian.
const (
	BigEndian    ByteOrder = 0xFEFF
	LittleEndian ByteOrder = 0xFFFE
)

// ParseByteOrder maps a raw marker to a ByteOrder.
// Values outside the known pair return *EnumError.
func ParseByteOrder(v uint16) (ByteOrder, error) {
	switch o := ByteOrder(v); o {
	case BigEndian, LittleEndian:
		return o, nil
	default:
		return 0, &sarctype.EnumError{Field: "byte order", Value: v}
	}
}

// String returns the human-readable name of the byte order.
func (o ByteOrder) String() string {
	switch o {
	case BigEndian:
		return "big-endian"
	case LittleEndian:
		return "little-endian"
	default:
		return fmt.Sprintf("ByteOrder(0x%04x)", uint16(o))
	}
}

// order returns the encoding/binary order the marker declares.
func (o ByteOrder) order() binary.ByteOrder {
	if o == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// Header is the archive header.
type Header struct {
	HeaderLength uint16
	ByteOrder    ByteOrder
	FileSize     uint32
	// DataOffset is the absolute offset of the data region.
	DataOffset uint32
	Version    uint16
}

// decodeHeader reads the header at the cursor.
//
// Every field is read big-endian and the marker is only recorded, unless
// honorOrder is set; then the reader switches to the declared order and
// the header length, read before the marker, is reinterpreted.
func decodeHeader(r *binio.Reader, honorOrder bool) (Header, error) {
	var h Header
	if err := r.Magic(magicSARC); err != nil {
		return h, err
	}

	var rawLen [2]byte
	if err := r.ReadFull(rawLen[:]); err != nil {
		return h, err
	}
	marker, err := r.Uint16()
	if err != nil {
		return h, err
	}
	if h.ByteOrder, err = ParseByteOrder(marker); err != nil {
		return h, err
	}
	if honorOrder {
		r.SetOrder(h.ByteOrder.order())
	}
	h.HeaderLength = r.Order().Uint16(rawLen[:])

	if h.FileSize, err = r.Uint32(); err != nil {
		return h, err
	}
	if h.DataOffset, err = r.Uint32(); err != nil {
		return h, err
	}
	if h.Version, err = r.Uint16(); err != nil {
		return h, err
	}
	// reserved
	if err := r.Skip(2); err != nil {
		return h, err
	}
	return h, nil
}
