// Package testutil synthesizes SARC archives for tests.
package testutil

import (
	"encoding/binary"
)

// Section sizes of the fixed-layout parts of an archive.
const (
	HeaderSize    = 0x14
	FATHeaderSize = 0x0C
	NodeSize      = 0x10
	FNTHeaderSize = 0x08
)

// File is one entry to place in a synthesized archive.
type File struct {
	Name       string
	Data       []byte
	Hash       uint32
	Attributes uint32
}

// Layout records where each part of a built archive landed.
type Layout struct {
	FAT        int
	FNT        int
	DataOffset int
	// Starts holds the absolute offset of each file's data.
	Starts []int
	// NameOffsets holds the absolute offset of each name string.
	NameOffsets []int
}

// Builder writes a SARC archive.
//
// The zero value produces a big-endian archive with version 0x0100,
// hash multiplier 0x65 and data aligned to 4 bytes.
type Builder struct {
	Files []File

	// Order is used for every integer field. Nil means big-endian.
	Order binary.ByteOrder

	// Marker, when non-zero, is written big-endian as the raw byte-order
	// marker instead of the value implied by Order.
	Marker uint16

	Version        uint16
	HashMultiplier uint32

	// DataAlign pads the data region start and every file's data.
	DataAlign int
}

// Build returns the archive bytes and their layout.
func (b *Builder) Build() ([]byte, Layout) {
	order := b.Order
	if order == nil {
		order = binary.BigEndian
	}
	version := b.Version
	if version == 0 {
		version = 0x0100
	}
	mult := b.HashMultiplier
	if mult == 0 {
		mult = 0x65
	}
	align := b.DataAlign
	if align <= 0 {
		align = 4
	}

	w := &writer{order: order}
	var layout Layout

	// Header; sizes and offsets are patched once known.
	w.raw([]byte("SARC"))
	w.u16(HeaderSize)
	if b.Marker != 0 {
		w.raw(binary.BigEndian.AppendUint16(nil, b.Marker))
	} else {
		w.u16(0xFEFF)
	}
	fileSizeAt := w.len()
	w.u32(0)
	dataOffsetAt := w.len()
	w.u32(0)
	w.u16(version)
	w.u16(0)

	layout.FAT = w.len()
	w.raw([]byte("SFAT"))
	w.u16(FATHeaderSize)
	w.u16(uint16(len(b.Files)))
	w.u32(mult)

	// Data ranges are relative to the data region.
	rel := 0
	starts := make([]int, len(b.Files))
	for i, f := range b.Files {
		rel = alignUp(rel, align)
		starts[i] = rel
		w.u32(f.Hash)
		w.u32(f.Attributes)
		w.u32(uint32(rel))
		w.u32(uint32(rel + len(f.Data)))
		rel += len(f.Data)
	}

	layout.FNT = w.len()
	w.raw([]byte("SFNT"))
	w.u16(FNTHeaderSize)
	w.u16(0)
	for _, f := range b.Files {
		w.pad(4)
		layout.NameOffsets = append(layout.NameOffsets, w.len())
		w.raw([]byte(f.Name))
		w.raw([]byte{0})
	}

	w.pad(align)
	layout.DataOffset = w.len()
	for i, f := range b.Files {
		w.padTo(layout.DataOffset + starts[i])
		layout.Starts = append(layout.Starts, w.len())
		w.raw(f.Data)
	}

	order.PutUint32(w.buf[fileSizeAt:], uint32(w.len()))
	order.PutUint32(w.buf[dataOffsetAt:], uint32(layout.DataOffset))
	return w.buf, layout
}

// Bytes returns the archive bytes.
func (b *Builder) Bytes() []byte {
	data, _ := b.Build()
	return data
}

type writer struct {
	buf   []byte
	order binary.ByteOrder
}

func (w *writer) len() int { return len(w.buf) }
func (w *writer) raw(p []byte) { w.buf = append(w.buf, p...) }
func (w *writer) pad(n int) { w.padTo(alignUp(len(w.buf), n)) }

func (w *writer) u16(v uint16) {
	var b [2]byte
	w.order.PutUint16(b[:], v)
	w.raw(b[:])
}

func (w *writer) u32(v uint32) {
	var b [4]byte
	w.order.PutUint32(b[:], v)
	w.raw(b[:])
}

func (w *writer) padTo(off int) {
	for len(w.buf) < off {
		w.buf = append(w.buf, 0)
	}
}

func alignUp(v, n int) int {
	if rem := v % n; rem != 0 {
		return v + n - rem
	}
	return v
}
