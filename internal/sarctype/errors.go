package sarctype

import (
	"errors"
	"fmt"
)

// Sentinel errors for archive decoding and extraction.
var (
	// ErrMagicMismatch is returned when a section does not start with its signature.
	ErrMagicMismatch = errors.New("sarc: magic mismatch")

	// ErrUnrecognizedEnumValue is returned when a field holds a value outside its closed set.
	ErrUnrecognizedEnumValue = errors.New("sarc: unrecognized enum value")

	// ErrTruncated is returned when the source ends before the expected bytes.
	ErrTruncated = errors.New("sarc: truncated input")

	// ErrInvalidEncoding is returned when a name is not valid UTF-8.
	ErrInvalidEncoding = errors.New("sarc: invalid encoding")

	// ErrNodeNameCountMismatch is returned by extraction when the file and name
	// tables disagree on the number of entries.
	ErrNodeNameCountMismatch = errors.New("sarc: node/name count mismatch")

	// ErrInvalidRange is returned when a node's data end precedes its start.
	ErrInvalidRange = errors.New("sarc: invalid data range")

	// ErrUnsafePath is returned when an entry name would escape the output root.
	ErrUnsafePath = errors.New("sarc: unsafe entry name")

	// ErrDecompression is returned when the compression wrapper cannot be decoded.
	ErrDecompression = errors.New("sarc: decompression failed")

	// ErrSizeOverflow is returned when byte counts exceed supported limits.
	ErrSizeOverflow = errors.New("sarc: size overflow")
)

// MagicError reports a signature check failure.
type MagicError struct {
	Expected [4]byte
	Found    [4]byte
}

func (e *MagicError) Error() string {
	return fmt.Sprintf("sarc: incorrect magic number: expected %q, found %q", e.Expected[:], e.Found[:])
}

// Is reports whether target is ErrMagicMismatch.
func (e *MagicError) Is(target error) bool {
	return target == ErrMagicMismatch
}

// EnumError reports a value outside a closed enumeration.
type EnumError struct {
	Field string
	Value uint16
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("sarc: %s: value 0x%04x not in enum", e.Field, e.Value)
}

// Is reports whether target is ErrUnrecognizedEnumValue.
func (e *EnumError) Is(target error) bool {
	return target == ErrUnrecognizedEnumValue
}

// CountMismatchError reports differing file and name table lengths.
type CountMismatchError struct {
	NodeCount int
	NameCount int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("sarc: %d nodes, %d names", e.NodeCount, e.NameCount)
}

// Is reports whether target is ErrNodeNameCountMismatch.
func (e *CountMismatchError) Is(target error) bool {
	return target == ErrNodeNameCountMismatch
}

// RangeError reports a node whose data range is inverted.
type RangeError struct {
	Index int
	Start uint32
	End   uint32
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("sarc: node %d: data end 0x%x precedes start 0x%x", e.Index, e.End, e.Start)
}

// Is reports whether target is ErrInvalidRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrInvalidRange
}
