package sarc

import "github.com/meigma/sarc/internal/sarctype"

// Sentinel errors re-exported from internal/sarctype.
var (
	// ErrMagicMismatch is returned when a section does not start with its signature.
	ErrMagicMismatch = sarctype.ErrMagicMismatch

	// ErrUnrecognizedEnumValue is returned when the byte-order marker is neither 0xFEFF nor 0xFFFE.
	ErrUnrecognizedEnumValue = sarctype.ErrUnrecognizedEnumValue

	// ErrTruncated is returned when the input ends before a structure or data range does.
	ErrTruncated = sarctype.ErrTruncated

	// ErrInvalidEncoding is returned when a name is not valid UTF-8.
	ErrInvalidEncoding = sarctype.ErrInvalidEncoding

	// ErrNodeNameCountMismatch is returned by Extract when the file and name tables differ in length.
	ErrNodeNameCountMismatch = sarctype.ErrNodeNameCountMismatch

	// ErrInvalidRange is returned by Extract when a node's data end precedes its start.
	ErrInvalidRange = sarctype.ErrInvalidRange

	// ErrUnsafePath is returned by CopyTo when an entry name would escape the destination.
	ErrUnsafePath = sarctype.ErrUnsafePath

	// ErrDecompression is returned when a Yaz0 or zstd wrapper cannot be decoded.
	ErrDecompression = sarctype.ErrDecompression

	// ErrSizeOverflow is returned when byte counts exceed supported limits.
	ErrSizeOverflow = sarctype.ErrSizeOverflow
)

// Structured errors carrying the values behind a failure.
// Each matches its sentinel with errors.Is.
type (
	// MagicError reports the expected and found signature.
	MagicError = sarctype.MagicError

	// EnumError reports a value outside a closed enumeration.
	EnumError = sarctype.EnumError

	// CountMismatchError reports the file and name table lengths.
	CountMismatchError = sarctype.CountMismatchError

	// RangeError reports a node with an inverted data range.
	RangeError = sarctype.RangeError
)
