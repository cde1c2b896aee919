// Package binio provides fixed-width integer and string reads over a
// seekable byte source, tracking the absolute cursor for alignment.
//
// Reads are big-endian unless the caller switches the byte order with
// SetOrder. Short reads surface as sarctype.ErrTruncated.
package binio
