package binio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/meigma/sarc/internal/sarctype"
)

// Reader reads structured values from a seekable source.
type Reader struct {
	r     io.ReadSeeker
	order binary.ByteOrder
	base  int64
	buf   [4]byte
}

// NewReader returns a big-endian Reader positioned wherever r currently is.
func NewReader(r io.ReadSeeker) *Reader {
	return &Reader{r: r, order: binary.BigEndian}
}

// SetOrder changes the byte order used for subsequent integer reads.
func (r *Reader) SetOrder(order binary.ByteOrder) {
	r.order = order
}

// SetBase sets the absolute position that Align measures from.
func (r *Reader) SetBase(off int64) {
	r.base = off
}

// Base returns the absolute position that Align measures from.
func (r *Reader) Base() int64 {
	return r.base
}

// Order returns the byte order used for integer reads.
func (r *Reader) Order() binary.ByteOrder {
	return r.order
}

// ReadFull fills p from the source.
func (r *Reader) ReadFull(p []byte) error {
	if _, err := io.ReadFull(r.r, p); err != nil {
		return truncated(len(p), err)
	}
	return nil
}

// Uint8 reads one byte.
func (r *Reader) Uint8() (uint8, error) {
	if err := r.ReadFull(r.buf[:1]); err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

// Uint16 reads a two-byte unsigned integer.
func (r *Reader) Uint16() (uint16, error) {
	if err := r.ReadFull(r.buf[:2]); err != nil {
		return 0, err
	}
	return r.order.Uint16(r.buf[:2]), nil
}

// Uint32 reads a four-byte unsigned integer.
func (r *Reader) Uint32() (uint32, error) {
	if err := r.ReadFull(r.buf[:4]); err != nil {
		return 0, err
	}
	return r.order.Uint32(r.buf[:4]), nil
}

// Magic reads four bytes and checks them against want.
// A mismatch is reported as *sarctype.MagicError.
func (r *Reader) Magic(want [4]byte) error {
	var found [4]byte
	if err := r.ReadFull(found[:]); err != nil {
		return err
	}
	if found != want {
		return &sarctype.MagicError{Expected: want, Found: found}
	}
	return nil
}

// CString reads bytes up to and including a NUL terminator and returns the
// bytes before it as UTF-8 text.
func (r *Reader) CString() (string, error) {
	var out bytes.Buffer
	br, ok := r.r.(io.ByteReader)
	for {
		var c byte
		var err error
		if ok {
			c, err = br.ReadByte()
		} else {
			_, err = io.ReadFull(r.r, r.buf[:1])
			c = r.buf[0]
		}
		if err != nil {
			return "", truncated(1, err)
		}
		if c == 0 {
			break
		}
		out.WriteByte(c)
	}
	if !utf8.Valid(out.Bytes()) {
		return "", fmt.Errorf("%w: %q", sarctype.ErrInvalidEncoding, out.Bytes())
	}
	return out.String(), nil
}

// Pos returns the absolute cursor position.
func (r *Reader) Pos() (int64, error) {
	return r.r.Seek(0, io.SeekCurrent)
}

// Size returns the total length of the source. The cursor is left where
// it was.
func (r *Reader) Size() (int64, error) {
	pos, err := r.Pos()
	if err != nil {
		return 0, err
	}
	end, err := r.r.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := r.r.Seek(pos, io.SeekStart); err != nil {
		return 0, err
	}
	return end, nil
}

// Skip advances the cursor by n bytes without reading them.
func (r *Reader) Skip(n int64) error {
	_, err := r.r.Seek(n, io.SeekCurrent)
	return err
}

// SeekTo moves the cursor to an absolute position.
func (r *Reader) SeekTo(off int64) error {
	_, err := r.r.Seek(off, io.SeekStart)
	return err
}

// Align advances the cursor to the next multiple of n past Base. It does
// nothing when the cursor is already aligned. Skipped bytes are not
// inspected.
func (r *Reader) Align(n int64) error {
	pos, err := r.Pos()
	if err != nil {
		return err
	}
	if rem := (pos - r.base) % n; rem != 0 {
		return r.Skip(n - rem)
	}
	return nil
}

// truncated converts short-read errors to ErrTruncated.
func truncated(want int, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: need %d bytes: %w", sarctype.ErrTruncated, want, err)
	}
	return err
}
