// Package yaz0 decodes Yaz0, the LZ77 variant Nintendo uses to wrap
// whole files such as SARC archives (".szs").
//
// A stream is a 16-byte header (magic "Yaz0", big-endian decompressed
// size, 8 reserved bytes) followed by groups of one code byte and up to
// eight chunks. A set code bit, most significant first, copies one
// literal byte; a clear bit introduces a back-reference of two or three
// bytes.
package yaz0

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

// HeaderSize is the length of the Yaz0 header.
const HeaderSize = 16

// Magic is the Yaz0 signature.
var Magic = [4]byte{'Y', 'a', 'z', '0'}

var (
	// ErrNotYaz0 is returned when the input does not start with Magic.
	ErrNotYaz0 = errors.New("yaz0: missing signature")

	// ErrCorrupt is returned when the compressed stream is malformed.
	ErrCorrupt = errors.New("yaz0: corrupt stream")
)

// IsYaz0 reports whether data starts with the Yaz0 signature.
func IsYaz0(data []byte) bool {
	return len(data) >= 4 && bytes.Equal(data[:4], Magic[:])
}

// DecodedSize returns the decompressed size recorded in the header.
func DecodedSize(data []byte) (uint32, error) {
	if !IsYaz0(data) {
		return 0, ErrNotYaz0
	}
	if len(data) < HeaderSize {
		return 0, fmt.Errorf("%w: short header", ErrCorrupt)
	}
	return binary.BigEndian.Uint32(data[4:8]), nil
}

// Decode decompresses a complete Yaz0 stream.
//
// maxSize caps the decompressed size taken from the header; zero means
// no limit. Input bytes past the last needed chunk are ignored.
func Decode(src []byte, maxSize uint64) ([]byte, error) {
	size, err := DecodedSize(src)
	if err != nil {
		return nil, err
	}
	if maxSize > 0 && uint64(size) > maxSize {
		return nil, fmt.Errorf("%w: decoded size %d exceeds limit %d", ErrCorrupt, size, maxSize)
	}

	dst := make([]byte, 0, size)
	in := src[HeaderSize:]
	var code byte
	var bits int

	for uint32(len(dst)) < size {
		if bits == 0 {
			if len(in) == 0 {
				return nil, fmt.Errorf("%w: input ends at output %d of %d", ErrCorrupt, len(dst), size)
			}
			code = in[0]
			in = in[1:]
			bits = 8
		}

		if code&0x80 != 0 {
			if len(in) == 0 {
				return nil, fmt.Errorf("%w: literal past end of input", ErrCorrupt)
			}
			dst = append(dst, in[0])
			in = in[1:]
		} else {
			if len(in) < 2 {
				return nil, fmt.Errorf("%w: back-reference past end of input", ErrCorrupt)
			}
			b1, b2 := in[0], in[1]
			in = in[2:]

			dist := int(b1&0x0F)<<8 | int(b2)
			dist++
			n := int(b1 >> 4)
			if n == 0 {
				if len(in) == 0 {
					return nil, fmt.Errorf("%w: back-reference past end of input", ErrCorrupt)
				}
				n = int(in[0]) + 0x12
				in = in[1:]
			} else {
				n += 2
			}

			if dist > len(dst) {
				return nil, fmt.Errorf("%w: distance %d before start of output %d", ErrCorrupt, dist, len(dst))
			}
			if rest := int(size) - len(dst); n > rest {
				n = rest
			}
			// Byte-wise copy: the source may overlap the bytes being produced.
			from := len(dst) - dist
			for i := 0; i < n; i++ {
				dst = append(dst, dst[from+i])
			}
		}

		code <<= 1
		bits--
	}

	return dst, nil
}
