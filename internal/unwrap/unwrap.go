// Package unwrap removes whole-archive compression wrappers, selected by
// sniffing the first four bytes of the input.
package unwrap

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"

	"github.com/meigma/sarc/internal/sarctype"
	"github.com/meigma/sarc/internal/yaz0"
)

// DefaultMaxSize caps the decompressed size of a wrapped archive (1 GiB).
const DefaultMaxSize uint64 = 1 << 30

// Scheme identifies the wrapper around an archive.
type Scheme uint8

const (
	SchemeNone Scheme = iota
	SchemeYaz0
	SchemeZstd
)

// String returns the human-readable name of the scheme.
func (s Scheme) String() string {
	switch s {
	case SchemeNone:
		return "none"
	case SchemeYaz0:
		return "yaz0"
	case SchemeZstd:
		return "zstd"
	default:
		return "unknown"
	}
}

var zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}

// Sniff identifies the wrapper from the leading bytes of data.
func Sniff(data []byte) Scheme {
	switch {
	case yaz0.IsYaz0(data):
		return SchemeYaz0
	case bytes.HasPrefix(data, zstdMagic):
		return SchemeZstd
	default:
		return SchemeNone
	}
}

// Bytes returns the unwrapped archive bytes and the scheme that was removed.
// Unwrapped input is returned as is. maxSize of zero means DefaultMaxSize.
func Bytes(data []byte, maxSize uint64) ([]byte, Scheme, error) {
	if maxSize == 0 {
		maxSize = DefaultMaxSize
	}

	scheme := Sniff(data)
	switch scheme {
	case SchemeYaz0:
		out, err := decodeYaz0(data, maxSize)
		return out, scheme, err
	case SchemeZstd:
		out, err := decodeZstd(data, maxSize)
		return out, scheme, err
	default:
		return data, scheme, nil
	}
}

func decodeYaz0(data []byte, maxSize uint64) ([]byte, error) {
	size, err := yaz0.DecodedSize(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sarctype.ErrDecompression, err)
	}
	if uint64(size) > maxSize {
		return nil, fmt.Errorf("%w: yaz0 decoded size %d exceeds %d", sarctype.ErrSizeOverflow, size, maxSize)
	}
	out, err := yaz0.Decode(data, maxSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sarctype.ErrDecompression, err)
	}
	return out, nil
}

func decodeZstd(data []byte, maxSize uint64) ([]byte, error) {
	dec, err := zstd.NewReader(nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(maxSize),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", sarctype.ErrDecompression, err)
	}
	defer dec.Close()

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
			return nil, fmt.Errorf("%w: zstd: %v", sarctype.ErrSizeOverflow, err)
		}
		return nil, fmt.Errorf("%w: %v", sarctype.ErrDecompression, err)
	}
	return out, nil
}
