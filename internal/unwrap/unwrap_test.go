package unwrap

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meigma/sarc/internal/sarctype"
	"github.com/meigma/sarc/internal/yaz0"
)

func yaz0Literals(data []byte) []byte {
	out := make([]byte, yaz0.HeaderSize)
	copy(out, yaz0.Magic[:])
	binary.BigEndian.PutUint32(out[4:], uint32(len(data)))
	for len(data) > 0 {
		n := min(8, len(data))
		out = append(out, byte(0xFF)<<(8-n))
		out = append(out, data[:n]...)
		data = data[n:]
	}
	return out
}

func zstdEncode(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

func TestSniff(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SchemeYaz0, Sniff([]byte("Yaz0\x00\x00\x00\x10")))
	assert.Equal(t, SchemeZstd, Sniff([]byte{0x28, 0xB5, 0x2F, 0xFD, 0x00}))
	assert.Equal(t, SchemeNone, Sniff([]byte("SARC")))
	assert.Equal(t, SchemeNone, Sniff([]byte("Ya")))
	assert.Equal(t, SchemeNone, Sniff(nil))
}

func TestSchemeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", SchemeNone.String())
	assert.Equal(t, "yaz0", SchemeYaz0.String())
	assert.Equal(t, "zstd", SchemeZstd.String())
	assert.Equal(t, "unknown", Scheme(99).String())
}

func TestBytes(t *testing.T) {
	t.Parallel()

	payload := bytes.Repeat([]byte("SARC payload "), 20)

	tests := []struct {
		name   string
		input  []byte
		scheme Scheme
	}{
		{"raw", payload, SchemeNone},
		{"yaz0", yaz0Literals(payload), SchemeYaz0},
		{"zstd", zstdEncode(t, payload), SchemeZstd},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, scheme, err := Bytes(tt.input, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.scheme, scheme)
			assert.Equal(t, payload, out)
		})
	}
}

func TestBytesSizeLimit(t *testing.T) {
	t.Parallel()

	payload := bytes.Repeat([]byte{'x'}, 4096)

	_, _, err := Bytes(yaz0Literals(payload), 1024)
	require.ErrorIs(t, err, sarctype.ErrSizeOverflow)

	_, _, err = Bytes(zstdEncode(t, payload), 1024)
	require.ErrorIs(t, err, sarctype.ErrSizeOverflow)
}

func TestBytesCorrupt(t *testing.T) {
	t.Parallel()

	yaz := yaz0Literals([]byte("0123456789"))
	_, _, err := Bytes(yaz[:len(yaz)-3], 0)
	require.ErrorIs(t, err, sarctype.ErrDecompression)

	_, _, err = Bytes([]byte("Yaz0\x00"), 0)
	require.ErrorIs(t, err, sarctype.ErrDecompression)

	_, _, err = Bytes([]byte{0x28, 0xB5, 0x2F, 0xFD, 0xFF, 0xFF}, 0)
	require.ErrorIs(t, err, sarctype.ErrDecompression)
}
