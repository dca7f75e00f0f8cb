package simplecrypt

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeflate(t *testing.T) {
	data := bytes.Repeat([]byte("compress me "), 100)
	compressed, err := deflate(data)
	assert.NoError(t, err)
	assert.Equal(t, uint32(len(data)), binary.BigEndian.Uint32(compressed[:4]))
	// zlib header for best compression
	assert.Equal(t, []byte{0x78, 0xda}, compressed[4:6])

	got, err := inflate(compressed)
	assert.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestDeflate_Empty(t *testing.T) {
	compressed, err := deflate(nil)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0}, compressed)

	got, err := inflate(compressed)
	assert.NoError(t, err)
	assert.Empty(t, got)
}

func TestCompress(t *testing.T) {
	short := []byte("abcd")
	long := bytes.Repeat([]byte{'z'}, 500)

	out, flags, err := compress(short, CompressionNever)
	assert.NoError(t, err)
	assert.Equal(t, short, out)
	assert.Equal(t, FlagNone, flags)

	out, flags, err = compress(short, CompressionAuto)
	assert.NoError(t, err)
	assert.Equal(t, short, out)
	assert.Equal(t, FlagNone, flags)

	out, flags, err = compress(short, CompressionAlways)
	assert.NoError(t, err)
	assert.Greater(t, len(out), len(short))
	assert.Equal(t, FlagCompression, flags)

	out, flags, err = compress(long, CompressionAuto)
	assert.NoError(t, err)
	assert.Less(t, len(out), len(long))
	assert.Equal(t, FlagCompression, flags)

	_, _, err = compress(short, CompressionMode(-2))
	assert.ErrorIs(t, err, ErrInvalidMode)
}
