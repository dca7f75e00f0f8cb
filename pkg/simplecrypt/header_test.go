package simplecrypt

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	h := header{version: Version, flags: FlagCompression | FlagChecksum}
	assert.NoError(t, h.write(&buf))
	assert.Equal(t, []byte{0x03, 0x03}, buf.Bytes())

	buf.WriteByte(0x00)
	read, err := readHeader(buf.Bytes())
	assert.NoError(t, err)
	assert.Equal(t, h, read)
}

func TestReadHeader_Neg(t *testing.T) {
	_, err := readHeader([]byte{3, 0})
	assert.ErrorIs(t, err, ErrMalformed)
	_, err = readHeader([]byte{2, 0, 0})
	assert.ErrorIs(t, err, ErrUnknownVersion)
}
