package simplecrypt

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bin "github.com/saylorsolutions/binmap"
)

const (
	// Version is the only format version this package reads or writes.
	Version   byte = 3
	headerLen      = 2
	// A blob needs a header and at least the random byte.
	minBlobLen = headerLen + 1
)

var endian = binary.BigEndian

type header struct {
	version byte
	flags   Flags
}

func (h *header) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Byte(&h.version),
		bin.Byte((*byte)(&h.flags)),
	)
}

func (h *header) write(buf *bytes.Buffer) error {
	return h.mapper().Write(buf, endian)
}

// readHeader parses the version and flags, rejecting versions other than Version before anything else is read.
func readHeader(blob []byte) (header, error) {
	var h header
	if len(blob) < minBlobLen {
		return h, fmt.Errorf("%w: %d bytes is too short to be a valid blob", ErrMalformed, len(blob))
	}
	if err := bin.Byte(&h.version).Read(bytes.NewReader(blob[:1]), endian); err != nil {
		return h, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if h.version != Version {
		return h, fmt.Errorf("%w: %d", ErrUnknownVersion, h.version)
	}
	if err := h.mapper().Read(bytes.NewReader(blob[:headerLen]), endian); err != nil {
		return h, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return h, nil
}
