package simplecrypt

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/klauspost/compress/zlib"
	bin "github.com/saylorsolutions/binmap"
)

const sizePrefixLen = 4

// compress applies mode to data, returning the payload to protect and whether FlagCompression applies.
func compress(data []byte, mode CompressionMode) ([]byte, Flags, error) {
	switch mode {
	case CompressionNever:
		return data, FlagNone, nil
	case CompressionAlways:
		compressed, err := deflate(data)
		if err != nil {
			return nil, FlagNone, err
		}
		return compressed, FlagCompression, nil
	case CompressionAuto:
		compressed, err := deflate(data)
		if err != nil {
			return nil, FlagNone, err
		}
		if len(compressed) < len(data) {
			return compressed, FlagCompression, nil
		}
		return data, FlagNone, nil
	default:
		return nil, FlagNone, mode.validate()
	}
}

// deflate writes the uncompressed size as a big-endian uint32, followed by a zlib stream at best compression.
// Empty input produces only the size prefix.
func deflate(data []byte) ([]byte, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes is too large to compress", ErrMalformed, len(data))
	}
	var (
		buf  bytes.Buffer
		size = uint32(len(data))
	)
	if err := bin.Int(&size).Write(&buf, endian); err != nil {
		return nil, err
	}
	if size == 0 {
		return buf.Bytes(), nil
	}
	w, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// inflate reverses deflate, requiring that the stream produces exactly the declared number of bytes.
func inflate(data []byte) ([]byte, error) {
	if len(data) < sizePrefixLen {
		return nil, fmt.Errorf("%w: compressed payload is missing its size prefix", ErrMalformed)
	}
	var size uint32
	if err := bin.Int(&size).Read(bytes.NewReader(data[:sizePrefixLen]), endian); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	stream := data[sizePrefixLen:]
	if size == 0 && len(stream) == 0 {
		return []byte{}, nil
	}
	r, err := zlib.NewReader(bytes.NewReader(stream))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	defer func() {
		_ = r.Close()
	}()
	// Read at most one byte past size so a stream longer than declared is detected.
	out, err := io.ReadAll(io.LimitReader(r, int64(size)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(out) != int(size) {
		return nil, fmt.Errorf("%w: decompressed %d bytes, expected %d", ErrMalformed, len(out), size)
	}
	return out, nil
}
