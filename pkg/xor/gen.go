package xor

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// GenKey will generate a random, non-zero 64-bit key from the OS entropy pool.
func GenKey() (uint64, error) {
	buf := make([]byte, 8)
	for {
		if _, err := io.ReadFull(rand.Reader, buf); err != nil {
			return 0, fmt.Errorf("failed to read requested bytes: %w", err)
		}
		if key := binary.BigEndian.Uint64(buf); key != 0 {
			return key, nil
		}
	}
}
