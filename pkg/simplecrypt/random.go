package simplecrypt

import (
	"fmt"
	"io"
	"math/rand/v2"
	"sync"
)

// randomSource hands out padding bytes, serializing access to the underlying reader.
type randomSource struct {
	mux sync.Mutex
	src io.Reader
}

func (r *randomSource) next() (byte, error) {
	var b [1]byte
	r.mux.Lock()
	_, err := io.ReadFull(r.src, b[:])
	r.mux.Unlock()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrRandomSource, err)
	}
	return b[0], nil
}

// seededReader adapts a seeded PRNG to io.Reader.
type seededReader struct {
	rng *rand.Rand
}

func newSeededReader(seed uint64) *seededReader {
	return &seededReader{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *seededReader) Read(out []byte) (int, error) {
	for i := range out {
		out[i] = byte(s.rng.Uint32())
	}
	return len(out), nil
}
