package xor

import (
	"errors"
)

// ScheduleLen is the length of a key schedule derived with KeySchedule.
const ScheduleLen = 8

var ErrEmptyKey = errors.New("cannot use empty key")

// KeySchedule splits key into its 8 bytes, least significant first.
// A zero key is treated as unset and yields a nil schedule.
func KeySchedule(key uint64) []byte {
	if key == 0 {
		return nil
	}
	schedule := make([]byte, ScheduleLen)
	for x := 0; x < ScheduleLen; x++ {
		schedule[x] = byte(key >> (8 * x))
	}
	return schedule
}

// ChainEncrypt applies the chained XOR transform to buf in place.
// Each output byte is buf[pos] ^ key[pos%len(key)] ^ the previous output byte.
func ChainEncrypt(buf, key []byte) error {
	scr, err := newChainScreen(key)
	if err != nil {
		return err
	}
	for i := range buf {
		buf[i] = scr.encrypt(buf[i])
	}
	return nil
}

// ChainDecrypt reverses ChainEncrypt in place.
// Each output byte is buf[pos] ^ the previous input byte ^ key[pos%len(key)].
func ChainDecrypt(buf, key []byte) error {
	scr, err := newChainScreen(key)
	if err != nil {
		return err
	}
	for i := range buf {
		buf[i] = scr.decrypt(buf[i])
	}
	return nil
}

type chainScreen struct {
	key  []byte
	cur  int
	last byte
}

func newChainScreen(key []byte) (*chainScreen, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	return &chainScreen{key: key}, nil
}

func (s *chainScreen) encrypt(b byte) byte {
	b ^= s.key[s.cur] ^ s.last
	s.last = b
	s.advance()
	return b
}

func (s *chainScreen) decrypt(b byte) byte {
	out := b ^ s.last ^ s.key[s.cur]
	s.last = b
	s.advance()
	return out
}

func (s *chainScreen) advance() {
	s.cur++
	if s.cur == len(s.key) {
		s.cur = 0
	}
}

func (s *chainScreen) reset() {
	s.cur = 0
	s.last = 0
}
