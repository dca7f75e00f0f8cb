package xor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewChainScreenNeg(t *testing.T) {
	_, err := newChainScreen(nil)
	assert.ErrorIs(t, err, ErrEmptyKey)
	_, err = newChainScreen([]byte{})
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestKeySchedule(t *testing.T) {
	assert.Equal(t, []byte{0xef, 0xcd, 0xab, 0x89, 0x67, 0x45, 0x23, 0x01}, KeySchedule(0x0123456789abcdef))
	assert.Equal(t, []byte{0x01, 0, 0, 0, 0, 0, 0, 0}, KeySchedule(1))
	assert.Nil(t, KeySchedule(0))
	assert.Equal(t, KeySchedule(0xdeadbeef), KeySchedule(0xdeadbeef))
}

func TestChainEncrypt(t *testing.T) {
	// random byte, checksum trailer, then "abcd"
	buf := []byte{0x07, 0xa3, 0x6b, 'a', 'b', 'c', 'd'}
	assert.NoError(t, ChainEncrypt(buf, KeySchedule(0x0123456789abcdef)))
	assert.Equal(t, []byte{0xe8, 0x86, 0x46, 0xae, 0xab, 0x8d, 0xca}, buf)
}

func TestChainDecrypt(t *testing.T) {
	buf := []byte{0xe8, 0x86, 0x46, 0xae, 0xab, 0x8d, 0xca}
	assert.NoError(t, ChainDecrypt(buf, KeySchedule(0x0123456789abcdef)))
	assert.Equal(t, []byte{0x07, 0xa3, 0x6b, 'a', 'b', 'c', 'd'}, buf)
}

func TestChain_RoundTrip(t *testing.T) {
	var (
		key  = KeySchedule(0xfeedfacecafebeef)
		data = []byte("A longer string with some text that wraps the key schedule a few times")
		buf  = append([]byte(nil), data...)
	)
	assert.NoError(t, ChainEncrypt(buf, key))
	assert.NotEqual(t, data, buf)
	assert.NoError(t, ChainDecrypt(buf, key))
	assert.Equal(t, data, buf)
}

func TestChain_Diffusion(t *testing.T) {
	var (
		key = KeySchedule(0x0123456789abcdef)
		a   = []byte("aaaaaaaaaaaaaaaa")
		b   = []byte("baaaaaaaaaaaaaaa")
	)
	assert.NoError(t, ChainEncrypt(a, key))
	assert.NoError(t, ChainEncrypt(b, key))
	for i := range a {
		assert.NotEqual(t, a[i], b[i], "byte %d should differ after a change to the first byte", i)
	}
}

func TestChain_EmptyKey(t *testing.T) {
	assert.ErrorIs(t, ChainEncrypt([]byte{1}, nil), ErrEmptyKey)
	assert.ErrorIs(t, ChainDecrypt([]byte{1}, KeySchedule(0)), ErrEmptyKey)
}
