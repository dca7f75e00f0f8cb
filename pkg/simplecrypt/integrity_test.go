package simplecrypt

import (
	"crypto/sha1" //nolint:gosec
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProtect(t *testing.T) {
	payload := []byte("abcd")

	trailer, flags, err := protect(payload, ProtectionNone)
	assert.NoError(t, err)
	assert.Empty(t, trailer)
	assert.Equal(t, FlagNone, flags)

	trailer, flags, err = protect(payload, ProtectionChecksum)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0xa3, 0x6b}, trailer)
	assert.Equal(t, FlagChecksum, flags)

	trailer, flags, err = protect(payload, ProtectionHash)
	assert.NoError(t, err)
	hash := sha1.Sum(payload) //nolint:gosec
	assert.Equal(t, hash[:], trailer)
	assert.Equal(t, FlagHash, flags)

	_, _, err = protect(payload, ProtectionMode(9))
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestVerify(t *testing.T) {
	payload, err := verify([]byte{0xa3, 0x6b, 'a', 'b', 'c', 'd'}, FlagChecksum)
	assert.NoError(t, err)
	assert.Equal(t, []byte("abcd"), payload)

	_, err = verify([]byte{0xa3, 0x6c, 'a', 'b', 'c', 'd'}, FlagChecksum)
	assert.ErrorIs(t, err, ErrIntegrityFailed)

	_, err = verify([]byte{0xa3}, FlagChecksum)
	assert.ErrorIs(t, err, ErrIntegrityFailed)

	hash := sha1.Sum([]byte("abcd")) //nolint:gosec
	payload, err = verify(append(hash[:], "abcd"...), FlagHash)
	assert.NoError(t, err)
	assert.Equal(t, []byte("abcd"), payload)

	_, err = verify(hash[:19], FlagHash)
	assert.ErrorIs(t, err, ErrIntegrityFailed)

	payload, err = verify([]byte("abcd"), FlagNone)
	assert.NoError(t, err)
	assert.Equal(t, []byte("abcd"), payload)
}

func TestVerify_ChecksumPrecedence(t *testing.T) {
	payload, err := verify([]byte{0xa3, 0x6b, 'a', 'b', 'c', 'd'}, FlagChecksum|FlagHash)
	assert.NoError(t, err)
	assert.Equal(t, []byte("abcd"), payload)
}
