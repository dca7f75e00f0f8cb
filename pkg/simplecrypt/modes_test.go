package simplecrypt

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCompressionMode(t *testing.T) {
	for _, mode := range allCompression {
		parsed, err := ParseCompressionMode(mode.String())
		assert.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}
	parsed, err := ParseCompressionMode(" ALWAYS ")
	assert.NoError(t, err)
	assert.Equal(t, CompressionAlways, parsed)

	_, err = ParseCompressionMode("sometimes")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestParseProtectionMode(t *testing.T) {
	for _, mode := range allProtection {
		parsed, err := ParseProtectionMode(mode.String())
		assert.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}
	_, err := ParseProtectionMode("crc32")
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestFlags_Has(t *testing.T) {
	fl := FlagCompression | FlagHash
	assert.True(t, fl.Has(FlagCompression))
	assert.True(t, fl.Has(FlagHash))
	assert.False(t, fl.Has(FlagChecksum))
	assert.True(t, fl.Has(FlagNone))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, ErrorNone, KindOf(nil))
	assert.Equal(t, ErrorNoKeySet, KindOf(ErrNoKeySet))
	assert.Equal(t, ErrorUnknownVersion, KindOf(fmt.Errorf("%w: 4", ErrUnknownVersion)))
	assert.Equal(t, ErrorIntegrityFailed, KindOf(fmt.Errorf("%w: bad", ErrIntegrityFailed)))
	assert.Equal(t, ErrorMalformed, KindOf(ErrMalformed))
	assert.Equal(t, ErrorRandomSource, KindOf(ErrRandomSource))
	assert.Equal(t, ErrorUnknown, KindOf(errors.New("something else")))
	assert.Equal(t, "integrity failed", ErrorIntegrityFailed.String())
}
