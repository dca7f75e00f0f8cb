package xor

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenKey(t *testing.T) {
	key, err := GenKey()
	assert.NoError(t, err)
	assert.NotZero(t, key)
	assert.Len(t, KeySchedule(key), ScheduleLen)
}

func TestGenKey_Neg(t *testing.T) {
	orig := rand.Reader
	defer func() {
		rand.Reader = orig
	}()
	rand.Reader = bytes.NewBuffer(nil)

	_, err := GenKey()
	assert.Error(t, err)
}
