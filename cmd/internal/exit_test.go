package internal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFprint(t *testing.T) {
	var buf strings.Builder
	assert.NoError(t, Fprint(&buf, "key: %#x", 10))
	assert.NoError(t, Fprint(&buf, "already terminated\n"))
	assert.Equal(t, "key: 0xa\nalready terminated\n", buf.String())
}
