package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomID(t *testing.T) {
	id, err := RandomID("x_", 10)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "x_"))
	assert.Len(t, id, 12)
	for _, ch := range strings.TrimPrefix(id, "x_") {
		assert.Contains(t, base62Chars, string(ch))
	}

	_, err = RandomID("x_", 0)
	assert.Error(t, err)
}

func TestTokenIDUnique(t *testing.T) {
	seen := map[string]bool{}
	for range 100 {
		id, err := TokenID()
		require.NoError(t, err)
		assert.Len(t, id, len("jti_")+TokenIDLen)
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestMessageID(t *testing.T) {
	id, err := MessageID()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "msg_"))
	assert.Len(t, id, len("msg_")+MessageIDLen)
}
