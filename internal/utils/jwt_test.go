package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashTokenIsDeterministic(t *testing.T) {
	t.Parallel()

	a := HashToken("some-refresh-token")
	b := HashToken("some-refresh-token")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64) // sha256 hex
	assert.NotEqual(t, a, HashToken("another-token"))
}

func TestRandomHexLengthAndUniqueness(t *testing.T) {
	t.Parallel()

	a, err := RandomHex(32)
	require.NoError(t, err)
	b, err := RandomHex(32)
	require.NoError(t, err)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse battery", 4)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "correct horse battery"))
	assert.False(t, VerifyPassword(hash, "wrong password"))
}
