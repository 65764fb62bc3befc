package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := GenerateSessionToken("session-123", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	sessionID, err := ExtractSessionIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "session-123", sessionID)
}

func TestExpiredSessionTokenRejected(t *testing.T) {
	token, err := GenerateSessionToken("session-123", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractSessionIDFromToken(token)
	assert.Error(t, err)
}

func TestTamperedSessionTokenRejected(t *testing.T) {
	token, err := GenerateSessionToken("session-123", time.Hour)
	require.NoError(t, err)

	_, err = ExtractSessionIDFromToken(token + "x")
	assert.Error(t, err)
}

func TestHashTokenIsStable(t *testing.T) {
	a := HashToken("tok-abc")
	b := HashToken("tok-abc")
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, HashToken("tok-abd"))
}
