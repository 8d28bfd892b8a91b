package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zhdanov/girls-backend/pkg/auth"
)

const testSecret = "test-secret"

func TestSessionTokenRoundTrip(t *testing.T) {
	token, err := auth.NewSessionToken(42, testSecret, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auth.Parse(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.Sub)
}

func TestParseRejectsTamperedToken(t *testing.T) {
	token, err := auth.NewSessionToken(42, testSecret, time.Hour)
	require.NoError(t, err)

	// Flip one byte in the signature part.
	raw := []byte(token)
	last := len(raw) - 1
	if raw[last] == 'A' {
		raw[last] = 'B'
	} else {
		raw[last] = 'A'
	}

	_, err = auth.Parse(string(raw), testSecret)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := auth.NewSessionToken(42, testSecret, time.Hour)
	require.NoError(t, err)

	_, err = auth.Parse(token, "another-secret")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token, err := auth.NewSessionToken(42, testSecret, -time.Second)
	require.NoError(t, err)

	_, err = auth.Parse(token, testSecret)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := auth.Parse("not-a-jwt", testSecret)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
