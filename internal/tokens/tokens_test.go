package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-jwt-secret")

func TestSignAndParse(t *testing.T) {
	t.Parallel()

	token, err := Sign(42, "amaowusu1234", "Ama", "Owusu", secret, TTL)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ClaimsFromToken(token, secret)
	require.NoError(t, err)

	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "amaowusu1234", claims.Username)
	assert.Equal(t, "Ama", claims.FirstName)
	assert.Equal(t, "Owusu", claims.LastName)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(TTL), claims.ExpiresAt.Time, time.Second)
}

func TestExpiredTokenRejected(t *testing.T) {
	t.Parallel()

	// issued 25h in the past relative to its 24h lifetime
	token, err := Sign(1, "u", "f", "l", secret, -time.Hour)
	require.NoError(t, err)

	_, err = ClaimsFromToken(token, secret)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestWrongSecretRejected(t *testing.T) {
	t.Parallel()

	token, err := Sign(1, "u", "f", "l", secret, TTL)
	require.NoError(t, err)

	_, err = ClaimsFromToken(token, []byte("other-secret"))
	require.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	t.Parallel()

	token, err := Sign(1, "u", "f", "l", secret, TTL)
	require.NoError(t, err)

	_, err = ClaimsFromToken(token+"x", secret)
	require.Error(t, err)
}
