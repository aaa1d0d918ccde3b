package tokens

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundtrip(t *testing.T) {
	t.Parallel()

	secret := []byte("test-jwt-secret")
	token, err := NewSessionToken(secret, "user_1", "patient", time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := SessionClaimsFromToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "user_1", claims.Subject)
	assert.Equal(t, "patient", claims.Role)
}

func TestSessionClaimsFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewSessionToken([]byte("secret-a"), "user_1", "patient", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = SessionClaimsFromToken(token, []byte("secret-b"))
	require.Error(t, err)
}

func TestSessionClaimsFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("test-jwt-secret")
	token, err := NewSessionToken(secret, "user_1", "patient", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = SessionClaimsFromToken(token, secret)
	require.Error(t, err)
}

func TestSessionClaimsFromToken_Garbage(t *testing.T) {
	t.Parallel()

	_, err := SessionClaimsFromToken("not-a-token", []byte("test-jwt-secret"))
	require.Error(t, err)
}
