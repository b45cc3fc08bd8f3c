package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("test-secret")

	access, refresh, err := GenToken("u-1", secret, time.Hour, 24*time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, access)
	require.NotEmpty(t, refresh)

	claims, err := ParseToken(access, secret)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserId)
	assert.Equal(t, "fieldset", claims.Issuer)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	access, _, err := GenToken("u-1", []byte("right"), time.Hour, 24*time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(access, []byte("wrong"))
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	access, _, err := GenToken("u-1", []byte("secret"), -time.Minute, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken(access, []byte("secret"))
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	_, err := ParseToken("not-a-token", []byte("secret"))
	assert.Error(t, err)
}
