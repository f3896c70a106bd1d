package tokens_test

import (
	"testing"
	"time"

	"pizzaria/internal/pkg/tokens"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-jwt-secret")

func TestNewAccessToken_SetsExpectedClaims(t *testing.T) {
	t.Parallel()

	expiresAt := time.Now().Add(30 * time.Minute).UTC()

	token, err := tokens.NewAccessToken("user-123", true, expiresAt, testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tokens.AccessClaimsFromToken(token, testSecret)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.Subject)
	assert.True(t, claims.Admin)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt.Time, time.Second)
}

func TestAccessClaimsFromToken_RejectsWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := tokens.NewAccessToken("user-123", false, time.Now().Add(time.Minute), testSecret)
	require.NoError(t, err)

	claims, err := tokens.AccessClaimsFromToken(token, []byte("another-secret"))
	require.Error(t, err)
	assert.Nil(t, claims)
}

func TestAccessClaimsFromToken_RejectsExpiredToken(t *testing.T) {
	t.Parallel()

	token, err := tokens.NewAccessToken("user-123", false, time.Now().Add(-time.Minute), testSecret)
	require.NoError(t, err)

	claims, err := tokens.AccessClaimsFromToken(token, testSecret)
	require.Error(t, err)
	assert.Nil(t, claims)
}
