package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProvider() *Provider {
	return &Provider{
		Secret:     []byte("test-jwt-secret"),
		Expiration: 24 * time.Hour,
	}
}

func TestProvider_GenerateToken_SetsExpectedClaims(t *testing.T) {
	t.Parallel()

	p := newTestProvider()
	token, err := p.GenerateToken("alice", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := p.ClaimsFromToken(token)
	require.NoError(t, err)

	assert.Equal(t, "alice", claims.Subject)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestProvider_GenerateToken_UniquePerCall(t *testing.T) {
	t.Parallel()

	p := newTestProvider()
	first, err := p.GenerateToken("alice", "alice@example.com")
	require.NoError(t, err)
	second, err := p.GenerateToken("alice", "alice@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestProvider_ValidateToken(t *testing.T) {
	t.Parallel()

	p := newTestProvider()
	token, err := p.GenerateToken("alice", "alice@example.com")
	require.NoError(t, err)

	assert.True(t, p.ValidateToken(token))
	assert.False(t, p.ValidateToken("not-a-jwt"))

	other := &Provider{Secret: []byte("different-secret"), Expiration: 24 * time.Hour}
	assert.False(t, other.ValidateToken(token))
}

func TestProvider_ValidateToken_Expired(t *testing.T) {
	t.Parallel()

	p := &Provider{Secret: []byte("test-jwt-secret"), Expiration: -time.Minute}
	token, err := p.GenerateToken("alice", "alice@example.com")
	require.NoError(t, err)

	assert.False(t, p.ValidateToken(token))
}
