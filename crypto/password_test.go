package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret12", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEmpty(t, hash)

	assert.True(t, CheckPassword("secret12", hash))
	assert.False(t, CheckPassword("secret13", hash))
	assert.False(t, CheckPassword("", hash))
}

func TestHashPasswordIsSelfDescribing(t *testing.T) {
	hash, err := HashPassword("secret12", bcrypt.MinCost)
	require.NoError(t, err)

	// bcrypt strings carry version, cost and salt: $2a$04$<salt+digest>
	assert.True(t, strings.HasPrefix(hash, "$2a$04$"), "unexpected hash prefix: %s", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestHashPasswordFreshSaltPerCall(t *testing.T) {
	first, err := HashPassword("same-password", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := HashPassword("same-password", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, CheckPassword("same-password", first))
	assert.True(t, CheckPassword("same-password", second))
}

func TestHashPasswordDefaultCost(t *testing.T) {
	hash, err := HashPassword("secret12", 0)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultCost, cost)
}

func TestCheckPasswordRejectsGarbageHash(t *testing.T) {
	assert.False(t, CheckPassword("secret12", "not-a-bcrypt-hash"))
}
