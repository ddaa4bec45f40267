package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("supersecret")
	require.NoError(t, err)
	assert.NotEqual(t, "supersecret", hash)

	assert.True(t, CheckPassword(hash, "supersecret"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "supersecret"))
}

func TestTokenRegistry_IssueAndLookup(t *testing.T) {
	r := NewTokenRegistry(time.Hour)

	token := r.Issue("u-1")
	userID, ok := r.Lookup(token)
	require.True(t, ok)
	assert.Equal(t, "u-1", userID)

	_, ok = r.Lookup("unknown")
	assert.False(t, ok)

	r.Revoke(token)
	_, ok = r.Lookup(token)
	assert.False(t, ok)
}

func TestTokenRegistry_Expiry(t *testing.T) {
	r := NewTokenRegistry(time.Minute)
	current := time.Unix(1_700_000_000, 0)
	r.now = func() time.Time { return current }

	token := r.Issue("u-1")
	_, ok := r.Lookup(token)
	require.True(t, ok)

	current = current.Add(2 * time.Minute)
	_, ok = r.Lookup(token)
	assert.False(t, ok)

	// Expired tokens are evicted, not just hidden.
	r.mu.RLock()
	_, stillThere := r.sessions[token]
	r.mu.RUnlock()
	assert.False(t, stillThere)
}
