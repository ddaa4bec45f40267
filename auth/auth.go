// Package auth covers password hashing and bearer-token sessions.
package auth

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns the bcrypt hash of a plaintext password.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// CheckPassword reports whether the plaintext matches the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

type session struct {
	userID    string
	expiresAt time.Time
}

// TokenRegistry issues opaque bearer tokens and resolves them back to
// user IDs until they expire. Safe for concurrent use.
type TokenRegistry struct {
	mu       sync.RWMutex
	ttl      time.Duration
	sessions map[string]session
	now      func() time.Time
}

func NewTokenRegistry(ttl time.Duration) *TokenRegistry {
	return &TokenRegistry{
		ttl:      ttl,
		sessions: map[string]session{},
		now:      time.Now,
	}
}

// Issue creates a token bound to the user.
func (r *TokenRegistry) Issue(userID string) string {
	token := uuid.NewString()
	r.mu.Lock()
	r.sessions[token] = session{userID: userID, expiresAt: r.now().Add(r.ttl)}
	r.mu.Unlock()
	return token
}

// Lookup resolves a token to its user ID. Expired tokens are evicted and
// report as unknown.
func (r *TokenRegistry) Lookup(token string) (string, bool) {
	r.mu.RLock()
	s, ok := r.sessions[token]
	r.mu.RUnlock()
	if !ok {
		return "", false
	}
	if r.now().After(s.expiresAt) {
		r.mu.Lock()
		delete(r.sessions, token)
		r.mu.Unlock()
		return "", false
	}
	return s.userID, true
}

// Revoke drops a token.
func (r *TokenRegistry) Revoke(token string) {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
}
