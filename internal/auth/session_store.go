package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"travelai/internal/cache"
)

const sessionKeyPrefix = "session:"

// ErrSessionNotFound is returned when a session token is unknown or expired.
var ErrSessionNotFound = errors.New("session not found")

// SessionStoreInterface defines server-side session operations.
type SessionStoreInterface interface {
	Create(ctx context.Context, userID uint) (token string, err error)
	Resolve(ctx context.Context, token string) (userID uint, err error)
	Delete(ctx context.Context, token string) error
}

// SessionStore maps opaque high-entropy tokens to user ids in Redis.
// The token carries no claims; identity is always re-derived server-side.
type SessionStore struct {
	cache *cache.Client
	ttl   time.Duration
}

// Ensure SessionStore implements SessionStoreInterface
var _ SessionStoreInterface = (*SessionStore)(nil)

// NewSessionStore creates a session store with the given session TTL.
func NewSessionStore(cache *cache.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{cache: cache, ttl: ttl}
}

type sessionData struct {
	UserID uint `json:"user_id"`
}

// Create issues a new session token for userID.
func (s *SessionStore) Create(ctx context.Context, userID uint) (string, error) {
	token := uuid.New().String()
	payload, err := json.Marshal(sessionData{UserID: userID})
	if err != nil {
		return "", fmt.Errorf("marshal session data: %w", err)
	}
	if err := s.cache.Set(ctx, sessionKeyPrefix+token, payload, s.ttl); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Resolve returns the user id a session token was issued for.
func (s *SessionStore) Resolve(ctx context.Context, token string) (uint, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+token)
	if err != nil {
		return 0, fmt.Errorf("load session: %w", err)
	}
	if data == nil {
		return 0, ErrSessionNotFound
	}
	var session sessionData
	if err := json.Unmarshal(data, &session); err != nil {
		return 0, fmt.Errorf("unmarshal session data: %w", err)
	}
	return session.UserID, nil
}

// Delete invalidates a session token.
func (s *SessionStore) Delete(ctx context.Context, token string) error {
	return s.cache.Delete(ctx, sessionKeyPrefix+token)
}
