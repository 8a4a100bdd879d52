package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName is the cookie carrying the opaque session id.
const CookieName = "vetify_session"

// User is the authenticated identity stored server-side for the
// lifetime of a session.
type User struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Manager stores sessions in Redis keyed by a random uuid; the browser
// only ever sees the id. Destroying the key is a full logout.
type Manager struct {
	client *redis.Client
	ttl    time.Duration
}

func NewManager(client *redis.Client, ttl time.Duration) *Manager {
	return &Manager{
		client: client,
		ttl:    ttl,
	}
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Create stores the user under a fresh session id and returns the id.
func (m *Manager) Create(ctx context.Context, user User) (string, error) {
	payload, err := json.Marshal(user)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	if err := m.client.Set(ctx, sessionKey(id), payload, m.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return id, nil
}

// Get returns the session user, or (nil, nil) when the session does not
// exist or has expired.
func (m *Manager) Get(ctx context.Context, id string) (*User, error) {
	if id == "" {
		return nil, nil
	}

	payload, err := m.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var user User
	if err := json.Unmarshal(payload, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// Destroy removes the session; it is a no-op for unknown ids.
func (m *Manager) Destroy(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return m.client.Del(ctx, sessionKey(id)).Err()
}

func sessionKey(id string) string {
	return "session:" + id
}
