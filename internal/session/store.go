package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix = "skillmap:sess:"  // Hash with session values: skillmap:sess:{session_id}
	flashKeyPrefix   = "skillmap:flash:" // List of pending flash messages: skillmap:flash:{session_id}
	defaultTTL       = 24 * time.Hour
)

// Well-known session value keys. Values are stored as strings; numeric reads
// go through explicit coercion.
const (
	KeyUserID   = "user_id"
	KeyUsername = "username"
	KeyAPIToken = "api_token"
)

// ErrNotFound is returned when no session exists for an ID.
var ErrNotFound = errors.New("session not found")

// Session is the per-browser state held in Redis.
type Session struct {
	ID     string
	Values map[string]string
}

// UserID coerces the stored user_id to an int. ok is false when the session
// is anonymous or the value is not numeric.
func (s *Session) UserID() (int, bool) {
	raw, exists := s.Values[KeyUserID]
	if !exists || raw == "" {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (s *Session) Username() string {
	return s.Values[KeyUsername]
}

func (s *Session) Set(key, value string) {
	if s.Values == nil {
		s.Values = make(map[string]string)
	}
	s.Values[key] = value
}

// Flash is a one-shot message rendered on the next page.
type Flash struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// Store handles Redis operations for sessions and their flash messages.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a Store. A zero TTL falls back to 24h.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{client: client, ttl: ttl}
}

// New creates an empty session with a fresh ID. It is not persisted until
// Save is called.
func (st *Store) New() *Session {
	return &Session{
		ID:     uuid.New().String(),
		Values: make(map[string]string),
	}
}

// Get retrieves a session by ID.
func (st *Store) Get(ctx context.Context, id string) (*Session, error) {
	values, err := st.client.HGetAll(ctx, st.sessionKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if len(values) == 0 {
		return nil, ErrNotFound
	}
	return &Session{ID: id, Values: values}, nil
}

// Save persists the session and refreshes its TTL.
func (st *Store) Save(ctx context.Context, sess *Session) error {
	key := st.sessionKey(sess.ID)

	pipe := st.client.Pipeline()
	pipe.Del(ctx, key)
	if len(sess.Values) > 0 {
		args := make([]interface{}, 0, len(sess.Values)*2)
		for k, v := range sess.Values {
			args = append(args, k, v)
		}
		pipe.HSet(ctx, key, args...)
	} else {
		// Keep an empty marker so Get can tell "anonymous" from "expired".
		pipe.HSet(ctx, key, "_created", time.Now().Format(time.RFC3339))
	}
	pipe.Expire(ctx, key, st.ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Delete removes the session and any pending flashes.
func (st *Store) Delete(ctx context.Context, id string) error {
	pipe := st.client.Pipeline()
	pipe.Del(ctx, st.sessionKey(id))
	pipe.Del(ctx, st.flashKey(id))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// AddFlash queues a one-shot message for the session.
func (st *Store) AddFlash(ctx context.Context, sessionID string, flash Flash) error {
	data, err := json.Marshal(flash)
	if err != nil {
		return fmt.Errorf("failed to marshal flash: %w", err)
	}

	key := st.flashKey(sessionID)
	pipe := st.client.Pipeline()
	pipe.RPush(ctx, key, data)
	pipe.Expire(ctx, key, st.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add flash: %w", err)
	}
	return nil
}

// PopFlashes drains and returns the session's pending messages in order.
func (st *Store) PopFlashes(ctx context.Context, sessionID string) ([]Flash, error) {
	key := st.flashKey(sessionID)

	pipe := st.client.Pipeline()
	items := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to pop flashes: %w", err)
	}

	raw, err := items.Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read flashes: %w", err)
	}

	flashes := make([]Flash, 0, len(raw))
	for _, item := range raw {
		var f Flash
		if err := json.Unmarshal([]byte(item), &f); err != nil {
			continue
		}
		flashes = append(flashes, f)
	}
	return flashes, nil
}

func (st *Store) sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (st *Store) flashKey(id string) string {
	return flashKeyPrefix + id
}
