package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewStore(client, time.Hour), mr
}

func TestSessionRoundTrip(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	sess := store.New()
	sess.Set(KeyUserID, "7")
	sess.Set(KeyUsername, "ana")
	require.NoError(t, store.Save(ctx, sess))

	loaded, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)

	userID, ok := loaded.UserID()
	assert.True(t, ok)
	assert.Equal(t, 7, userID)
	assert.Equal(t, "ana", loaded.Username())
}

func TestSessionUserIDCoercion(t *testing.T) {
	sess := &Session{Values: map[string]string{KeyUserID: "42"}}
	id, ok := sess.UserID()
	assert.True(t, ok)
	assert.Equal(t, 42, id)

	sess = &Session{Values: map[string]string{KeyUserID: "not-a-number"}}
	_, ok = sess.UserID()
	assert.False(t, ok)

	sess = &Session{}
	_, ok = sess.UserID()
	assert.False(t, ok)
}

func TestAnonymousSessionPersists(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	sess := store.New()
	require.NoError(t, store.Save(ctx, sess))

	loaded, err := store.Get(ctx, sess.ID)
	require.NoError(t, err)
	_, ok := loaded.UserID()
	assert.False(t, ok, "anonymous session must have no user id")
}

func TestGetMissingSession(t *testing.T) {
	store, _ := setupStore(t)

	_, err := store.Get(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteSession(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	sess := store.New()
	sess.Set(KeyUserID, "7")
	require.NoError(t, store.Save(ctx, sess))
	require.NoError(t, store.AddFlash(ctx, sess.ID, Flash{Level: "info", Message: "oi"}))

	require.NoError(t, store.Delete(ctx, sess.ID))

	_, err := store.Get(ctx, sess.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	flashes, err := store.PopFlashes(ctx, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, flashes)
}

func TestFlashesDrainInOrder(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	sess := store.New()
	require.NoError(t, store.Save(ctx, sess))

	require.NoError(t, store.AddFlash(ctx, sess.ID, Flash{Level: "success", Message: "primeiro"}))
	require.NoError(t, store.AddFlash(ctx, sess.ID, Flash{Level: "warning", Message: "segundo"}))

	flashes, err := store.PopFlashes(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, flashes, 2)
	assert.Equal(t, "primeiro", flashes[0].Message)
	assert.Equal(t, "warning", flashes[1].Level)

	// Second pop must be empty: flashes are one-shot.
	flashes, err = store.PopFlashes(ctx, sess.ID)
	require.NoError(t, err)
	assert.Empty(t, flashes)
}

func TestSessionTTLRefreshOnSave(t *testing.T) {
	store, mr := setupStore(t)
	ctx := context.Background()

	sess := store.New()
	sess.Set(KeyUserID, "7")
	require.NoError(t, store.Save(ctx, sess))

	mr.FastForward(30 * time.Minute)
	require.NoError(t, store.Save(ctx, sess))

	mr.FastForward(45 * time.Minute)
	_, err := store.Get(ctx, sess.ID)
	assert.NoError(t, err, "save must refresh the TTL")
}
