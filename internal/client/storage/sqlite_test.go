package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestKV(t *testing.T) *KV {
	t.Helper()
	kv, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestGetMissingKey(t *testing.T) {
	kv := openTestKV(t)

	_, err := kv.Get(t.Context(), "token")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSetManyAndGet(t *testing.T) {
	kv := openTestKV(t)

	require.NoError(t, kv.SetMany(t.Context(), map[string]string{
		"user":  `{"id":"u1"}`,
		"token": "tok-1",
	}))

	user, err := kv.Get(t.Context(), "user")
	require.NoError(t, err)
	assert.Equal(t, `{"id":"u1"}`, user)

	token, err := kv.Get(t.Context(), "token")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}

func TestSetManyOverwrites(t *testing.T) {
	kv := openTestKV(t)

	require.NoError(t, kv.SetMany(t.Context(), map[string]string{"token": "old"}))
	require.NoError(t, kv.SetMany(t.Context(), map[string]string{"token": "new"}))

	token, err := kv.Get(t.Context(), "token")
	require.NoError(t, err)
	assert.Equal(t, "new", token)
}

func TestDeleteAll(t *testing.T) {
	kv := openTestKV(t)

	require.NoError(t, kv.SetMany(t.Context(), map[string]string{"user": "u", "token": "t"}))
	require.NoError(t, kv.DeleteAll(t.Context(), "user", "token", "never-existed"))

	_, err := kv.Get(t.Context(), "user")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = kv.Get(t.Context(), "token")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")

	kv, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, kv.SetMany(t.Context(), map[string]string{"token": "tok-1"}))
	require.NoError(t, kv.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	token, err := reopened.Get(t.Context(), "token")
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}
