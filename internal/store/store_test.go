package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestStore_Open_CreatesDatabase(t *testing.T) {
	s, _ := openTestStore(t)
	assert.NotNil(t, s)
}

func TestStore_Get_MissingKey(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_RoundTrip(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "counter-value", []byte("42")))

	v, ok, err := s.Get(ctx, "counter-value")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "42", string(v))
}

func TestStore_Set_LastWriteWins(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "theme-mode", []byte(`"light"`)))
	require.NoError(t, s.Set(ctx, "theme-mode", []byte(`"dark"`)))

	v, ok, err := s.Get(ctx, "theme-mode")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `"dark"`, string(v))
}

func TestStore_Remove(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	require.NoError(t, s.Remove(ctx, "k"))

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key is a no-op.
	require.NoError(t, s.Remove(ctx, "k"))
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "counter-value", []byte("7")))
	require.NoError(t, s.Close())

	// Open is idempotent and the value survives the "reload".
	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	v, ok, err := s.Get(ctx, "counter-value")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "7", string(v))
}
