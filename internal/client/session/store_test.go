package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestStore_SetGetClear(t *testing.T) {
	s := newStore(t)

	_, ok := s.Get()
	assert.False(t, ok, "fresh store must be empty")
	assert.False(t, s.IsAuthenticated())

	require.NoError(t, s.Set("tok-123"))
	got, ok := s.Get()
	assert.True(t, ok)
	assert.Equal(t, "tok-123", got)
	assert.True(t, s.IsAuthenticated())

	require.NoError(t, s.Clear())
	_, ok = s.Get()
	assert.False(t, ok)
	assert.False(t, s.IsAuthenticated())
}

func TestStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	s1, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, s1.Set("persisted"))

	// a second instance over the same directory simulates a process restart
	s2, err := NewStore(dir)
	require.NoError(t, err)
	got, ok := s2.Get()
	assert.True(t, ok)
	assert.Equal(t, "persisted", got)
}

func TestStore_IsolatedPerDirectory(t *testing.T) {
	a := newStore(t)
	b := newStore(t)

	require.NoError(t, a.Set("token-a"))
	assert.False(t, b.IsAuthenticated(), "stores must not share state")
}

func TestStore_ClearIsIdempotent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear())
}

func TestStore_EmptyTokenCountsAsAbsent(t *testing.T) {
	s := newStore(t)
	require.NoError(t, s.Set(""))
	assert.False(t, s.IsAuthenticated())
}
