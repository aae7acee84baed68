package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) (*Client, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "locktfin.db")

	c, err := NewClient(path)
	require.NoError(t, err)

	return c, path
}

func TestClientGetMissingKey(t *testing.T) {
	c, _ := newTestClient(t)
	defer c.Close()

	v, err := c.Get("locktfin-sessions")

	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestClientPutOverwrites(t *testing.T) {
	c, path := newTestClient(t)

	require.NoError(t, c.Put("k", []byte("first")))
	require.NoError(t, c.Put("k", []byte("second")))
	require.NoError(t, c.Close())

	reopened, err := NewClient(path)
	require.NoError(t, err)

	defer reopened.Close()

	v, err := reopened.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "second", string(v))
}

func TestClientSecondInstanceIsRejected(t *testing.T) {
	c, path := newTestClient(t)
	defer c.Close()

	_, err := NewClient(path)

	assert.ErrorIs(t, err, errLocktfinRunning)
}

func TestInUse(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.db")
	assert.False(t, InUse(missing))

	c, path := newTestClient(t)
	assert.True(t, InUse(path))

	require.NoError(t, c.Close())
	assert.False(t, InUse(path))
}

func TestMemory(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.Put("k", []byte("v")))

	v, err := m.Get("k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(v))
	assert.Equal(t, 1, m.Puts())

	v[0] = 'x'

	again, _ := m.Get("k")
	assert.Equal(t, "v", string(again), "Get must return a copy")

	missing, err := m.Get("missing")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

var _ KV = (*Client)(nil)
var _ KV = (*Memory)(nil)
