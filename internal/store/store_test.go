package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/marquee/internal/domain"
)

var backends = map[string]func(t *testing.T) domain.KeyValueStore{
	"memory": func(t *testing.T) domain.KeyValueStore {
		s, err := NewBoltStore("")
		require.NoError(t, err)
		return s
	},
	"bolt": func(t *testing.T) domain.KeyValueStore {
		s, err := NewBoltStore(filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, err)
		return s
	},
	"sqlite": func(t *testing.T) domain.KeyValueStore {
		s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.sqlite"))
		require.NoError(t, err)
		return s
	},
}

func TestKeyValueStore_Contract(t *testing.T) {
	for name, open := range backends {
		t.Run(name, func(t *testing.T) {
			s := open(t)
			defer s.Close()

			_, ok, err := s.Get("favorites")
			require.NoError(t, err)
			assert.False(t, ok, "absent key should report ok=false")

			require.NoError(t, s.Set("favorites", []byte(`[{"id":1}]`)))
			data, ok, err := s.Get("favorites")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, `[{"id":1}]`, string(data))

			require.NoError(t, s.Set("favorites", []byte(`[]`)))
			data, _, err = s.Get("favorites")
			require.NoError(t, err)
			assert.Equal(t, `[]`, string(data))

			require.NoError(t, s.Remove("favorites"))
			_, ok, err = s.Get("favorites")
			require.NoError(t, err)
			assert.False(t, ok)

			// Removing an absent key is not an error
			assert.NoError(t, s.Remove("saved"))
		})
	}
}

func TestBoltStore_GetReturnsCopy(t *testing.T) {
	s, err := NewBoltStore("")
	require.NoError(t, err)

	require.NoError(t, s.Set("k", []byte("abc")))
	data, _, _ := s.Get("k")
	data[0] = 'z'

	again, _, _ := s.Get("k")
	assert.Equal(t, "abc", string(again))
}

func TestBoltStore_FailedRemoveKeepsValue(t *testing.T) {
	s, err := NewBoltStore(filepath.Join(t.TempDir(), "closed.db"))
	require.NoError(t, err)
	require.NoError(t, s.Set("favorites", []byte(`[{"id":1}]`)))
	require.NoError(t, s.Close())

	err = s.Remove("favorites")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `failed to delete "favorites"`)

	data, ok, err := s.Get("favorites")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, string(data))
}

func TestBoltStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")

	s, err := NewBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("saved", []byte(`[1,2]`)))
	require.NoError(t, s.Close())

	s, err = NewBoltStore(path)
	require.NoError(t, err)
	defer s.Close()

	data, ok, err := s.Get("saved")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[1,2]`, string(data))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	for _, driver := range []Driver{DriverMemory, DriverBolt, DriverSQLite} {
		s, err := Open(driver, dir, nil)
		require.NoError(t, err, driver)
		require.NoError(t, s.Close())
	}

	_, err := Open("redis", dir, nil)
	assert.Error(t, err)
}
