package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/saransh1220/artistly/internal/modules/storage/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)

	_, err = s.Get(ctx, domain.KeyArtists)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, domain.KeyArtists, []byte(`[]`)))
	raw, err := os.ReadFile(filepath.Join(dir, "artistly_artists.json"))
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))

	got, err := s.Get(ctx, domain.KeyArtists)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))

	require.NoError(t, s.Delete(ctx, domain.KeyArtists))
	require.NoError(t, s.Delete(ctx, domain.KeyArtists))
	_, err = s.Get(ctx, domain.KeyArtists)
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)
}

func TestStore_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, domain.KeySession, []byte(`{"id":"1"}`)))

	second, err := NewStore(dir)
	require.NoError(t, err)
	got, err := second.Get(ctx, domain.KeySession)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1"}`, string(got))
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, s.Update(ctx, "k", func(current []byte) ([]byte, error) {
		assert.Nil(t, current)
		return []byte("a"), nil
	}))
	require.NoError(t, s.Update(ctx, "k", func(current []byte) ([]byte, error) {
		return append(current, 'b'), nil
	}))

	boom := errors.New("boom")
	assert.ErrorIs(t, s.Update(ctx, "k", func([]byte) ([]byte, error) { return nil, boom }), boom)

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "ab", string(got))
}

func TestStore_RejectsPathKeys(t *testing.T) {
	ctx := context.Background()
	s, err := NewStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape", "a/b", "with space"} {
		t.Run(key, func(t *testing.T) {
			assert.ErrorIs(t, s.Set(ctx, key, []byte("x")), domain.ErrInvalidKey)
			_, err := s.Get(ctx, key)
			assert.ErrorIs(t, err, domain.ErrInvalidKey)
		})
	}
}

func TestStore_NoTempFilesLeftBehind(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "a", []byte("1")))
	require.NoError(t, s.Set(ctx, "a", []byte("2")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.json", entries[0].Name())
}
