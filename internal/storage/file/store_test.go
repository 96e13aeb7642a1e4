package file

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svaldez/stockwise/internal/storage"
)

func newMemStore(t *testing.T) *Store {
	t.Helper()
	st, err := NewWithFs(afero.NewMemMapFs(), "data")
	require.NoError(t, err)
	return st
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newMemStore(t)

	require.NoError(t, st.Put(ctx, "stockwise_materials", []byte(`[{"id":"a"}]`)))

	got, err := st.Get(ctx, "stockwise_materials")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"a"}]`), got)
}

func TestStore_MissingKey(t *testing.T) {
	st := newMemStore(t)

	_, err := st.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestStore_Overwrite(t *testing.T) {
	ctx := context.Background()
	st := newMemStore(t)

	require.NoError(t, st.Put(ctx, "k", []byte(`1`)))
	require.NoError(t, st.Put(ctx, "k", []byte(`2`)))

	got, err := st.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`2`), got)
}

func TestStore_NoTempFileLeftBehind(t *testing.T) {
	fs := afero.NewMemMapFs()
	st, err := NewWithFs(fs, "data")
	require.NoError(t, err)

	require.NoError(t, st.Put(context.Background(), "k", []byte(`1`)))

	exists, err := afero.Exists(fs, "data/k.json.tmp")
	require.NoError(t, err)
	assert.False(t, exists)
}
