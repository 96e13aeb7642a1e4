package storage

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	data   map[string][]byte
	getErr error
	putErr error
}

func (f *fakeStore) Get(_ context.Context, key string) ([]byte, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	raw, ok := f.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return raw, nil
}

func (f *fakeStore) Put(_ context.Context, key string, value []byte) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeStore) Close() error { return nil }

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func testLogger() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestLoadSave_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st := &fakeStore{data: map[string][]byte{}}

	in := []record{{Name: "Bolts", Count: 3}, {Name: "Screws", Count: 9}}
	require.NoError(t, Save(ctx, st, testLogger(), "k", in))

	out := Load(ctx, st, testLogger(), "k", []record{})
	assert.Equal(t, in, out)
}

func TestLoad_MissingKeyFallsBack(t *testing.T) {
	st := &fakeStore{data: map[string][]byte{}}

	out := Load(context.Background(), st, testLogger(), "k", []record{{Name: "default"}})
	assert.Equal(t, []record{{Name: "default"}}, out)
}

func TestLoad_CorruptDataFallsBack(t *testing.T) {
	st := &fakeStore{data: map[string][]byte{"k": []byte(`{not json`)}}

	out := Load(context.Background(), st, testLogger(), "k", []record{})
	assert.Empty(t, out)
}

func TestLoad_BackendErrorFallsBack(t *testing.T) {
	st := &fakeStore{getErr: errors.New("io error")}

	out := Load(context.Background(), st, testLogger(), "k", []record{{Name: "default"}})
	assert.Equal(t, []record{{Name: "default"}}, out)
}

func TestSave_ReportsBackendError(t *testing.T) {
	st := &fakeStore{putErr: errors.New("quota exceeded")}

	err := Save(context.Background(), st, testLogger(), "k", []record{})
	assert.Error(t, err)
}
