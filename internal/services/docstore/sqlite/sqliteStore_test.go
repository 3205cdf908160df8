package sqliteStore_test

import (
	"context"
	"errors"
	"testing"

	"github.com/plateful/recipe-box/internal/services/docstore"
	sqliteStore "github.com/plateful/recipe-box/internal/services/docstore/sqlite"
	"github.com/plateful/recipe-box/pkg/tools/random"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqliteStore.Store {
	t.Helper()

	store, err := sqliteStore.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestInsertAndGet(t *testing.T) {
	store := newTestStore(t)
	collection := random.String(8)

	doc := docstore.Document{
		"name":        random.String(12),
		"cookingTime": float64(random.Int(5, 90)),
	}

	id, err := store.Insert(context.Background(), collection, doc)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.Get(context.Background(), collection, id)
	require.NoError(t, err)
	require.Equal(t, doc, got)
}

func TestGetNotFound(t *testing.T) {
	store := newTestStore(t)

	doc, err := store.Get(context.Background(), "recipes", random.String(16))
	require.Error(t, err)
	require.True(t, errors.Is(err, docstore.ErrNotFound))
	require.Nil(t, doc)
}

func TestScan(t *testing.T) {
	store := newTestStore(t)
	collection := random.String(8)

	records, err := store.Scan(context.Background(), collection)
	require.NoError(t, err)
	require.Empty(t, records)

	n := 4
	ids := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		id, err := store.Insert(context.Background(), collection, docstore.Document{"name": random.String(10)})
		require.NoError(t, err)
		ids[id] = true
	}
	require.Len(t, ids, n)

	records, err = store.Scan(context.Background(), collection)
	require.NoError(t, err)
	require.Len(t, records, n)
	for _, record := range records {
		require.True(t, ids[record.ID])
		require.NotEmpty(t, record.Doc["name"])
	}
}

func TestScanIsolatesCollections(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Insert(context.Background(), "recipes", docstore.Document{"name": "Soup"})
	require.NoError(t, err)

	records, err := store.Scan(context.Background(), "profiles")
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestSetReplaces(t *testing.T) {
	store := newTestStore(t)
	id := random.String(16)

	err := store.Set(context.Background(), "profiles", id, docstore.Document{"email": "a@b.com"})
	require.NoError(t, err)

	err = store.Set(context.Background(), "profiles", id, docstore.Document{"email": "c@d.com"})
	require.NoError(t, err)

	doc, err := store.Get(context.Background(), "profiles", id)
	require.NoError(t, err)
	require.Equal(t, "c@d.com", doc["email"])
}
