package boltdb

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/storefront/internal/client/storage"
	pkgapi "github.com/iudanet/storefront/pkg/api"
)

func TestNew_CreatesBuckets(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	err = store.db.View(func(tx *bbolt.Tx) error {
		assert.NotNil(t, tx.Bucket(bucketSession), "session bucket")
		assert.NotNil(t, tx.Bucket(bucketPrefs), "prefs bucket")
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	// Родительского каталога нет
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "client.db"))
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestClose_Idempotent(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)

	require.NoError(t, store.Close())
	assert.Nil(t, store.db)
	assert.NoError(t, store.Close())
}

// Сессия и фильтры переживают перезапуск CLI
func TestReopen_KeepsSessionAndFilters(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "client.db")
	maxPrice := 150.0
	expires := time.Date(2030, 1, 2, 3, 4, 5, 0, time.UTC)

	store, err := New(ctx, path)
	require.NoError(t, err)
	require.NoError(t, store.SaveSession(ctx, &storage.Session{
		Token:     "token-1",
		User:      pkgapi.User{ID: "u1", Username: "jane"},
		ExpiresAt: expires,
	}))
	require.NoError(t, store.SaveSearchFilters(ctx, storage.SearchFilters{
		MaxPrice:  &maxPrice,
		SortField: storage.SortByPrice,
		SortOrder: storage.SortDesc,
	}))
	require.NoError(t, store.Close())

	reopened, err := New(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	session, err := reopened.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "token-1", session.Token)
	assert.Equal(t, "jane", session.User.Username)
	assert.True(t, expires.Equal(session.ExpiresAt))

	filters, err := reopened.GetSearchFilters(ctx)
	require.NoError(t, err)
	require.NotNil(t, filters.MaxPrice)
	assert.Equal(t, maxPrice, *filters.MaxPrice)
	assert.Equal(t, storage.SortByPrice, filters.SortField)
	assert.Equal(t, storage.SortDesc, filters.SortOrder)
}

func TestInitBuckets_RecreatesMissing(t *testing.T) {
	store, err := New(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.db.Update(func(tx *bbolt.Tx) error {
		return tx.DeleteBucket(bucketPrefs)
	}))

	require.NoError(t, store.initBuckets())

	// Пересозданный бакет пуст, фильтры читаются как нулевые
	filters, err := store.GetSearchFilters(context.Background())
	require.NoError(t, err)
	assert.True(t, filters.IsZero())
}
