package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/storefront/internal/client/storage"
)

const keySearchFilters = "search_filters"

// SaveSearchFilters saves the last applied search filters
func (s *Storage) SaveSearchFilters(ctx context.Context, filters storage.SearchFilters) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(filters)
	if err != nil {
		return fmt.Errorf("failed to marshal search filters: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPrefs)
		if bucket == nil {
			return fmt.Errorf("prefs bucket not found")
		}

		if err := bucket.Put([]byte(keySearchFilters), data); err != nil {
			return fmt.Errorf("failed to save search filters: %w", err)
		}

		return nil
	})
}

// GetSearchFilters retrieves saved search filters
// Returns zero value if filters were never saved
func (s *Storage) GetSearchFilters(ctx context.Context) (storage.SearchFilters, error) {
	var filters storage.SearchFilters
	if s.db == nil {
		return filters, storage.ErrStorageClosed
	}

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPrefs)
		if bucket == nil {
			return fmt.Errorf("prefs bucket not found")
		}

		data := bucket.Get([]byte(keySearchFilters))
		if data == nil {
			// Фильтры еще не сохранялись
			return nil
		}

		return json.Unmarshal(data, &filters)
	})

	if err != nil {
		return storage.SearchFilters{}, fmt.Errorf("failed to get search filters: %w", err)
	}

	return filters, nil
}
