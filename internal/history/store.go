// Package history keeps the capped, most-recent-first list of generated
// documents. Capacity is enforced on insert: adding an entry beyond the cap
// evicts the oldest entries, whose stored objects are deleted best-effort by
// the caller.
package history

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"cvforge/internal/database"
)

// DefaultLimit is the per-user history capacity.
const DefaultLimit = 10

// ErrNotFound is returned when a record does not exist for the user.
var ErrNotFound = errors.New("history: record not found")

// Store persists GeneratedDocument records.
type Store struct {
	db    *gorm.DB
	limit int
}

// NewStore builds a store with the given capacity; non-positive values fall
// back to DefaultLimit.
func NewStore(db *gorm.DB, limit int) *Store {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Store{db: db, limit: limit}
}

// Add inserts a record and evicts the oldest entries beyond the capacity.
// It returns the object keys of evicted entries so the caller can delete the
// stored PDFs.
func (s *Store) Add(ctx context.Context, rec *database.GeneratedDocument) ([]string, error) {
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, fmt.Errorf("create history record: %w", err)
	}

	var overflow []database.GeneratedDocument
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", rec.UserID).
		Order("created_at DESC, id DESC").
		Offset(s.limit).
		Find(&overflow).Error; err != nil {
		return nil, fmt.Errorf("query history overflow: %w", err)
	}
	if len(overflow) == 0 {
		return nil, nil
	}

	ids := make([]uint, 0, len(overflow))
	evictedKeys := make([]string, 0, len(overflow))
	for _, old := range overflow {
		ids = append(ids, old.ID)
		if old.ObjectKey != "" {
			evictedKeys = append(evictedKeys, old.ObjectKey)
		}
	}
	if err := s.db.WithContext(ctx).Delete(&database.GeneratedDocument{}, ids).Error; err != nil {
		return nil, fmt.Errorf("evict history records: %w", err)
	}

	return evictedKeys, nil
}

// List returns the user's records, most recent first.
func (s *Store) List(ctx context.Context, userID uint) ([]database.GeneratedDocument, error) {
	var records []database.GeneratedDocument
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(s.limit).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	return records, nil
}

// Get returns one record owned by the user.
func (s *Store) Get(ctx context.Context, userID, id uint) (*database.GeneratedDocument, error) {
	var rec database.GeneratedDocument
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&rec).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get history record: %w", err)
	}
	return &rec, nil
}

// Remove deletes one record and returns its object key for cleanup.
func (s *Store) Remove(ctx context.Context, userID, id uint) (string, error) {
	rec, err := s.Get(ctx, userID, id)
	if err != nil {
		return "", err
	}
	if err := s.db.WithContext(ctx).Delete(&database.GeneratedDocument{}, rec.ID).Error; err != nil {
		return "", fmt.Errorf("delete history record: %w", err)
	}
	return rec.ObjectKey, nil
}

// Clear deletes all of the user's records and returns their object keys.
func (s *Store) Clear(ctx context.Context, userID uint) ([]string, error) {
	var records []database.GeneratedDocument
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list history for clear: %w", err)
	}

	keys := make([]string, 0, len(records))
	for _, rec := range records {
		if rec.ObjectKey != "" {
			keys = append(keys, rec.ObjectKey)
		}
	}

	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&database.GeneratedDocument{}).Error; err != nil {
		return nil, fmt.Errorf("clear history: %w", err)
	}

	return keys, nil
}
