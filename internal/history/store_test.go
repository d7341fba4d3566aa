package history

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"cvforge/internal/database"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&database.User{}, &database.GeneratedDocument{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedRecord(i int) *database.GeneratedDocument {
	return &database.GeneratedDocument{
		UserID:     1,
		Title:      fmt.Sprintf("CV_Candidat_Entreprise_%d", i),
		Kind:       "cv",
		TemplateID: "minimal",
		ObjectKey:  fmt.Sprintf("generated-documents/1/obj-%d.pdf", i),
		Model:      gorm.Model{CreatedAt: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC).Add(time.Duration(i) * time.Minute)},
	}
}

func TestAddEvictsOldestBeyondLimit(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newTestDB(t), 10)

	var allKeys []string
	for i := 0; i < 10; i++ {
		rec := seedRecord(i)
		allKeys = append(allKeys, rec.ObjectKey)
		evicted, err := store.Add(ctx, rec)
		if err != nil {
			t.Fatalf("add %d: %v", i, err)
		}
		if len(evicted) != 0 {
			t.Fatalf("add %d evicted %v before reaching the cap", i, evicted)
		}
	}

	evicted, err := store.Add(ctx, seedRecord(10))
	if err != nil {
		t.Fatalf("add beyond cap: %v", err)
	}
	if len(evicted) != 1 || evicted[0] != allKeys[0] {
		t.Fatalf("expected oldest key %q evicted, got %v", allKeys[0], evicted)
	}

	records, err := store.List(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 10 {
		t.Fatalf("history holds %d records, want 10", len(records))
	}
	if records[0].Title != "CV_Candidat_Entreprise_10" {
		t.Errorf("newest record first, got %q", records[0].Title)
	}
	for _, rec := range records {
		if rec.ObjectKey == allKeys[0] {
			t.Error("evicted record still listed")
		}
	}
}

func TestListIsMostRecentFirst(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newTestDB(t), 10)

	for i := 0; i < 3; i++ {
		if _, err := store.Add(ctx, seedRecord(i)); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	records, err := store.List(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i := 1; i < len(records); i++ {
		if records[i].CreatedAt.After(records[i-1].CreatedAt) {
			t.Fatalf("records out of order at %d", i)
		}
	}
}

func TestGetScopesByUser(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newTestDB(t), 10)

	rec := seedRecord(0)
	if _, err := store.Add(ctx, rec); err != nil {
		t.Fatalf("add: %v", err)
	}

	if _, err := store.Get(ctx, 1, rec.ID); err != nil {
		t.Errorf("owner lookup failed: %v", err)
	}
	if _, err := store.Get(ctx, 2, rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign lookup: got %v, want ErrNotFound", err)
	}
}

func TestRemoveReturnsObjectKey(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newTestDB(t), 10)

	rec := seedRecord(0)
	if _, err := store.Add(ctx, rec); err != nil {
		t.Fatalf("add: %v", err)
	}

	key, err := store.Remove(ctx, 1, rec.ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if key != rec.ObjectKey {
		t.Errorf("object key = %q, want %q", key, rec.ObjectKey)
	}

	if _, err := store.Get(ctx, 1, rec.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("record still present after remove: %v", err)
	}
}

func TestClearReturnsAllKeys(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newTestDB(t), 10)

	for i := 0; i < 3; i++ {
		if _, err := store.Add(ctx, seedRecord(i)); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	keys, err := store.Clear(ctx, 1)
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	if len(keys) != 3 {
		t.Errorf("cleared keys = %v", keys)
	}

	records, err := store.List(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("history not empty after clear: %d records", len(records))
	}
}

func TestNonPositiveLimitFallsBack(t *testing.T) {
	store := NewStore(newTestDB(t), 0)
	if store.limit != DefaultLimit {
		t.Errorf("limit = %d, want %d", store.limit, DefaultLimit)
	}
}
