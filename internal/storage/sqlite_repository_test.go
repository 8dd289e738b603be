package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "annid-test.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	if err := MigrateUp(db); err != nil {
		t.Fatalf("migrate up: %v", err)
	}

	repo, err := NewSQLiteRepository(db)
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo
}

func sampleAnniversary(id string) Anniversary {
	return Anniversary{
		ID:              id,
		Name:            "Mom's birthday",
		Category:        "birthday",
		Date:            time.Date(1962, 5, 12, 0, 0, 0, 0, time.UTC),
		Notes:           "She likes tulips.",
		ReminderEnabled: true,
		ReminderCycle:   "yearly",
		Timings:         "0,1,7",
		TimeOfDay:       "09:00",
		CreatedAt:       time.Date(2026, 2, 9, 12, 0, 0, 0, time.UTC),
	}
}

func TestAnniversaryCRUDAndList(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	item := sampleAnniversary("ann-1")
	if err := repo.CreateAnniversary(ctx, item); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetAnniversary(ctx, item.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != item.Name || got.Timings != "0,1,7" || !got.ReminderEnabled {
		t.Fatalf("unexpected get result: %#v", got)
	}
	if !got.Date.Equal(item.Date) {
		t.Fatalf("date round-trip mismatch: %s", got.Date)
	}

	item.Name = "Mum's birthday"
	item.ReminderCycle = "custom"
	item.CustomMonths = 6
	if err := repo.UpdateAnniversary(ctx, item); err != nil {
		t.Fatalf("update: %v", err)
	}

	birthdays, err := repo.ListAnniversaries(ctx, ListFilter{Category: "birthday"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(birthdays) != 1 || birthdays[0].Name != "Mum's birthday" || birthdays[0].CustomMonths != 6 {
		t.Fatalf("unexpected list: %#v", birthdays)
	}

	if err := repo.PurgeAnniversary(ctx, item.ID); err != nil {
		t.Fatalf("purge: %v", err)
	}
	if _, err := repo.GetAnniversary(ctx, item.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestTrashRestoreLifecycle(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	if err := repo.CreateAnniversary(ctx, sampleAnniversary("ann-trash")); err != nil {
		t.Fatalf("create: %v", err)
	}

	deletedAt := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	if err := repo.TrashAnniversary(ctx, "ann-trash", deletedAt); err != nil {
		t.Fatalf("trash: %v", err)
	}
	// Trashing twice hits no live row.
	if err := repo.TrashAnniversary(ctx, "ann-trash", deletedAt); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on double trash, got %v", err)
	}

	trashed := true
	inTrash, err := repo.ListAnniversaries(ctx, ListFilter{Trashed: &trashed})
	if err != nil {
		t.Fatalf("list trash: %v", err)
	}
	if len(inTrash) != 1 || inTrash[0].DeletedAt == nil {
		t.Fatalf("unexpected trash list: %#v", inTrash)
	}

	live := false
	alive, err := repo.ListAnniversaries(ctx, ListFilter{Trashed: &live})
	if err != nil {
		t.Fatalf("list live: %v", err)
	}
	if len(alive) != 0 {
		t.Fatalf("expected empty live list, got %#v", alive)
	}

	if err := repo.RestoreAnniversary(ctx, "ann-trash"); err != nil {
		t.Fatalf("restore: %v", err)
	}
	got, err := repo.GetAnniversary(ctx, "ann-trash")
	if err != nil {
		t.Fatalf("get after restore: %v", err)
	}
	if got.DeletedAt != nil {
		t.Fatalf("expected deleted_at cleared, got %v", got.DeletedAt)
	}
}

func TestPurgeTrashedBefore(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	old := sampleAnniversary("ann-old")
	recent := sampleAnniversary("ann-recent")
	keep := sampleAnniversary("ann-live")
	for _, item := range []Anniversary{old, recent, keep} {
		if err := repo.CreateAnniversary(ctx, item); err != nil {
			t.Fatalf("create %s: %v", item.ID, err)
		}
	}

	if err := repo.TrashAnniversary(ctx, "ann-old", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("trash old: %v", err)
	}
	if err := repo.TrashAnniversary(ctx, "ann-recent", time.Date(2026, 2, 8, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatalf("trash recent: %v", err)
	}

	purged, err := repo.PurgeTrashedBefore(ctx, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("purge trashed: %v", err)
	}
	if purged != 1 {
		t.Fatalf("expected 1 purged, got %d", purged)
	}
	if _, err := repo.GetAnniversary(ctx, "ann-old"); err != ErrNotFound {
		t.Fatalf("old trashed record should be gone, got %v", err)
	}
	if _, err := repo.GetAnniversary(ctx, "ann-recent"); err != nil {
		t.Fatalf("recent trashed record should remain: %v", err)
	}
	if _, err := repo.GetAnniversary(ctx, "ann-live"); err != nil {
		t.Fatalf("live record should remain: %v", err)
	}
}

func TestListPagination(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	dates := []time.Time{
		time.Date(1990, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(1991, 2, 11, 0, 0, 0, 0, time.UTC),
		time.Date(1992, 3, 12, 0, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		item := sampleAnniversary("ann-" + string(rune('a'+i)))
		item.Date = d
		if err := repo.CreateAnniversary(ctx, item); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	page, err := repo.ListAnniversaries(ctx, ListFilter{Limit: 2, Offset: 1})
	if err != nil {
		t.Fatalf("list page: %v", err)
	}
	if len(page) != 2 || page[0].ID != "ann-b" || page[1].ID != "ann-c" {
		t.Fatalf("unexpected page: %#v", page)
	}
}
