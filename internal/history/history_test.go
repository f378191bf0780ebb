package history

import (
	"context"
	"testing"
	"time"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	database, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestLogAndRecent(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	rec := Record{
		ID:        "run-1",
		StartedAt: time.Date(2026, time.March, 14, 10, 0, 0, 0, time.UTC),
		Duration:  1200 * time.Millisecond,
		StoreName: "Atlas Goods",
		Pages:     3,
		Images:    2,
		Bytes:     48210,
		Status:    StatusOK,
		Output:    "atlas-goods.zip",
	}
	if err := store.Log(ctx, rec); err != nil {
		t.Fatalf("Log: %v", err)
	}

	got, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	r := got[0]
	if r.ID != "run-1" || r.StoreName != "Atlas Goods" || r.Pages != 3 || r.Bytes != 48210 {
		t.Errorf("record round-trip mismatch: %+v", r)
	}
	if r.Duration != 1200*time.Millisecond {
		t.Errorf("Duration = %v, want 1.2s", r.Duration)
	}
	if !r.StartedAt.Equal(rec.StartedAt) {
		t.Errorf("StartedAt = %v, want %v", r.StartedAt, rec.StartedAt)
	}
	if r.Status != StatusOK {
		t.Errorf("Status = %q", r.Status)
	}
}

func TestLogGeneratesID(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if err := store.Log(ctx, Record{Status: StatusFailed, Error: "bad image"}); err != nil {
		t.Fatalf("Log: %v", err)
	}
	got, err := store.Recent(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].ID == "" {
		t.Error("an id should be generated when none is provided")
	}
	if got[0].Error != "bad image" {
		t.Errorf("Error = %q", got[0].Error)
	}
}

func TestRecentOrderAndLimit(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		err := store.Log(ctx, Record{
			ID:        string(rune('a' + i)),
			StartedAt: base.Add(time.Duration(i) * time.Hour),
			Status:    StatusOK,
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	got, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d records, want 3", len(got))
	}
	if got[0].ID != "e" || got[2].ID != "c" {
		t.Errorf("records not newest-first: %v %v %v", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestPrune(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	old := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	store.Log(ctx, Record{ID: "old", StartedAt: old, Status: StatusOK})
	store.Log(ctx, Record{ID: "new", StartedAt: recent, Status: StatusOK})

	n, err := store.Prune(ctx, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Prune: %v", err)
	}
	if n != 1 {
		t.Errorf("pruned %d records, want 1", n)
	}
	got, _ := store.Recent(ctx, 10)
	if len(got) != 1 || got[0].ID != "new" {
		t.Error("only the old record should be pruned")
	}
}

func TestStatusConstraint(t *testing.T) {
	store := setupStore(t)
	if err := store.Log(context.Background(), Record{Status: "bogus"}); err == nil {
		t.Error("schema should reject unknown status values")
	}
}
