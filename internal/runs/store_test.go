package runs_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"namesong/internal/runs"
	"namesong/internal/testsupport"
)

func TestRecordAndGet(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	run, err := store.Record(ctx, runs.Run{
		Name:         "John",
		Length:       4,
		Hash:         2089257364,
		Result:       2089257399,
		Instructions: 33,
		Tempo:        90,
		Key:          "C",
		NoteCount:    33,
		ScorePath:    "/tmp/musical_data.json",
	})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if run.ID == "" {
		t.Fatal("Record did not assign an ID")
	}
	if run.CreatedAt.IsZero() {
		t.Fatal("Record did not stamp CreatedAt")
	}

	got, err := store.GetByID(ctx, run.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "John" || got.Result != 2089257399 || got.ScorePath != "/tmp/musical_data.json" {
		t.Errorf("GetByID = %+v", got)
	}
}

func TestGetMissing(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))

	_, err := store.GetByID(context.Background(), "no-such-id")
	if !errors.Is(err, runs.ErrNotFound) {
		t.Fatalf("GetByID missing = %v, want ErrNotFound", err)
	}
}

func TestListNewestFirst(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, name := range []string{"first", "second", "third"} {
		_, err := store.Record(ctx, runs.Run{
			Name:      name,
			Key:       "C",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("Record %s: %v", name, err)
		}
	}

	listed, err := store.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("List returned %d runs, want 3", len(listed))
	}
	if listed[0].Name != "third" || listed[2].Name != "first" {
		t.Errorf("List order = [%s %s %s], want newest first", listed[0].Name, listed[1].Name, listed[2].Name)
	}

	limited, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("List limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("List(2) returned %d runs", len(limited))
	}
}

func TestListByName(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	for _, name := range []string{"Ada", "John", "Ada"} {
		if _, err := store.Record(ctx, runs.Run{Name: name, Key: "C"}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	ada, err := store.ListByName(ctx, "Ada")
	if err != nil {
		t.Fatalf("ListByName: %v", err)
	}
	if len(ada) != 2 {
		t.Errorf("ListByName(Ada) returned %d runs, want 2", len(ada))
	}
}

func TestClear(t *testing.T) {
	store := testsupport.MustOpenStore(t, testsupport.NewConfig(t))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := store.Record(ctx, runs.Run{Name: "x", Key: "C"}); err != nil {
			t.Fatalf("Record: %v", err)
		}
	}

	deleted, err := store.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if deleted != 3 {
		t.Errorf("Clear deleted %d runs, want 3", deleted)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 0 {
		t.Errorf("Count after clear = %d", count)
	}
}

func TestSchemaVersionGuard(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	dbPath := store.Path()
	store.Close()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open raw db: %v", err)
	}
	if _, err := db.Exec("UPDATE schema_version SET version = 99"); err != nil {
		t.Fatalf("bump schema version: %v", err)
	}
	db.Close()

	if _, err := runs.Open(cfg); !errors.Is(err, runs.ErrSchemaMismatch) {
		t.Fatalf("Open with stale schema = %v, want ErrSchemaMismatch", err)
	}
}
