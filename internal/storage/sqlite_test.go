//go:build sqlite

package storage

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"worldgene/internal/model"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store := NewSQLiteStore(filepath.Join(t.TempDir(), "worldgene_test.db"))
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("init: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestSQLiteStoreWorldRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	record := model.WorldRecord{
		VersionedRecord: Stamp(),
		ID:              "w-1",
		DNA:             "0a0102",
		Traits:          model.Vector{"terrain": "islands", "climate": "tropical"},
	}
	if err := store.SaveWorld(ctx, record); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := store.GetWorld(ctx, "w-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("record not found")
	}
	if !reflect.DeepEqual(got, record) {
		t.Fatalf("got %+v, want %+v", got, record)
	}
}

func TestSQLiteStoreUpsertOverwrites(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	record := model.WorldRecord{VersionedRecord: Stamp(), ID: "w-1", DNA: "00"}
	if err := store.SaveWorld(ctx, record); err != nil {
		t.Fatalf("save: %v", err)
	}
	record.DNA = "01"
	if err := store.SaveWorld(ctx, record); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, ok, err := store.GetWorld(ctx, "w-1")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.DNA != "01" {
		t.Fatalf("dna: got %s, want 01", got.DNA)
	}
}

func TestSQLiteStoreListAdvanced(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	for _, id := range []string{"a-2", "a-1"} {
		record := model.AdvancedRecord{
			VersionedRecord: Stamp(),
			ID:              id,
			DNA:             "V1.6 TRAITS{magic:55}",
			Traits:          model.ScoredVector{"magical.prevalence": {Prevalence: 5, Intensity: 5}},
		}
		if err := store.SaveAdvanced(ctx, record); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
	}

	records, err := store.ListAdvanced(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 || records[0].ID != "a-1" || records[1].ID != "a-2" {
		t.Fatalf("unexpected listing: %+v", records)
	}
}

func TestSQLiteStoreRequiresInit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "uninit.db"))
	if _, _, err := store.GetWorld(context.Background(), "w-1"); err == nil {
		t.Fatal("expected error before Init")
	}
}
