package core

import (
	"testing"

	"github.com/google/uuid"
)

func TestStore_SaveAndGet(t *testing.T) {
	store := NewStore()
	id := uuid.New()

	if _, ok := store.Get(id); ok {
		t.Fatal("Get() on empty store returned a bundle")
	}
	if store.Exists(id) {
		t.Fatal("Exists() on empty store = true")
	}

	table := mustTable(t, column("a", "1"))
	store.Save(id, &Bundle{Table: table, Summary: Summary{RowCount: 1, ColumnCount: 1}})

	got, ok := store.Get(id)
	if !ok {
		t.Fatal("Get() = false after Save")
	}
	if got.Summary.RowCount != 1 {
		t.Errorf("Summary.RowCount = %d, want 1", got.Summary.RowCount)
	}
	if !store.Exists(id) {
		t.Error("Exists() = false after Save")
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}

	// unrelated IDs stay unknown
	if store.Exists(uuid.New()) {
		t.Error("Exists() = true for unknown ID")
	}
}
