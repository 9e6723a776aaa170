// ABOUTME: Tests for SQLite store initialization and demo data seeding
// ABOUTME: Covers file creation, seed counts, and seed idempotence across reopens

package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestNewSQLiteStore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer store.Close()

	// Verify the database file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestNewSQLiteStore_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "nested", "test.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created in nested directory")
	}
}

func TestNewSQLiteStore_InMemory(t *testing.T) {
	store, err := NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	defer store.Close()

	if got := countRows(t, store, "customers"); got != SeedCustomers {
		t.Errorf("customers count: got %d, want %d", got, SeedCustomers)
	}
}

func TestNewSQLiteStore_SeedsDemoData(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	counts := map[string]int64{
		"customers":  SeedCustomers,
		"products":   SeedProducts,
		"sales":      SeedSales,
		"sale_items": SeedSaleItems,
	}

	for table, want := range counts {
		if got := countRows(t, store, table); got != want {
			t.Errorf("%s count: got %d, want %d", table, got, want)
		}
	}
}

func TestNewSQLiteStore_SeedIsIdempotent(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	// Reopening runs initialization again; the emptiness guard must keep
	// the seed rows from duplicating.
	store, err = NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("reopening store failed: %v", err)
	}
	defer store.Close()

	if got := countRows(t, store, "customers"); got != SeedCustomers {
		t.Errorf("customers count after reopen: got %d, want %d", got, SeedCustomers)
	}

	// A direct second seed pass on the open store is also a no-op.
	if err := store.seedIfEmpty(); err != nil {
		t.Fatalf("seedIfEmpty failed: %v", err)
	}
	if got := countRows(t, store, "customers"); got != SeedCustomers {
		t.Errorf("customers count after reseed: got %d, want %d", got, SeedCustomers)
	}
}

func TestNewSQLiteStore_SeedSurvivesUserRows(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}

	ctx := context.Background()
	_, err = store.Execute(ctx, "INSERT INTO customers (name, email) VALUES ('Eve Adams', 'eve@example.com')")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	store, err = NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("reopening store failed: %v", err)
	}
	defer store.Close()

	if got := countRows(t, store, "customers"); got != SeedCustomers+1 {
		t.Errorf("customers count after reopen: got %d, want %d", got, SeedCustomers+1)
	}
}

// countRows returns the row count of a seeded table via the public Execute path.
func countRows(t *testing.T, store *SQLiteStore, table string) int64 {
	t.Helper()

	result, err := store.Execute(context.Background(), "SELECT COUNT(*) AS c FROM "+table)
	if err != nil {
		t.Fatalf("counting %s failed: %v", table, err)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("counting %s: got %d rows, want 1", table, len(result.Rows))
	}

	count, ok := result.Rows[0]["c"].(int64)
	if !ok {
		t.Fatalf("counting %s: unexpected value %T", table, result.Rows[0]["c"])
	}
	return count
}

// newTestStore creates a new SQLite store in a temporary directory for testing
func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("NewSQLiteStore failed: %v", err)
	}

	return store
}
