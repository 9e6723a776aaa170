// ABOUTME: Tests for schema reflection and row sampling
// ABOUTME: Covers table listing, column metadata, and per-table sample limits

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

func TestTables(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	tables, err := store.Tables(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"customers", "products", "sale_items", "sales"}, tables)
}

func TestTables_ExcludesInternal(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	// AUTOINCREMENT makes SQLite create its sqlite_sequence bookkeeping table
	_, err := store.Execute(ctx, "CREATE TABLE counters (id INTEGER PRIMARY KEY AUTOINCREMENT, label TEXT)")
	require.NoError(t, err)

	tables, err := store.Tables(ctx)
	require.NoError(t, err)

	assert.Contains(t, tables, "counters")
	assert.NotContains(t, tables, "sqlite_sequence")
}

func TestSchema(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	schema, err := store.Schema(ctx)
	require.NoError(t, err)
	require.Len(t, schema, 4)

	customers, ok := schema["customers"]
	require.True(t, ok, "customers table missing from schema")
	require.Len(t, customers, 5)

	// Columns come back in declaration order
	names := make([]string, len(customers))
	for i, col := range customers {
		names[i] = col.Name
	}
	assert.Equal(t, []string{"id", "name", "email", "phone", "address"}, names)

	id := customers[0]
	assert.Equal(t, "INTEGER", id.Type)
	assert.True(t, id.PrimaryKey)
	assert.False(t, id.NotNull, "INTEGER PRIMARY KEY carries no separate NOT NULL flag")

	name := customers[1]
	assert.Equal(t, "TEXT", name.Type)
	assert.True(t, name.NotNull)
	assert.False(t, name.PrimaryKey)

	email := customers[2]
	assert.False(t, email.NotNull)
	assert.False(t, email.PrimaryKey)
}

func TestSchema_AllSeedTables(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	schema, err := store.Schema(ctx)
	require.NoError(t, err)

	columnCounts := map[string]int{
		"customers":  5,
		"products":   5,
		"sales":      4,
		"sale_items": 5,
	}
	for table, want := range columnCounts {
		require.Contains(t, schema, table)
		assert.Len(t, schema[table], want, "column count for %s", table)
	}

	// Spot-check a REAL column and a NOT NULL flag outside customers
	var price *Column
	for i := range schema["products"] {
		if schema["products"][i].Name == "price" {
			price = &schema["products"][i]
		}
	}
	require.NotNil(t, price)
	assert.Equal(t, "REAL", price.Type)
	assert.True(t, price.NotNull)
}

func TestSchema_ReflectsNewTable(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.Execute(ctx, "CREATE TABLE tags (id INTEGER PRIMARY KEY, label TEXT NOT NULL)")
	require.NoError(t, err)

	schema, err := store.Schema(ctx)
	require.NoError(t, err)

	require.Contains(t, schema, "tags")
	require.Len(t, schema["tags"], 2)
	assert.Equal(t, "label", schema["tags"][1].Name)
	assert.True(t, schema["tags"][1].NotNull)
}

func TestSample(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	rows, err := store.Sample(ctx, "customers", 3)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "John Doe", rows[0]["name"])
	assert.Equal(t, "john@example.com", rows[0]["email"])
}

func TestSample_FewerRowsThanLimit(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.Execute(ctx, "DELETE FROM sale_items")
	require.NoError(t, err)
	_, err = store.Execute(ctx, "DELETE FROM sales WHERE id > 1")
	require.NoError(t, err)

	rows, err := store.Sample(ctx, "sales", 3)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSample_EmptyTable(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.Execute(ctx, "CREATE TABLE empty_table (id INTEGER PRIMARY KEY)")
	require.NoError(t, err)

	rows, err := store.Sample(ctx, "empty_table", 3)
	require.NoError(t, err)
	require.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestSample_MissingTable(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.Sample(context.Background(), "no_such_table", 3)
	assert.Error(t, err)
}

func TestSample_QuotedIdentifier(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	// Table names land inside quoted identifiers, so reserved words work
	_, err := store.Execute(ctx, `CREATE TABLE "order" (id INTEGER PRIMARY KEY)`)
	require.NoError(t, err)
	_, err = store.Execute(ctx, `INSERT INTO "order" (id) VALUES (1)`)
	require.NoError(t, err)

	rows, err := store.Sample(ctx, "order", 3)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
