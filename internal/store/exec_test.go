// ABOUTME: Tests for raw SQL execution covering read and write dispatch
// ABOUTME: Exercises result shapes, affected counts, and engine error surfacing

package store

import (
	"context"
	"strings"
	"testing"
)

func TestExecute_Select(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	result, err := store.Execute(context.Background(), "SELECT id, name FROM products ORDER BY id")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if !result.Select {
		t.Error("expected Select to be true")
	}
	if len(result.Rows) != int(SeedProducts) {
		t.Errorf("got %d rows, want %d", len(result.Rows), SeedProducts)
	}
	if len(result.Columns) != 2 || result.Columns[0] != "id" || result.Columns[1] != "name" {
		t.Errorf("unexpected columns: %v", result.Columns)
	}
	if result.Rows[0]["name"] != "Laptop" {
		t.Errorf("first product: got %v, want Laptop", result.Rows[0]["name"])
	}
}

func TestExecute_SelectLeadingWhitespace(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	result, err := store.Execute(context.Background(), "   \n\t select name FROM customers")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !result.Select {
		t.Error("expected whitespace-padded lowercase select to dispatch as a read")
	}
	if len(result.Rows) != int(SeedCustomers) {
		t.Errorf("got %d rows, want %d", len(result.Rows), SeedCustomers)
	}
}

func TestExecute_EmptyResultSet(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	result, err := store.Execute(context.Background(), "SELECT * FROM customers WHERE id = 9999")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Rows == nil {
		t.Fatal("Rows must be non-nil for an empty result set")
	}
	if len(result.Rows) != 0 {
		t.Errorf("got %d rows, want 0", len(result.Rows))
	}
	if len(result.Columns) == 0 {
		t.Error("column names should survive an empty result set")
	}
}

func TestExecute_Write(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	ctx := context.Background()

	result, err := store.Execute(ctx, "INSERT INTO customers (name, email) VALUES ('Frank Miller', 'frank@example.com')")
	if err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if result.Select {
		t.Error("expected Select to be false for INSERT")
	}
	if result.Affected != 1 {
		t.Errorf("insert affected: got %d, want 1", result.Affected)
	}

	result, err = store.Execute(ctx, "UPDATE products SET stock_quantity = 0 WHERE price > 500")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	// Laptop (1200.00) and Smartphone (800.00)
	if result.Affected != 2 {
		t.Errorf("update affected: got %d, want 2", result.Affected)
	}

	result, err = store.Execute(ctx, "DELETE FROM customers WHERE name = 'Frank Miller'")
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if result.Affected != 1 {
		t.Errorf("delete affected: got %d, want 1", result.Affected)
	}
}

func TestExecute_WriteRoundTrip(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	ctx := context.Background()

	if _, err := store.Execute(ctx, "INSERT INTO products (name, price, stock_quantity) VALUES ('Keyboard', 75.00, 40)"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	result, err := store.Execute(ctx, "SELECT price, stock_quantity FROM products WHERE name = 'Keyboard'")
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(result.Rows))
	}

	row := result.Rows[0]
	if row["price"] != float64(75.0) {
		t.Errorf("price: got %v (%T), want 75", row["price"], row["price"])
	}
	if row["stock_quantity"] != int64(40) {
		t.Errorf("stock_quantity: got %v (%T), want 40", row["stock_quantity"], row["stock_quantity"])
	}
}

func TestExecute_NullValue(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	ctx := context.Background()

	if _, err := store.Execute(ctx, "INSERT INTO customers (name) VALUES ('Grace Hopper')"); err != nil {
		t.Fatalf("insert failed: %v", err)
	}

	result, err := store.Execute(ctx, "SELECT email FROM customers WHERE name = 'Grace Hopper'")
	if err != nil {
		t.Fatalf("select failed: %v", err)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(result.Rows))
	}
	if result.Rows[0]["email"] != nil {
		t.Errorf("email: got %v, want nil", result.Rows[0]["email"])
	}
}

func TestExecute_TextValueIsString(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	result, err := store.Execute(context.Background(), "SELECT name FROM customers WHERE id = 1")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(result.Rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(result.Rows))
	}

	name, ok := result.Rows[0]["name"].(string)
	if !ok {
		t.Fatalf("name: got %T, want string", result.Rows[0]["name"])
	}
	if name != "John Doe" {
		t.Errorf("name: got %q, want John Doe", name)
	}
}

func TestExecute_DDL(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	ctx := context.Background()

	result, err := store.Execute(ctx, "CREATE TABLE notes (id INTEGER PRIMARY KEY, body TEXT)")
	if err != nil {
		t.Fatalf("create table failed: %v", err)
	}
	if result.Select {
		t.Error("expected Select to be false for DDL")
	}

	tables, err := store.Tables(ctx)
	if err != nil {
		t.Fatalf("Tables failed: %v", err)
	}
	found := false
	for _, name := range tables {
		if name == "notes" {
			found = true
		}
	}
	if !found {
		t.Errorf("notes table missing from %v", tables)
	}
}

func TestExecute_WithQueryTakesWritePath(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	// Dispatch keys on the SELECT prefix alone, so a CTE goes down the
	// exec path and reports no rows. Documented behavior, not a bug.
	result, err := store.Execute(context.Background(), "WITH c AS (SELECT 1 AS n) SELECT n FROM c")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Select {
		t.Error("expected WITH query to dispatch as a write")
	}
	if result.Rows != nil {
		t.Errorf("expected no row payload, got %v", result.Rows)
	}
}

func TestExecute_InvalidSQL(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	_, err := store.Execute(context.Background(), "SELECT * FROM no_such_table")
	if err == nil {
		t.Fatal("expected error for missing table")
	}
	if !strings.Contains(err.Error(), "no_such_table") {
		t.Errorf("error should name the missing table: %v", err)
	}

	_, err = store.Execute(context.Background(), "DELEET FROM customers")
	if err == nil {
		t.Fatal("expected error for malformed statement")
	}
}

func TestExecute_ConstraintViolation(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()

	// Seed data already holds john@example.com and email is UNIQUE.
	_, err := store.Execute(context.Background(), "INSERT INTO customers (name, email) VALUES ('Dup', 'john@example.com')")
	if err == nil {
		t.Fatal("expected unique constraint error")
	}
}
