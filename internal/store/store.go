// ABOUTME: Store interface and result types for the sales database access layer
// ABOUTME: Defines Row, Result, Column and the operations the query tools consume

package store

import (
	"context"
)

// DefaultPath is the database file used when no path is configured.
const DefaultPath = "sales_demo.db"

// Row is a single result row keyed by column name.
type Row map[string]any

// Result is the outcome of executing one SQL statement.
//
// For statements recognized as reads, Select is true, Rows holds every row
// in result order, and Columns preserves the query's column order (which
// Row maps cannot). For anything else, Select is false and Affected
// reports the engine's affected-row count.
type Result struct {
	Select   bool
	Columns  []string
	Rows     []Row
	Affected int64
}

// Column describes one column of a table as reported by the engine catalog.
type Column struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	NotNull    bool   `json:"notnull"`
	PrimaryKey bool   `json:"pk"`
}

// Store defines the operations the data-access tools need.
type Store interface {
	// Execute runs one raw SQL statement verbatim. See SQLiteStore.Execute
	// for the read/write split and the pass-through caveats.
	Execute(ctx context.Context, query string) (*Result, error)

	// Tables lists all user table names, ordered by name.
	Tables(ctx context.Context) ([]string, error)

	// Schema maps every user table to its ordered column descriptors.
	Schema(ctx context.Context) (map[string][]Column, error)

	// Sample returns up to limit rows from one table.
	Sample(ctx context.Context, table string, limit int) ([]Row, error)

	Close() error
}
