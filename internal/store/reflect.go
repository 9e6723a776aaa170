// ABOUTME: Schema reflection via sqlite_master and PRAGMA table_info
// ABOUTME: Lists user tables with ordered column descriptors and sample rows

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Tables returns the names of all user tables, ordered by name.
// Internal sqlite_% tables (sqlite_sequence and friends) are excluded.
func (s *SQLiteStore) Tables(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%' ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("listing tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning table name: %w", err)
		}
		tables = append(tables, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating table names: %w", err)
	}
	return tables, nil
}

// Schema describes every user table's columns in definition order.
// The description is recomputed from the catalog on each call.
func (s *SQLiteStore) Schema(ctx context.Context) (map[string][]Column, error) {
	tables, err := s.Tables(ctx)
	if err != nil {
		return nil, err
	}

	schema := make(map[string][]Column, len(tables))
	for _, table := range tables {
		columns, err := s.tableColumns(ctx, table)
		if err != nil {
			return nil, err
		}
		schema[table] = columns
	}

	s.logger.Debug("reflected schema", "tables", len(schema))
	return schema, nil
}

// tableColumns reads PRAGMA table_info for one table. PRAGMA arguments
// cannot be bound, so the identifier is quoted inline.
func (s *SQLiteStore) tableColumns(ctx context.Context, table string) ([]Column, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf("PRAGMA table_info(%s)", quoteIdent(table)))
	if err != nil {
		return nil, fmt.Errorf("reading table info for %s: %w", table, err)
	}
	defer rows.Close()

	var columns []Column
	for rows.Next() {
		var (
			cid     int
			name    string
			colType string
			notNull int
			dflt    sql.NullString
			pk      int
		)
		if err := rows.Scan(&cid, &name, &colType, &notNull, &dflt, &pk); err != nil {
			return nil, fmt.Errorf("scanning column info for %s: %w", table, err)
		}
		columns = append(columns, Column{
			Name:       name,
			Type:       colType,
			NotNull:    notNull != 0,
			PrimaryKey: pk != 0,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating column info for %s: %w", table, err)
	}
	return columns, nil
}

// Sample returns up to limit rows from one table via the read path.
func (s *SQLiteStore) Sample(ctx context.Context, table string, limit int) ([]Row, error) {
	result, err := s.executeRead(ctx, fmt.Sprintf("SELECT * FROM %s LIMIT %d", quoteIdent(table), limit))
	if err != nil {
		return nil, err
	}
	return result.Rows, nil
}

// quoteIdent wraps an identifier in double quotes, escaping embedded quotes.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
