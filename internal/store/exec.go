// ABOUTME: Raw SQL execution with row-mapping normalization
// ABOUTME: Statements pass to the engine verbatim; rows for reads, affected count otherwise

package store

import (
	"context"
	"fmt"
	"strings"
)

// Execute runs exactly one SQL statement, forwarded to the engine verbatim.
//
// The text is not inspected, rewritten, or parameterized. That makes this
// operation unsafe for untrusted input; it exists as a deliberate raw
// capability for callers that construct their own SQL.
//
// A statement whose trimmed text begins with SELECT (case-insensitive) is
// treated as a read: every row is fetched and converted to a Row keyed by
// column name, preserving row order, with Columns recording the query's
// column order. Anything else is treated as a write and reports the
// engine's affected-row count.
func (s *SQLiteStore) Execute(ctx context.Context, query string) (*Result, error) {
	if isSelect(query) {
		return s.executeRead(ctx, query)
	}
	return s.executeWrite(ctx, query)
}

// isSelect reports whether the statement takes the read path. The check is
// a trimmed, upper-cased prefix match only: WITH-prefixed reads and PRAGMA
// land on the write path and report affected rows instead.
func isSelect(query string) bool {
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(query)), "SELECT")
}

func (s *SQLiteStore) executeRead(ctx context.Context, query string) (*Result, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading columns: %w", err)
	}

	result := &Result{
		Select:  true,
		Columns: columns,
		Rows:    []Row{},
	}

	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}

		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = normalizeValue(values[i])
		}
		result.Rows = append(result.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	s.logger.Debug("executed read", "columns", len(columns), "rows", len(result.Rows))
	return result, nil
}

func (s *SQLiteStore) executeWrite(ctx context.Context, query string) (*Result, error) {
	res, err := s.db.ExecContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("executing statement: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("getting rows affected: %w", err)
	}

	s.logger.Debug("executed write", "affected", affected)
	return &Result{Affected: affected}, nil
}

// normalizeValue converts driver values into JSON-friendly scalars.
// BLOB columns scan as []byte and are rendered as text.
func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
