// Package store provides SQLite persistence for the demo sales dataset.
//
// # Architecture
//
// The package exposes a small Store interface implemented by SQLiteStore:
//
//   - Execute: run one raw SQL statement verbatim (read or write)
//   - Tables/Schema: reflect the catalog into ordered column descriptors
//   - Sample: fetch a few example rows from one table
//
// Opening a store is the initialization step: NewSQLiteStore creates the
// database file, the four demo tables (customers, products, sales,
// sale_items), and the seed rows, all idempotently. Callers never need a
// separate init call and never check for the file themselves.
//
// # Raw Execution
//
// Execute forwards statement text to the engine without inspection,
// rewriting, or parameter binding. That is the point of the operation:
// it backs a tool agents use to run SQL they compose. It is unsafe for
// untrusted input and must not be exposed to callers who are not allowed
// to run arbitrary SQL.
//
// # Seed Data
//
// The seed dataset is fixed: 5 customers, 5 products, 7 sales, and 11
// sale items. Seeding happens inside one transaction, guarded by a row
// count on customers, so reopening a database never duplicates rows.
//
// # SQLite Configuration
//
// The store uses SQLite with WAL mode for concurrent reads:
//
//	PRAGMA journal_mode=WAL;
//	PRAGMA foreign_keys=ON;
//
// Use NewSQLiteStore(":memory:") for tests that don't need a file.
//
// # Error Handling
//
// All methods return wrapped errors; nothing is swallowed at this layer.
// Rendering engine errors into agent-facing error records is the tools
// package's job.
package store
