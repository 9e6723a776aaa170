// Package tools exposes the database to MCP clients as a two-tool pack.
//
// # Overview
//
// The pack serves a text-to-SQL workflow: a client first calls
// get_database_info to learn the schema, then issues SQL through
// execute_query. Service is the facade both tools (and the CLI) share;
// it turns store results into the fixed response envelopes.
//
// # Tools
//
//   - execute_query: Run a raw SQL statement and return rows or an
//     affected row count
//   - get_database_info: Describe every table's columns plus a few
//     sample rows from each
//
// # Response Envelopes
//
// execute_query always produces a well-formed envelope:
//
//	{"query": "...", "results": [...]}
//
// For SELECT statements, results holds the matched rows. For other
// statements it holds a single record:
//
//	[{"affected_rows": 2}]
//
// Engine errors do not become protocol errors. They travel in-band as a
// single error record, so a client that sends bad SQL can read the
// engine's message and try again:
//
//	[{"error": "SQL logic error: no such table: orders (1)"}]
//
// get_database_info returns the schema and sample data keyed by table
// name:
//
//	{"schema": {"customers": [...]}, "sample_data": {"customers": [...]}}
//
// # Safety
//
// execute_query forwards SQL to the engine verbatim. There is no
// sanitization, no parameter binding, and no statement allow-list; the
// tool description says as much to the calling model. Deploy this pack
// only against databases whose loss or corruption is acceptable.
//
// # Handler Contract
//
// Each tool handler has signature:
//
//	func(ctx context.Context, input json.RawMessage) (json.RawMessage, error)
//
// A handler error means the input itself was unusable (malformed JSON).
// Domain failures are rendered into the JSON payload instead.
package tools
