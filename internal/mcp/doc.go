// Package mcp implements the Model Context Protocol server for the database tools.
//
// # Overview
//
// MCP (Model Context Protocol) is a standard for AI tool integration. This package
// provides an MCP-compatible HTTP server that exposes the database tool pack to
// AI clients (like Claude Desktop, other LLMs, or custom applications).
//
// # Protocol
//
// The server implements the Streamable HTTP transport (spec 2025-11-25):
// JSON-RPC 2.0 over a single HTTP endpoint.
//
//   - POST /mcp - JSON-RPC requests (initialize, tools/list, tools/call)
//   - DELETE /mcp - session termination
//
// Server-initiated SSE streams are not supported; GET returns 405.
//
// # Sessions
//
// The initialize handshake creates an in-memory session and returns its ID in
// the Mcp-Session-Id response header. Every later request must echo that
// header; an unknown session gets 404 and the client re-initializes.
// Notifications (requests without an id) are accepted with HTTP 202.
//
// # Tool Discovery
//
// Clients call tools/list to discover available tools:
//
//	{
//	  "jsonrpc": "2.0",
//	  "method": "tools/list",
//	  "id": 1
//	}
//
// Response includes tool schemas in JSON Schema format.
//
// # Tool Execution
//
// Clients call tools/call to execute a tool:
//
//	{
//	  "jsonrpc": "2.0",
//	  "method": "tools/call",
//	  "params": {
//	    "name": "execute_query",
//	    "arguments": {"sql": "SELECT * FROM customers"}
//	  },
//	  "id": 2
//	}
//
// The tool's JSON output is returned as a single text content block. A result
// with isError=true means the tool input itself was unusable; SQL engine
// errors arrive as ordinary results with an error record in the payload.
//
// # Usage
//
// Create the server and mount it on a mux:
//
//	pack := tools.NewPack(svc)
//	server, err := mcp.NewServer(mcp.Config{Pack: pack, Logger: logger})
//	server.RegisterRoutes(mux)
//
// # Integration with Claude Desktop
//
// Add to Claude Desktop's MCP configuration:
//
//	{
//	  "mcpServers": {
//	    "sqlpack": {
//	      "url": "http://localhost:8586/mcp"
//	    }
//	  }
//	}
package mcp
