// ABOUTME: Tool pack exposing the database to MCP clients: execute_query, get_database_info.
// ABOUTME: Handlers decode tool input and render Service responses to JSON.

package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// Handler executes a tool call with raw JSON input.
type Handler func(ctx context.Context, input json.RawMessage) (json.RawMessage, error)

// Tool is one callable tool and its wire-facing metadata.
type Tool struct {
	Name        string
	Description string
	InputSchema json.RawMessage
	Handler     Handler
}

// Pack is the fixed set of tools the server exposes.
type Pack struct {
	tools []*Tool
}

// Tools returns the pack's tools in listing order.
func (p *Pack) Tools() []*Tool {
	return p.tools
}

// Get looks up a tool by name.
func (p *Pack) Get(name string) (*Tool, bool) {
	for _, t := range p.tools {
		if t.Name == name {
			return t, true
		}
	}
	return nil, false
}

// NewPack creates the database tool pack backed by the given service.
func NewPack(svc *Service) *Pack {
	h := &toolHandlers{svc: svc}
	return &Pack{
		tools: []*Tool{
			{
				Name: "execute_query",
				Description: "Execute a SQL query against the sales database. " +
					"The statement runs verbatim with no sanitization or parameter binding, " +
					"so only send trusted SQL. SELECT statements return rows; " +
					"other statements return the affected row count. " +
					"Engine errors come back as an error record inside results.",
				InputSchema: json.RawMessage(`{"type":"object","properties":{"sql":{"type":"string","description":"SQL statement to execute verbatim"}},"required":["sql"]}`),
				Handler:     h.ExecuteQuery,
			},
			{
				Name: "get_database_info",
				Description: "Get information about the database schema to help with query construction: " +
					"every table's columns plus a few sample rows from each table.",
				InputSchema: json.RawMessage(`{"type":"object","properties":{}}`),
				Handler:     h.DatabaseInfo,
			},
		},
	}
}

type toolHandlers struct {
	svc *Service
}

type executeQueryInput struct {
	SQL string `json:"sql"`
}

func (h *toolHandlers) ExecuteQuery(ctx context.Context, input json.RawMessage) (json.RawMessage, error) {
	var in executeQueryInput
	if err := json.Unmarshal(input, &in); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}

	return json.Marshal(h.svc.ExecuteQuery(ctx, in.SQL))
}

func (h *toolHandlers) DatabaseInfo(ctx context.Context, _ json.RawMessage) (json.RawMessage, error) {
	info, err := h.svc.DatabaseInfo(ctx)
	if err != nil {
		// Info failures travel in-band as an error object, matching the
		// envelope clients already parse.
		return json.Marshal(map[string]string{"error": err.Error()})
	}

	return json.Marshal(info)
}
