// ABOUTME: Service is the data-access facade for the query and info tools
// ABOUTME: All SQL and schema inspection flows through here on its way to the wire

package tools

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/2389/sqlpack/internal/store"
)

// DefaultSampleRows is how many rows DatabaseInfo pulls from each table.
const DefaultSampleRows = 3

// Service wraps a store with the response shapes the tools put on the wire.
type Service struct {
	store      store.Store
	logger     *slog.Logger
	sampleRows int
}

// NewService creates the data-access facade. sampleRows <= 0 falls back to
// DefaultSampleRows.
func NewService(s store.Store, sampleRows int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if sampleRows <= 0 {
		sampleRows = DefaultSampleRows
	}
	return &Service{
		store:      s,
		logger:     logger.With("component", "tools"),
		sampleRows: sampleRows,
	}
}

// QueryResponse is the fixed envelope for query execution. Results always
// holds exactly one of: the selected rows, a single affected_rows record,
// or a single error record.
type QueryResponse struct {
	Query   string      `json:"query"`
	Results []store.Row `json:"results"`
}

// ExecuteQuery runs raw SQL and renders the outcome into the response
// envelope. Engine errors do not propagate: they come back as an error
// record inside Results, so callers always get a well-formed envelope.
func (s *Service) ExecuteQuery(ctx context.Context, query string) QueryResponse {
	resp := QueryResponse{Query: query}

	result, err := s.store.Execute(ctx, query)
	if err != nil {
		s.logger.Debug("query failed", "error", err)
		resp.Results = []store.Row{{"error": err.Error()}}
		return resp
	}

	if result.Select {
		resp.Results = result.Rows
	} else {
		resp.Results = []store.Row{{"affected_rows": result.Affected}}
	}
	return resp
}

// InfoResponse describes every user table: its columns and a few sample rows.
type InfoResponse struct {
	Schema     map[string][]store.Column `json:"schema"`
	SampleData map[string][]store.Row    `json:"sample_data"`
}

// DatabaseInfo reflects the schema and samples rows from each table. A table
// whose sampling fails is left out of SampleData but stays in Schema.
func (s *Service) DatabaseInfo(ctx context.Context) (*InfoResponse, error) {
	schema, err := s.store.Schema(ctx)
	if err != nil {
		return nil, fmt.Errorf("reflecting schema: %w", err)
	}

	samples := make(map[string][]store.Row, len(schema))
	for table := range schema {
		rows, err := s.store.Sample(ctx, table, s.sampleRows)
		if err != nil {
			s.logger.Debug("sampling table failed", "table", table, "error", err)
			continue
		}
		samples[table] = rows
	}

	return &InfoResponse{
		Schema:     schema,
		SampleData: samples,
	}, nil
}
