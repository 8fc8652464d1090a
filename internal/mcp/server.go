package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/radutopala/arrivalsearch/internal/arrivals"
	"github.com/radutopala/arrivalsearch/internal/movements"
	"github.com/radutopala/arrivalsearch/internal/search"
	"github.com/radutopala/arrivalsearch/internal/source"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchServer exposes movement search and arrival matching as MCP tools
type SearchServer struct {
	server            *mcp.Server
	logger            *slog.Logger
	source            source.Source
	movementSearcher  *search.RankedSearcher[string, movements.Movement]
	matcher           *arrivals.Matcher
	searchResultLimit int // Number of results per page
}

// NewSearchServer creates a server using the data source from the config file
func NewSearchServer(ctx context.Context, name, version string, logger *slog.Logger) (*SearchServer, error) {
	config, err := loadConfig(logger)
	if err != nil {
		return nil, err
	}

	src, err := source.New(ctx, config.Source, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create data source: %w", err)
	}

	return NewSearchServerWithSource(name, version, src, config.Settings, logger), nil
}

// NewSearchServerWithSource creates a server over an existing data source
func NewSearchServerWithSource(name, version string, src source.Source, settings Settings, logger *slog.Logger) *SearchServer {
	limit := settings.SearchResultLimit
	if limit <= 0 {
		limit = defaultSearchResultLimit
	}

	s := &SearchServer{
		logger:            logger,
		source:            src,
		movementSearcher:  movements.NewSearcher(search.WithLogger(logger)),
		matcher:           arrivals.NewMatcher(logger),
		searchResultLimit: limit,
	}

	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    name,
			Version: version,
		},
		nil,
	)
	s.registerTools(server)
	s.server = server

	return s
}

// Close releases the data source.
func (s *SearchServer) Close() error {
	return s.source.Close()
}

// Run starts the MCP server with the given transport
func (s *SearchServer) Run(ctx context.Context, transport mcp.Transport) error {
	return s.server.Run(ctx, transport)
}

// === TOOL REGISTRATION ===

func (s *SearchServer) registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "movement_search",
		Description: "Search recent arrivals by prison number, first name or last name. Tolerates small spelling mistakes. Results are ranked by relevance; an empty query lists every recent arrival. Use offset to page through results.",
	}, s.handleMovementSearch)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "prisoner_match",
		Description: "Find existing prisoner records an arrival may belong to, by exact prison number or PNC number. Records matching both identifiers rank first.",
	}, s.handlePrisonerMatch)
}

// === TOOL HANDLERS ===

// MovementSearchInput defines the input for movement_search
type MovementSearchInput struct {
	Query            string `json:"query,omitempty" jsonschema:"Free text to match against prison number, first name and last name (e.g. 'A1234AA', 'Smith, Jim'). Leave empty to list all recent arrivals."`
	Offset           int    `json:"offset,omitempty" jsonschema:"Number of results to skip for pagination. Default: 0"`
	IncludeRelevance bool   `json:"include_relevance,omitempty" jsonschema:"Include the relevance score of each result"`
}

type movementResult struct {
	movements.Movement
	Relevance *search.Relevance `json:"relevance,omitempty"`
}

func (s *SearchServer) handleMovementSearch(ctx context.Context, req *mcp.CallToolRequest, input MovementSearchInput) (*mcp.CallToolResult, any, error) {
	offset := max(input.Offset, 0)
	limit := s.searchResultLimit

	s.logger.Info("Movement search request", "query", input.Query, "offset", offset, "limit", limit)

	dataset, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Error("Failed to load movements", "error", err)
		return toolError(fmt.Errorf("failed to load movements: %w", err)), nil, nil
	}

	var query *string
	if input.Query != "" {
		query = search.Some(input.Query)
	}
	found := s.movementSearcher.SearchWithRelevance(query, dataset.Movements)

	totalCount := len(found)

	// Apply pagination
	start := min(offset, totalCount)
	end := min(start+limit, totalCount)
	page := found[start:end]

	s.logger.Info("Movement search response", "total_found", totalCount, "returned", len(page), "offset", offset, "limit", limit)

	results := make([]movementResult, len(page))
	for i, r := range page {
		results[i] = movementResult{Movement: r.Item}
		if input.IncludeRelevance {
			relevance := r.Relevance
			results[i].Relevance = &relevance
		}
	}

	return jsonResult(map[string]any{
		"total_count":    totalCount,
		"returned_count": len(results),
		"offset":         offset,
		"limit":          limit,
		"has_more":       end < totalCount,
		"movements":      results,
	}), nil, nil
}

// PrisonerMatchInput defines the input for prisoner_match
type PrisonerMatchInput struct {
	PrisonNumber string `json:"prison_number,omitempty" jsonschema:"Prison number of the arrival, e.g. A1234AA"`
	PNCNumber    string `json:"pnc_number,omitempty" jsonschema:"Police National Computer number of the arrival"`
	FirstName    string `json:"first_name,omitempty" jsonschema:"First name of the arrival"`
	LastName     string `json:"last_name,omitempty" jsonschema:"Last name of the arrival"`
	DateOfBirth  string `json:"date_of_birth,omitempty" jsonschema:"Date of birth of the arrival (YYYY-MM-DD)"`
}

type prisonerResult struct {
	arrivals.PrisonerDetails
	Relevance search.Relevance `json:"relevance"`
}

func (s *SearchServer) handlePrisonerMatch(ctx context.Context, req *mcp.CallToolRequest, input PrisonerMatchInput) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(input.PrisonNumber) == "" && strings.TrimSpace(input.PNCNumber) == "" {
		return toolError(fmt.Errorf("prison_number or pnc_number is required")), nil, nil
	}

	s.logger.Info("Prisoner match request", "prison_number", input.PrisonNumber, "pnc_number", input.PNCNumber)

	dataset, err := s.source.Load(ctx)
	if err != nil {
		s.logger.Error("Failed to load prisoner candidates", "error", err)
		return toolError(fmt.Errorf("failed to load prisoner candidates: %w", err)), nil, nil
	}

	arrival := arrivals.Arrival{
		PrisonNumber: input.PrisonNumber,
		PNCNumber:    input.PNCNumber,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		DateOfBirth:  input.DateOfBirth,
	}
	found := s.matcher.PotentialMatches(arrival, dataset.Prisoners)

	results := make([]prisonerResult, len(found))
	for i, r := range found {
		results[i] = prisonerResult{PrisonerDetails: r.Item, Relevance: r.Relevance}
	}

	s.logger.Info("Prisoner match response", "candidates", len(dataset.Prisoners), "matches", len(results))

	return jsonResult(map[string]any{
		"total_count": len(results),
		"matches":     results,
	}), nil, nil
}

func jsonResult(v any) *mcp.CallToolResult {
	resultJSON, _ := json.Marshal(v)

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(resultJSON)},
		},
	}
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: err.Error()},
		},
	}
}
