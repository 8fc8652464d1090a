package source

import (
	"context"
	"errors"
	"log/slog"

	"github.com/radutopala/arrivalsearch/internal/arrivals"
	"github.com/radutopala/arrivalsearch/internal/movements"
)

// ErrNoSourceConfigured is returned when neither a data file nor an upstream server is configured.
var ErrNoSourceConfigured = errors.New("no data source configured")

// Dataset holds the candidate records searched by the engine.
type Dataset struct {
	Movements []movements.Movement       `json:"movements"`
	Prisoners []arrivals.PrisonerDetails `json:"prisoners"`
}

// Source supplies candidate records. Load is called once per search so that
// results always reflect the latest upstream data.
type Source interface {
	Load(ctx context.Context) (*Dataset, error)
	Close() error
}

// Config selects a data source. Server takes precedence over File.
type Config struct {
	File   string        `json:"file,omitempty"`   // Path to a JSON dataset
	Server *ServerConfig `json:"server,omitempty"` // Upstream MCP server
}

// New creates the source described by config.
func New(ctx context.Context, config Config, logger *slog.Logger) (Source, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch {
	case config.Server != nil:
		if config.File != "" {
			logger.Warn("Both file and server sources configured, using server", "file", config.File)
		}
		return NewMCPSource(ctx, "upstream", *config.Server, logger)
	case config.File != "":
		return NewFileSource(config.File, logger), nil
	default:
		return nil, ErrNoSourceConfigured
	}
}

// StaticSource serves a fixed in-memory dataset.
type StaticSource struct {
	dataset Dataset
}

// NewStaticSource creates a source that always returns dataset.
func NewStaticSource(dataset Dataset) *StaticSource {
	return &StaticSource{dataset: dataset}
}

// Load returns the dataset.
func (s *StaticSource) Load(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dataset := s.dataset
	return &dataset, nil
}

// Close is a no-op.
func (s *StaticSource) Close() error {
	return nil
}
