package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
)

// FileSource reads a JSON dataset from disk on every Load.
type FileSource struct {
	path   string
	logger *slog.Logger
}

// NewFileSource creates a source backed by the JSON file at path.
// A nil logger defaults to slog.Default().
func NewFileSource(path string, logger *slog.Logger) *FileSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileSource{path: path, logger: logger}
}

// Load reads and decodes the dataset file.
func (s *FileSource) Load(ctx context.Context) (*Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset: %w", err)
	}

	var dataset Dataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("failed to parse dataset %s: %w", s.path, err)
	}

	s.logger.Debug("Loaded dataset", "path", s.path, "movements", len(dataset.Movements), "prisoners", len(dataset.Prisoners))
	return &dataset, nil
}

// Close is a no-op.
func (s *FileSource) Close() error {
	return nil
}
