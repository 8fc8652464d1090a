package mcp

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/radutopala/arrivalsearch/internal/source"
	"github.com/tailscale/hujson"
)

const defaultSearchResultLimit = 10

// Config represents the complete arrivalsearch configuration
type Config struct {
	Settings Settings      `json:"settings"`
	Source   source.Config `json:"source"`
}

// Settings represents server settings
type Settings struct {
	SearchResultLimit int `json:"searchResultLimit"` // Number of results per page (default: 10)
}

// loadConfig loads the .arrivalsearch.json configuration file.
// The file is JSON with optional // and /* */ comments and trailing commas.
func loadConfig(logger *slog.Logger) (*Config, error) {
	configPath := os.Getenv("ARRIVALSEARCH_CONFIG")
	if configPath == "" {
		configPath = ".arrivalsearch.json"
	}

	logger.Info("Looking for config", "path", configPath)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("No config found, using defaults", "path", configPath)
			return &Config{Settings: Settings{SearchResultLimit: defaultSearchResultLimit}}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	logger.Info("Found config", "path", configPath, "size_bytes", len(data))

	data, err = hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if config.Settings.SearchResultLimit <= 0 {
		config.Settings.SearchResultLimit = defaultSearchResultLimit
	}

	return &config, nil
}
