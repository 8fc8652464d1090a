package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/radutopala/arrivalsearch/internal/mcp"
)

func main() {
	// Create log file
	logPath := os.Getenv("MCP_LOG_FILE")
	if logPath == "" {
		logPath = "/tmp/arrival-search-server.log"
	}

	// Open log file
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		// Fallback to stderr if we can't open the log file
		logFile = os.Stderr
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	err = run(context.Background(), logger, &mcpsdk.StdioTransport{})
	if logFile != os.Stderr {
		logFile.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

// run serves until the client disconnects. The data source is closed on every return path.
func run(ctx context.Context, logger *slog.Logger, transport mcpsdk.Transport) error {
	// Get server name and version from environment or use defaults
	serverName := os.Getenv("MCP_SERVER_NAME")
	if serverName == "" {
		serverName = "arrival-search"
	}

	serverVersion := os.Getenv("MCP_SERVER_VERSION")
	if serverVersion == "" {
		serverVersion = "0.1.0"
	}

	searchServer, err := mcp.NewSearchServer(ctx, serverName, serverVersion, logger)
	if err != nil {
		logger.Error("Failed to create arrival search server", "error", err)
		return fmt.Errorf("failed to create arrival search server: %w", err)
	}
	defer searchServer.Close()

	logger.Info("Starting arrival search server...", "name", serverName, "version", serverVersion)
	if err := searchServer.Run(ctx, transport); err != nil {
		logger.Error("Arrival search server failed", "error", err)
		return fmt.Errorf("arrival search server failed: %w", err)
	}
	logger.Info("Arrival search server finished")
	return nil
}
