package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/radutopala/arrivalsearch/internal/source"
	"github.com/stretchr/testify/require"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestRun_NoSourceConfigured(t *testing.T) {
	t.Setenv("ARRIVALSEARCH_CONFIG", filepath.Join(t.TempDir(), "missing.json"))

	serverTransport, _ := mcpsdk.NewInMemoryTransports()
	err := run(context.Background(), quietLogger(), serverTransport)
	require.ErrorIs(t, err, source.ErrNoSourceConfigured)
}

func TestRun_ServesUntilClientDisconnects(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "movements.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(`{"movements": [{"prisonNumber": "A1234AA", "firstName": "Jim", "lastName": "Smith"}]}`), 0644))

	configPath := filepath.Join(dir, ".arrivalsearch.json")
	require.NoError(t, os.WriteFile(configPath, []byte(`{"source": {"file": "`+dataPath+`"}}`), 0644))
	t.Setenv("ARRIVALSEARCH_CONFIG", configPath)
	t.Setenv("MCP_SERVER_NAME", "arrival-search-test")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	serverTransport, clientTransport := mcpsdk.NewInMemoryTransports()
	done := make(chan error, 1)
	go func() {
		done <- run(ctx, quietLogger(), serverTransport)
	}()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	require.Equal(t, "arrival-search-test", session.InitializeResult().ServerInfo.Name)

	result, err := session.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      "movement_search",
		Arguments: map[string]any{"query": "smith"},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.Contains(t, result.Content[0].(*mcpsdk.TextContent).Text, "A1234AA")

	require.NoError(t, session.Close())

	select {
	case <-done:
	case <-ctx.Done():
		t.Fatal("server did not stop after the client disconnected")
	}
}
