package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	defaultMovementsTool = "recent_movements"
	defaultPrisonersTool = "prisoner_candidates"
)

// ServerConfig represents configuration for an upstream MCP server.
// Supports multiple transport types:
// - Command transport (stdio): Provide "command" field
// - HTTP transports (Streamable HTTP): Provide "url" field
type ServerConfig struct {
	Command       string            `json:"command,omitempty"`       // Command to execute (for stdio transport)
	Args          []string          `json:"args,omitempty"`          // Command arguments
	URL           string            `json:"url,omitempty"`           // HTTP URL (for Streamable HTTP transport)
	Env           map[string]string `json:"env,omitempty"`           // Environment variables (stdio only)
	MovementsTool string            `json:"movementsTool,omitempty"` // Tool returning recent movements (default: recent_movements)
	PrisonersTool string            `json:"prisonersTool,omitempty"` // Tool returning prisoner candidates (default: prisoner_candidates)
}

// MCPSource loads candidate records by calling tools on an upstream MCP server.
// Each tool must return a single text content holding a JSON array of records.
type MCPSource struct {
	name          string
	session       *mcp.ClientSession
	logger        *slog.Logger
	movementsTool string
	prisonersTool string // Empty when the upstream server does not offer it
}

// NewMCPSource connects to the upstream server described by config.
func NewMCPSource(ctx context.Context, name string, config ServerConfig, logger *slog.Logger) (*MCPSource, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var transport mcp.Transport

	// Determine transport type based on configuration
	if config.URL != "" {
		transport = &mcp.StreamableClientTransport{
			Endpoint:   config.URL,
			MaxRetries: 5,
		}
		logger.Info("Using Streamable HTTP transport", "name", name, "endpoint", config.URL)
	} else if config.Command != "" {
		cmd := exec.Command(config.Command, config.Args...)

		if len(config.Env) > 0 {
			env := os.Environ()
			for k, v := range config.Env {
				env = append(env, fmt.Sprintf("%s=%s", k, v))
			}
			cmd.Env = env
		}

		transport = &mcp.CommandTransport{
			Command: cmd,
		}
		logger.Info("Using stdio transport", "name", name, "command", config.Command)
	} else {
		return nil, fmt.Errorf("no transport configured: must provide either 'command' or 'url'")
	}

	return ConnectMCPSource(ctx, name, transport, config, logger)
}

// ConnectMCPSource connects over an already constructed transport and checks
// which of the configured tools the upstream server offers.
func ConnectMCPSource(ctx context.Context, name string, transport mcp.Transport, config ServerConfig, logger *slog.Logger) (*MCPSource, error) {
	if logger == nil {
		logger = slog.Default()
	}

	client := mcp.NewClient(
		&mcp.Implementation{
			Name:    "arrivalsearch",
			Version: "1.0.0",
		},
		nil,
	)

	// Connect to the server (this also initializes the connection)
	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MCP server %s: %w", name, err)
	}

	s := &MCPSource{
		name:          name,
		session:       session,
		logger:        logger,
		movementsTool: defaultIfEmpty(config.MovementsTool, defaultMovementsTool),
		prisonersTool: defaultIfEmpty(config.PrisonersTool, defaultPrisonersTool),
	}

	if err := s.checkTools(ctx); err != nil {
		session.Close()
		return nil, err
	}

	logger.Info("Connected to upstream MCP server", "name", name, "movements_tool", s.movementsTool, "prisoners_tool", s.prisonersTool)
	return s, nil
}

func (s *MCPSource) checkTools(ctx context.Context) error {
	result, err := s.session.ListTools(ctx, &mcp.ListToolsParams{})
	if err != nil {
		return fmt.Errorf("tools/list failed: %w", err)
	}

	available := make(map[string]bool, len(result.Tools))
	for _, t := range result.Tools {
		available[t.Name] = true
	}

	if !available[s.movementsTool] {
		return fmt.Errorf("upstream server %s does not provide tool %q", s.name, s.movementsTool)
	}
	if !available[s.prisonersTool] {
		s.logger.Warn("Upstream server has no prisoner tool, arrival matching disabled", "name", s.name, "tool", s.prisonersTool)
		s.prisonersTool = ""
	}
	return nil
}

// Load fetches movements and, when available, prisoner candidates.
func (s *MCPSource) Load(ctx context.Context) (*Dataset, error) {
	var dataset Dataset

	if err := s.callTool(ctx, s.movementsTool, &dataset.Movements); err != nil {
		return nil, err
	}
	if s.prisonersTool != "" {
		if err := s.callTool(ctx, s.prisonersTool, &dataset.Prisoners); err != nil {
			return nil, err
		}
	}

	s.logger.Debug("Loaded dataset from upstream", "name", s.name, "movements", len(dataset.Movements), "prisoners", len(dataset.Prisoners))
	return &dataset, nil
}

// callTool executes a tool on the upstream server and decodes its JSON text result into out.
func (s *MCPSource) callTool(ctx context.Context, toolName string, out any) error {
	result, err := s.session.CallTool(ctx, &mcp.CallToolParams{
		Name:      toolName,
		Arguments: map[string]any{},
	})
	if err != nil {
		return fmt.Errorf("tools/call %s failed: %w", toolName, err)
	}

	text := firstText(result)
	if result.IsError {
		if text == "" {
			text = "unknown error"
		}
		return fmt.Errorf("tool %s execution error: %s", toolName, text)
	}

	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", toolName, err)
	}
	return nil
}

func firstText(result *mcp.CallToolResult) string {
	for _, content := range result.Content {
		if textContent, ok := content.(*mcp.TextContent); ok {
			return textContent.Text
		}
	}
	return ""
}

// Close terminates the connection to the upstream server.
func (s *MCPSource) Close() error {
	if err := s.session.Close(); err != nil {
		s.logger.Warn("Upstream MCP server close error", "name", s.name, "error", err)
		return err
	}

	s.logger.Info("Closed upstream MCP server", "name", s.name)
	return nil
}

func defaultIfEmpty(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
