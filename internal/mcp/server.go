// ABOUTME: MCP server setup for the workout store.
// ABOUTME: Wraps the MCP server with storage, calendar, and progress services.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/lift/internal/calendar"
	"github.com/harperreed/lift/internal/progress"
	"github.com/harperreed/lift/internal/storage"
)

// Version is reported to MCP clients.
const Version = "1.0.0"

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	calendar  *calendar.Service
	analyzer  *progress.Analyzer
}

// NewServer creates a new MCP server with the given storage.
func NewServer(repo storage.Repository) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "lift",
			Version: Version,
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		calendar:  calendar.NewService(repo),
		analyzer:  progress.NewAnalyzer(repo),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
