// ABOUTME: MCP server setup for the prvault store.
// ABOUTME: Exposes the logged-in account's training data to assistants.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/prvault/internal/models"
	"github.com/harperreed/prvault/internal/service"
	"github.com/harperreed/prvault/internal/storage"
)

// Server wraps the MCP server with service access for one account.
type Server struct {
	mcpServer *mcp.Server
	session   *models.Session

	stats    *service.StatsService
	workouts *service.WorkoutService
	settings *service.SettingsService
}

// NewServer creates a new MCP server scoped to the given session.
func NewServer(store *storage.Store, session *models.Session,
	stats *service.StatsService, workouts *service.WorkoutService,
	settings *service.SettingsService) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "prvault",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		session:   session,
		stats:     stats,
		workouts:  workouts,
		settings:  settings,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
