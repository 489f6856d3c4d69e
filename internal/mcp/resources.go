// ABOUTME: MCP resource implementations for prvault.
// ABOUTME: Provides prvault://summary and prvault://bodyweight resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/prvault/internal/progress"
)

func (s *Server) registerResources() {
	// prvault://summary - dashboard: PRs, streak, templates, recent sessions
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "prvault://summary",
		Name:        "Training Summary Dashboard",
		Description: "Current maxes, logging streak, templates, and recent sessions",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// prvault://bodyweight - recent bodyweight history
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "prvault://bodyweight",
		Name:        "Bodyweight History",
		Description: "Recent bodyweight log entries, newest first",
		MIMEType:    "application/json",
	}, s.handleBodyweightResource)
}

// Resource handlers

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	stats, err := s.stats.Load(ctx, s.session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	weights, err := s.stats.RecentBodyweights(ctx, s.session.ID, streakLookback)
	if err != nil {
		return nil, fmt.Errorf("failed to load bodyweight log: %w", err)
	}

	keys := make([]string, 0, len(weights))
	for _, w := range weights {
		keys = append(keys, w.Date)
	}

	logs, err := s.workouts.Logs(ctx, s.session.ID, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to load workout history: %w", err)
	}

	templates, err := s.workouts.List(ctx, s.session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	now := time.Now()
	result := map[string]interface{}{
		"generated_at": now.Format(time.RFC3339),
		"account":      s.session.Username,
		"prs": map[string]float64{
			"bodyweight": stats.Bodyweight,
			"bench":      stats.Bench,
			"squat":      stats.Squat,
			"deadlift":   stats.Deadlift,
		},
		"streak_days":     progress.Streak(keys, now),
		"daily_progress":  progress.Daily(keys, now),
		"template_count":  len(templates),
		"recent_sessions": logs,
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "prvault://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleBodyweightResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	logs, err := s.stats.RecentBodyweights(ctx, s.session.ID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to load bodyweight logs: %w", err)
	}

	result := map[string]interface{}{
		"account": s.session.Username,
		"entries": logs,
		"count":   len(logs),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "prvault://bodyweight",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
