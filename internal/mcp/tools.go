// ABOUTME: MCP tool implementations for prvault.
// ABOUTME: Bodyweight logging, PR lookup, streaks, templates, and programs.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/prvault/internal/progress"
)

// streakLookback bounds how much history the streak tools read. The streak
// itself caps at 365 days, so one extra day of logs is enough.
const streakLookback = 366

func (s *Server) registerTools() {
	// log_bodyweight
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_bodyweight",
		Description: "Record today's bodyweight for the logged-in account",
	}, s.handleLogBodyweight)

	// get_prs
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_prs",
		Description: "Get current one-rep maxes and bodyweight",
	}, s.handleGetPRs)

	// get_streak
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_streak",
		Description: "Get the current consecutive-day bodyweight logging streak",
	}, s.handleGetStreak)

	// list_workouts
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_workouts",
		Description: "List saved workout templates",
	}, s.handleListWorkouts)

	// get_program
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_program",
		Description: "Generate the weekly training program from current maxes",
	}, s.handleGetProgram)
}

// Tool input/output types

type logBodyweightInput struct {
	Weight float64 `json:"weight" jsonschema:"Bodyweight in kg"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type prsOutput struct {
	Name       string  `json:"name,omitempty"`
	Bodyweight float64 `json:"bodyweight"`
	Bench      float64 `json:"bench"`
	Squat      float64 `json:"squat"`
	Deadlift   float64 `json:"deadlift"`
}

type streakOutput struct {
	StreakDays    int  `json:"streak_days"`
	LoggedToday   bool `json:"logged_today"`
	DailyProgress int  `json:"daily_progress"`
}

type listWorkoutsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default all)"`
}

type workoutSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Exercises   int    `json:"exercises"`
}

type getProgramInput struct {
	Week int `json:"week,omitempty" jsonschema:"Deadlift program week (1-7+), defaults to 1"`
}

// Tool handlers

func (s *Server) handleLogBodyweight(ctx context.Context, req *mcp.CallToolRequest, input logBodyweightInput) (*mcp.CallToolResult, simpleOutput, error) {
	if input.Weight <= 0 {
		return nil, simpleOutput{}, fmt.Errorf("weight must be positive")
	}

	stats, err := s.stats.Load(ctx, s.session.ID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to load stats: %w", err)
	}

	stats.Bodyweight = input.Weight
	if err := s.stats.Save(ctx, s.session.ID, stats); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save bodyweight: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged bodyweight: %.1f kg", input.Weight),
	}, nil
}

func (s *Server) handleGetPRs(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, prsOutput, error) {
	stats, err := s.stats.Load(ctx, s.session.ID)
	if err != nil {
		return nil, prsOutput{}, fmt.Errorf("failed to load stats: %w", err)
	}

	return nil, prsOutput{
		Name:       stats.Name,
		Bodyweight: stats.Bodyweight,
		Bench:      stats.Bench,
		Squat:      stats.Squat,
		Deadlift:   stats.Deadlift,
	}, nil
}

func (s *Server) handleGetStreak(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, streakOutput, error) {
	logs, err := s.stats.RecentBodyweights(ctx, s.session.ID, streakLookback)
	if err != nil {
		return nil, streakOutput{}, fmt.Errorf("failed to load bodyweight log: %w", err)
	}

	keys := make([]string, 0, len(logs))
	for _, l := range logs {
		keys = append(keys, l.Date)
	}

	now := time.Now()
	streak := progress.Streak(keys, now)
	daily := progress.Daily(keys, now)

	return nil, streakOutput{
		StreakDays:    streak,
		LoggedToday:   daily == 100,
		DailyProgress: daily,
	}, nil
}

func (s *Server) handleListWorkouts(ctx context.Context, req *mcp.CallToolRequest, input listWorkoutsInput) (*mcp.CallToolResult, any, error) {
	workouts, err := s.workouts.List(ctx, s.session.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	if input.Limit > 0 && len(workouts) > input.Limit {
		workouts = workouts[:input.Limit]
	}

	if len(workouts) == 0 {
		return nil, map[string]interface{}{"message": "No workout templates found."}, nil
	}

	out := make([]workoutSummary, 0, len(workouts))
	for _, w := range workouts {
		out = append(out, workoutSummary{
			ID:          w.ID[:8],
			Name:        w.Name,
			Description: w.Description,
			Exercises:   len(w.Exercises),
		})
	}
	return nil, out, nil
}

func (s *Server) handleGetProgram(ctx context.Context, req *mcp.CallToolRequest, input getProgramInput) (*mcp.CallToolResult, any, error) {
	stats, err := s.stats.Load(ctx, s.session.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load stats: %w", err)
	}

	week := input.Week
	if week < 1 {
		week = 1
	}

	program := progress.GenerateProgram(stats.Bench, stats.Squat, stats.Deadlift, week)
	return nil, program, nil
}
