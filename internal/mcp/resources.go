// ABOUTME: MCP resource implementations for the workout store.
// ABOUTME: Provides lift://catalog, lift://week, and lift://profile resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/lift/internal/calendar"
	"github.com/harperreed/lift/internal/models"
)

func (s *Server) registerResources() {
	// lift://catalog - every exercise, grouped by muscle group
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lift://catalog",
		Name:        "Exercise Catalog",
		Description: "All exercises grouped by muscle group",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)

	// lift://week - current week with workout presence
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lift://week",
		Name:        "This Week",
		Description: "Monday-first calendar of the current week with logged workout days",
		MIMEType:    "application/json",
	}, s.handleWeekResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "lift://profile",
		Name:        "User Profile",
		Description: "The user profile with derived body metrics",
		MIMEType:    "application/json",
	}, s.handleProfileResource)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// Resource handlers

func (s *Server) handleCatalogResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	exercises, err := s.repo.GetExercises(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	groups := make(map[models.MuscleGroup][]*models.Exercise)
	for _, e := range exercises {
		groups[e.MuscleGroup] = append(groups[e.MuscleGroup], e)
	}

	return jsonResource("lift://catalog", map[string]any{
		"groups": groups,
		"count":  len(exercises),
	})
}

func (s *Server) handleWeekResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := time.Now()
	days, err := s.calendar.Week(ctx, now)
	if err != nil {
		return nil, fmt.Errorf("failed to build week: %w", err)
	}

	trained := 0
	for _, d := range days {
		if d.HasWorkout {
			trained++
		}
	}

	start, end := calendar.WeekRange(now)
	return jsonResource("lift://week", map[string]any{
		"start":         calendar.FormatDate(start),
		"end":           calendar.FormatDate(end),
		"days":          days,
		"workout_count": trained,
	})
}

func (s *Server) handleProfileResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	_, out, err := s.handleGetUser(ctx, nil, emptyInput{})
	if err != nil {
		return nil, err
	}
	return jsonResource("lift://profile", out)
}
