// ABOUTME: MCP tool implementations for the workout store.
// ABOUTME: Profile, catalog, day-level workout saves, calendars, and records.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/lift/internal/calendar"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/progress"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_user",
		Description: "Get the user profile with BMI, ideal weight, and basal metabolic rate",
	}, s.handleGetUser)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List the exercise catalog, optionally filtered by muscle group (push, pull, legs)",
	}, s.handleListExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "create_exercise",
		Description: "Add an exercise to the catalog",
	}, s.handleCreateExercise)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "save_workout",
		Description: "Save the complete workout for a date, replacing anything stored for that date. An empty exercise list removes the workout.",
	}, s.handleSaveWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_workout",
		Description: "Get the workout and its sets for a date",
	}, s.handleGetWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "clear_workout",
		Description: "Remove the workout stored for a date",
	}, s.handleClearWorkout)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "workout_days",
		Description: "List dates with at least one logged set in a date range",
	}, s.handleWorkoutDays)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "week",
		Description: "Monday-first week calendar with workout presence",
	}, s.handleWeek)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "best_results",
		Description: "Heaviest set per day for an exercise, newest first, with personal records flagged",
	}, s.handleBestResults)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "repair",
		Description: "Remove duplicate sets left by interrupted saves",
	}, s.handleRepair)
}

// Tool input/output types

type emptyInput struct{}

type simpleOutput struct {
	Message string `json:"message"`
}

type userOutput struct {
	Exists      bool         `json:"exists"`
	User        *models.User `json:"user,omitempty"`
	BMI         float64      `json:"bmi,omitempty"`
	BMICategory string       `json:"bmi_category,omitempty"`
	IdealWeight float64      `json:"ideal_weight,omitempty"`
	BMR         float64      `json:"bmr,omitempty"`
}

type listExercisesInput struct {
	MuscleGroup string `json:"muscle_group,omitempty" jsonschema:"Filter by muscle group: push, pull or legs"`
}

type exercisesOutput struct {
	Exercises []*models.Exercise `json:"exercises"`
	Count     int                `json:"count"`
}

type createExerciseInput struct {
	Name        string `json:"name" jsonschema:"Exercise name"`
	MuscleGroup string `json:"muscle_group" jsonschema:"Muscle group: push, pull or legs"`
	Video       string `json:"video,omitempty" jsonschema:"Optional demonstration video URL"`
}

type exerciseOutput struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type setInput struct {
	Reps   int     `json:"reps" jsonschema:"Repetitions, must be positive"`
	Weight float64 `json:"weight" jsonschema:"Weight in kg, must be positive"`
}

type exerciseSetsInput struct {
	ExerciseID int64      `json:"exercise_id" jsonschema:"Catalog exercise ID"`
	Sets       []setInput `json:"sets" jsonschema:"Sets in the order performed"`
}

type saveWorkoutInput struct {
	Date      string              `json:"date" jsonschema:"Workout date (YYYY-MM-DD)"`
	Name      string              `json:"name,omitempty" jsonschema:"Display name, defaults to Workout <date>"`
	Exercises []exerciseSetsInput `json:"exercises" jsonschema:"Every exercise of the day with its sets"`
}

type saveWorkoutOutput struct {
	WorkoutID   int64  `json:"workout_id,omitempty"`
	Deleted     bool   `json:"deleted"`
	SetsSaved   int    `json:"sets_saved"`
	SetsSkipped int    `json:"sets_skipped"`
	Message     string `json:"message"`
}

type dateInput struct {
	Date string `json:"date" jsonschema:"Date (YYYY-MM-DD)"`
}

type workoutOutput struct {
	Date    string                  `json:"date"`
	Workout *models.Workout         `json:"workout,omitempty"`
	Details []*models.WorkoutDetail `json:"details"`
}

type rangeInput struct {
	Start string `json:"start" jsonschema:"First date of the range (YYYY-MM-DD)"`
	End   string `json:"end" jsonschema:"Last date of the range (YYYY-MM-DD)"`
}

type daysOutput struct {
	Days []string `json:"days"`
}

type weekInput struct {
	Date string `json:"date,omitempty" jsonschema:"Any date in the week (YYYY-MM-DD), defaults to today"`
}

type weekOutput struct {
	Days []calendar.Day `json:"days"`
}

type bestResultsInput struct {
	ExerciseID int64 `json:"exercise_id" jsonschema:"Catalog exercise ID"`
}

// Tool handlers

func (s *Server) handleGetUser(ctx context.Context, req *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, userOutput, error) {
	u, err := s.repo.GetUser(ctx)
	if err != nil {
		return nil, userOutput{}, fmt.Errorf("failed to get user: %w", err)
	}
	if u == nil {
		return nil, userOutput{}, nil
	}

	out := userOutput{Exists: true, User: u}
	out.BMI, _ = u.BMI()
	out.BMICategory, _ = u.BMICategory()
	out.IdealWeight, _ = u.IdealWeight()
	out.BMR, _ = u.BasalMetabolicRate()
	return nil, out, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, exercisesOutput, error) {
	var group *models.MuscleGroup
	if input.MuscleGroup != "" {
		g := models.MuscleGroup(input.MuscleGroup)
		group = &g
	}

	exercises, err := s.repo.GetExercises(ctx, group)
	if err != nil {
		return nil, exercisesOutput{}, fmt.Errorf("failed to list exercises: %w", err)
	}
	return nil, exercisesOutput{Exercises: exercises, Count: len(exercises)}, nil
}

func (s *Server) handleCreateExercise(ctx context.Context, req *mcp.CallToolRequest, input createExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	e := models.NewExercise(input.Name, models.MuscleGroup(input.MuscleGroup))
	if input.Video != "" {
		e.WithVideo(input.Video)
	}

	id, err := s.repo.CreateExercise(ctx, e)
	if err != nil {
		return nil, exerciseOutput{}, fmt.Errorf("failed to create exercise: %w", err)
	}
	return nil, exerciseOutput{
		ID:      id,
		Message: fmt.Sprintf("Added %s (%s) with ID %d", e.Name, e.MuscleGroup, id),
	}, nil
}

func (s *Server) handleSaveWorkout(ctx context.Context, req *mcp.CallToolRequest, input saveWorkoutInput) (*mcp.CallToolResult, saveWorkoutOutput, error) {
	if _, err := calendar.ParseDate(input.Date); err != nil {
		return nil, saveWorkoutOutput{}, err
	}

	in := models.WorkoutInput{Date: input.Date, Name: input.Name}
	for _, ex := range input.Exercises {
		ei := models.ExerciseInput{ExerciseID: ex.ExerciseID}
		for _, set := range ex.Sets {
			ei.Sets = append(ei.Sets, models.NewSet(set.Reps, set.Weight))
		}
		in.Exercises = append(in.Exercises, ei)
	}

	res, err := s.repo.SaveWorkout(ctx, in)
	if err != nil {
		return nil, saveWorkoutOutput{}, fmt.Errorf("failed to save workout: %w", err)
	}

	msg := fmt.Sprintf("Saved %d sets for %s", res.SetsSaved, input.Date)
	if res.Deleted {
		msg = fmt.Sprintf("Removed workout for %s", input.Date)
	} else if res.SetsSkipped > 0 {
		msg += fmt.Sprintf(" (%d invalid sets skipped)", res.SetsSkipped)
	}
	return nil, saveWorkoutOutput{
		WorkoutID:   res.WorkoutID,
		Deleted:     res.Deleted,
		SetsSaved:   res.SetsSaved,
		SetsSkipped: res.SetsSkipped,
		Message:     msg,
	}, nil
}

func (s *Server) handleGetWorkout(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, workoutOutput, error) {
	workouts, err := s.repo.GetWorkoutsByDate(ctx, input.Date)
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to get workout: %w", err)
	}

	out := workoutOutput{Date: input.Date, Details: []*models.WorkoutDetail{}}
	if len(workouts) == 0 {
		return nil, out, nil
	}

	out.Workout = workouts[0]
	out.Details, err = s.repo.GetWorkoutDetails(ctx, workouts[0].ID)
	if err != nil {
		return nil, workoutOutput{}, fmt.Errorf("failed to get workout details: %w", err)
	}
	return nil, out, nil
}

func (s *Server) handleClearWorkout(ctx context.Context, req *mcp.CallToolRequest, input dateInput) (*mcp.CallToolResult, simpleOutput, error) {
	if _, err := calendar.ParseDate(input.Date); err != nil {
		return nil, simpleOutput{}, err
	}
	if _, err := s.repo.SaveWorkout(ctx, models.WorkoutInput{Date: input.Date}); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to clear workout: %w", err)
	}
	return nil, simpleOutput{Message: fmt.Sprintf("Cleared workout for %s", input.Date)}, nil
}

func (s *Server) handleWorkoutDays(ctx context.Context, req *mcp.CallToolRequest, input rangeInput) (*mcp.CallToolResult, daysOutput, error) {
	days, err := s.repo.GetWorkoutDays(ctx, input.Start, input.End)
	if err != nil {
		return nil, daysOutput{}, fmt.Errorf("failed to get workout days: %w", err)
	}
	return nil, daysOutput{Days: days}, nil
}

func (s *Server) handleWeek(ctx context.Context, req *mcp.CallToolRequest, input weekInput) (*mcp.CallToolResult, weekOutput, error) {
	ref := time.Now()
	if input.Date != "" {
		var err error
		if ref, err = calendar.ParseDate(input.Date); err != nil {
			return nil, weekOutput{}, err
		}
	}

	days, err := s.calendar.Week(ctx, ref)
	if err != nil {
		return nil, weekOutput{}, fmt.Errorf("failed to build week: %w", err)
	}
	return nil, weekOutput{Days: days}, nil
}

func (s *Server) handleBestResults(ctx context.Context, req *mcp.CallToolRequest, input bestResultsInput) (*mcp.CallToolResult, progress.History, error) {
	h, err := s.analyzer.History(ctx, input.ExerciseID)
	if err != nil {
		return nil, progress.History{}, fmt.Errorf("failed to get best results: %w", err)
	}
	return nil, *h, nil
}

func (s *Server) handleRepair(ctx context.Context, req *mcp.CallToolRequest, _ emptyInput) (*mcp.CallToolResult, models.RepairResult, error) {
	res, err := s.repo.CleanupDuplicateWorkoutDetails(ctx)
	if err != nil {
		return nil, models.RepairResult{}, fmt.Errorf("failed to repair: %w", err)
	}
	return nil, *res, nil
}
