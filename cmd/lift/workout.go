// ABOUTME: CLI commands for day-level workouts.
// ABOUTME: Save, show, and clear a date's sets, plus per-exercise best results.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lift/internal/calendar"
	"github.com/harperreed/lift/internal/models"
	"github.com/harperreed/lift/internal/progress"
)

var (
	workoutName string
	workoutSets []string
)

var workoutCmd = &cobra.Command{
	Use:     "workout",
	Aliases: []string{"w"},
	Short:   "Log and review workouts",
}

var workoutSaveCmd = &cobra.Command{
	Use:   "save <date>",
	Short: "Save the full workout for a date",
	Long: `Save everything you did on a date. The sets given replace whatever was
stored for that date before. Saving with no --set removes the workout.

SET FORMAT:

  EXERCISE_ID:REPSxWEIGHT     e.g. 19:5x100 or 19:8x62,5

  Repeat --set for each set. Sets of the same exercise keep the order given.
  Sets with zero or unparseable reps or weight are skipped.

EXAMPLES:

  lift workout save 2024-03-04 --set 19:5x100 --set 19:5x105 --set 1:8x60
  lift workout save 2024-03-04 --name "Leg day" --set 19:5x100
  lift workout save 2024-03-04                  # removes the workout`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date := args[0]
		if _, err := calendar.ParseDate(date); err != nil {
			return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", date)
		}

		exercises, err := groupSetSpecs(workoutSets)
		if err != nil {
			return err
		}

		res, err := store.SaveWorkout(cmd.Context(), models.WorkoutInput{
			Date:      date,
			Name:      workoutName,
			Exercises: exercises,
		})
		if err != nil {
			return fmt.Errorf("failed to save workout: %w", err)
		}

		out := cmd.OutOrStdout()
		if res.Deleted {
			fmt.Fprintln(out, color.YellowString("✗ Removed workout for %s", date))
			return nil
		}
		fmt.Fprintln(out, color.GreenString("✓ Saved %d sets for %s", res.SetsSaved, date))
		if res.SetsSkipped > 0 {
			fmt.Fprintln(out, color.YellowString("  skipped %d invalid sets", res.SetsSkipped))
		}
		return nil
	},
}

var workoutShowCmd = &cobra.Command{
	Use:   "show <date>",
	Short: "Show the workout for a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		workouts, err := store.GetWorkoutsByDate(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get workout: %w", err)
		}
		if len(workouts) == 0 {
			fmt.Fprintf(out, "No workout on %s.\n", args[0])
			return nil
		}

		w := workouts[0]
		details, err := store.GetWorkoutDetails(ctx, w.ID)
		if err != nil {
			return fmt.Errorf("failed to get workout details: %w", err)
		}

		fmt.Fprintf(out, "%s  %s\n", color.New(color.Bold).Sprint(w.Name), color.New(color.Faint).Sprint(w.Date))
		var current int64
		for _, d := range details {
			if d.ExerciseID != current {
				current = d.ExerciseID
				fmt.Fprintf(out, "  %s %s\n", d.ExerciseName, color.New(color.Faint).Sprintf("(%s)", d.MuscleGroup))
			}
			fmt.Fprintf(out, "    %d. %d x %s kg\n", d.SetIndex, d.Reps, formatWeight(d.Weight))
		}
		return nil
	},
}

var workoutClearCmd = &cobra.Command{
	Use:   "clear <date>",
	Short: "Remove the workout for a date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := calendar.ParseDate(args[0]); err != nil {
			return fmt.Errorf("invalid date: %s (use YYYY-MM-DD)", args[0])
		}
		if _, err := store.SaveWorkout(cmd.Context(), models.WorkoutInput{Date: args[0]}); err != nil {
			return fmt.Errorf("failed to clear workout: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("✗ Cleared %s", args[0]))
		return nil
	},
}

var workoutBestCmd = &cobra.Command{
	Use:   "best <exercise-id>",
	Short: "Show the heaviest set per day for an exercise",
	Long: `Show the heaviest set of each training day for one exercise, newest
first. Days that beat every earlier day are marked as personal records.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid exercise id: %s", args[0])
		}

		h, err := progress.NewAnalyzer(store).History(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to get best results: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(h.Results) == 0 {
			fmt.Fprintln(out, "No results yet.")
			return nil
		}
		for _, r := range h.Results {
			mark := ""
			if r.IsRecord {
				mark = color.GreenString(" PR")
			}
			fmt.Fprintf(out, "%s  %d x %s kg%s\n", r.Date, r.Reps, formatWeight(r.Weight), mark)
		}
		return nil
	},
}

// parseSetSpec parses EXERCISE_ID:REPSxWEIGHT. Reps and weight are passed
// through as typed so the store decides which sets are valid.
func parseSetSpec(spec string) (int64, models.SetInput, error) {
	ref, set, ok := strings.Cut(strings.TrimSpace(spec), ":")
	if !ok {
		return 0, models.SetInput{}, fmt.Errorf("invalid set %q (use EXERCISE_ID:REPSxWEIGHT)", spec)
	}

	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil || id <= 0 {
		return 0, models.SetInput{}, fmt.Errorf("invalid exercise id in set %q", spec)
	}

	reps, weight, ok := strings.Cut(strings.ToLower(set), "x")
	if !ok {
		return 0, models.SetInput{}, fmt.Errorf("invalid set %q (use EXERCISE_ID:REPSxWEIGHT)", spec)
	}
	return id, models.SetInput{Reps: strings.TrimSpace(reps), Weight: strings.TrimSpace(weight)}, nil
}

// groupSetSpecs groups sets by exercise in first-seen order.
func groupSetSpecs(specs []string) ([]models.ExerciseInput, error) {
	var exercises []models.ExerciseInput
	index := make(map[int64]int)

	for _, spec := range specs {
		id, set, err := parseSetSpec(spec)
		if err != nil {
			return nil, err
		}
		i, seen := index[id]
		if !seen {
			i = len(exercises)
			index[id] = i
			exercises = append(exercises, models.ExerciseInput{ExerciseID: id})
		}
		exercises[i].Sets = append(exercises[i].Sets, set)
	}
	return exercises, nil
}

func formatWeight(w float64) string {
	return strconv.FormatFloat(w, 'f', -1, 64)
}

func init() {
	workoutSaveCmd.Flags().StringVarP(&workoutName, "name", "n", "", "workout name (default: Workout <date>)")
	workoutSaveCmd.Flags().StringArrayVarP(&workoutSets, "set", "s", nil, "set as EXERCISE_ID:REPSxWEIGHT (repeatable)")

	workoutCmd.AddCommand(workoutSaveCmd, workoutShowCmd, workoutClearCmd, workoutBestCmd)
	rootCmd.AddCommand(workoutCmd)
}
