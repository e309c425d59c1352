// ABOUTME: CLI commands for the exercise catalog.
// ABOUTME: Lists exercises by muscle group and adds custom ones.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lift/internal/models"
)

var (
	exerciseGroup string
	exerciseVideo string
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Browse and extend the exercise catalog",
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercises",
	Long: `List the exercise catalog ordered by name.

Each line shows: ID  GROUP  NAME

The ID is what 'lift workout save --set ID:REPSxWEIGHT' expects.

EXAMPLES:

  lift exercise list
  lift exercise list --group pull`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var group *models.MuscleGroup
		if exerciseGroup != "" {
			if !models.IsValidMuscleGroup(exerciseGroup) {
				return fmt.Errorf("unknown muscle group: %s (use push, pull, or legs)", exerciseGroup)
			}
			g := models.MuscleGroup(exerciseGroup)
			group = &g
		}

		exercises, err := store.GetExercises(cmd.Context(), group)
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(exercises) == 0 {
			fmt.Fprintln(out, "No exercises found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range exercises {
			fmt.Fprintf(out, "%s  %s  %s\n",
				faint.Sprintf("%3d", e.ID),
				padRight(string(e.MuscleGroup), 4),
				e.Name)
		}
		return nil
	},
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a custom exercise",
	Long: `Add an exercise to the catalog.

EXAMPLES:

  lift exercise add "Hip thrust" --group legs
  lift exercise add "Arnold press" --group push --video https://youtu.be/...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !models.IsValidMuscleGroup(exerciseGroup) {
			return fmt.Errorf("--group is required: push, pull, or legs")
		}

		e := models.NewExercise(args[0], models.MuscleGroup(exerciseGroup))
		if exerciseVideo != "" {
			e.WithVideo(exerciseVideo)
		}

		id, err := store.CreateExercise(cmd.Context(), e)
		if err != nil {
			return fmt.Errorf("failed to add exercise: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Added %s", e.Name))
		fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", color.New(color.Faint).Sprintf("id %d", id), e.MuscleGroup)
		return nil
	},
}

// padRight pads a string to the given width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func init() {
	exerciseListCmd.Flags().StringVarP(&exerciseGroup, "group", "g", "", "filter by muscle group")
	exerciseAddCmd.Flags().StringVarP(&exerciseGroup, "group", "g", "", "muscle group: push, pull, or legs")
	exerciseAddCmd.Flags().StringVar(&exerciseVideo, "video", "", "demonstration video URL")

	exerciseCmd.AddCommand(exerciseListCmd, exerciseAddCmd)
	rootCmd.AddCommand(exerciseCmd)
}
