// ABOUTME: CLI commands for store maintenance.
// ABOUTME: Duplicate-set repair and full reset of the local database.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetYes bool

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Remove duplicate sets",
	Long: `Scan for sets stored more than once under the same workout, exercise,
and set number, keeping the newest copy of each. Safe to run at any time.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := store.CleanupDuplicateWorkoutDetails(cmd.Context())
		if err != nil {
			return fmt.Errorf("repair failed: %w", err)
		}

		out := cmd.OutOrStdout()
		if res.Removed == 0 {
			fmt.Fprintln(out, color.GreenString("✓ No duplicates found"))
			return nil
		}
		fmt.Fprintln(out, color.GreenString("✓ Removed %d duplicate sets in %d groups", res.Removed, res.Groups))
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the database and start over",
	Long: `Delete the database file and recreate it with the seeded catalog.
All workouts, custom exercises, and the profile are lost.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return fmt.Errorf("refusing to reset without --yes")
		}
		if err := store.Reset(cmd.Context()); err != nil {
			return fmt.Errorf("reset failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("✗ Reset %s", store.Path()))
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "confirm reset")

	rootCmd.AddCommand(repairCmd)
	rootCmd.AddCommand(resetCmd)
}
