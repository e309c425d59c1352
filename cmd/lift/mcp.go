// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio MCP server over the local store.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/lift/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout. Logs go to stderr.

CONFIGURATION:

  {
    "mcpServers": {
      "lift": {
        "command": "lift",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  get_user          Profile with BMI, ideal weight, and BMR
  list_exercises    Exercise catalog, optionally by muscle group
  create_exercise   Add an exercise to the catalog
  save_workout      Replace the workout for a date
  get_workout       Workout and sets for a date
  clear_workout     Remove the workout for a date
  workout_days      Dates with logged sets in a range
  week              Monday-first week with trained days
  best_results      Heaviest set per day with records flagged
  repair            Remove duplicate sets

AVAILABLE RESOURCES:

  lift://catalog    Exercises grouped by muscle group
  lift://week       Current week calendar
  lift://profile    User profile with body metrics`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.Init(cmd.Context()); err != nil {
			return err
		}

		server, err := mcp.NewServer(store)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		logger.Info("mcp server starting", "db", store.Path())
		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
