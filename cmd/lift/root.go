// ABOUTME: Root Cobra command for the lift CLI.
// ABOUTME: Loads config, builds the logger, and owns the store lifecycle.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/harperreed/lift/internal/config"
	"github.com/harperreed/lift/internal/logging"
	"github.com/harperreed/lift/internal/storage"
)

var (
	dbPath   string
	logLevel string

	store  *storage.DB
	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "lift",
	Short: "Strength training log",
	Long: `Lift is a CLI for logging strength workouts into a local SQLite store.

WHAT IT TRACKS:

  Profile     name, weight, height, age, sex (one user per store)
  Catalog     exercises grouped as push, pull, or legs
  Workouts    one workout per date, each a list of sets (reps x weight)

QUICK START:

  $ lift user create "Ana" --weight 70 --height 175
  $ lift exercise list --group legs
  $ lift workout save 2024-03-04 --set 19:5x100 --set 19:5x105
  $ lift workout show 2024-03-04
  $ lift calendar week

MCP INTEGRATION:

  Run 'lift mcp' to start the Model Context Protocol server:

  {
    "mcpServers": {
      "lift": { "command": "lift", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  The database lives at ~/.local/share/lift/lift.db (or $XDG_DATA_HOME/lift).
  Override with --db or data_dir in ~/.config/lift/config.json.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.GetLogLevel()
		if logLevel != "" {
			level = logLevel
		}
		logger, err = logging.New(os.Stderr, level, "lift")
		if err != nil {
			return err
		}

		if dbPath != "" {
			store = storage.New(config.ExpandPath(dbPath), storage.WithLogger(logger))
		} else {
			store = cfg.OpenStorage(logger)
		}
		logger.Debug("using database", "path", store.Path())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			err := store.Close()
			store = nil
			return err
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file (default: ~/.local/share/lift/lift.db)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}
