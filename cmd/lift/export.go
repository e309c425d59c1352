// ABOUTME: CLI commands for exporting and importing the training log.
// ABOUTME: Supports JSON, YAML, and Markdown export; JSON and YAML import.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/lift/internal/calendar"
	"github.com/harperreed/lift/internal/storage"
)

var (
	exportOutput string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export the training log",
	Long: `Export the training log in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable, also importable)
  markdown   One table per training day

OPTIONS:

  --output, -o   Write to file instead of stdout
  --since        Only include days on or after this date (markdown only)

EXAMPLES:

  lift export json -o backup.json
  lift export yaml
  lift export markdown --since 2024-01-01`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var data []byte
		var err error

		switch args[0] {
		case "json":
			data, err = store.ExportJSON(ctx)
		case "yaml":
			data, err = store.ExportYAML(ctx)
		case "markdown", "md":
			if exportSince != "" {
				if _, perr := calendar.ParseDate(exportSince); perr != nil {
					return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
				}
			}
			var md string
			md, err = store.ExportMarkdown(ctx, exportSince)
			data = []byte(md)
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", args[0])
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.GreenString("✓ Exported to %s", exportOutput))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a JSON or YAML export",
	Long: `Import a training log exported with 'lift export json' or 'lift export yaml'.

Exercises are matched by name and muscle group and created when missing.
Each imported day replaces the same day in this store.

EXAMPLES:

  lift import backup.json
  lift import backup.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		raw, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		var res *storage.ImportResult
		switch strings.ToLower(filepath.Ext(filename)) {
		case ".yaml", ".yml":
			res, err = store.ImportYAML(cmd.Context(), raw)
		default:
			res, err = store.ImportJSON(cmd.Context(), raw)
		}
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, color.GreenString("✓ Imported from %s", filename))
		fmt.Fprintf(out, "  %d workouts, %d new exercises", res.WorkoutsImported, res.ExercisesCreated)
		if res.UserImported {
			fmt.Fprint(out, ", profile")
		}
		fmt.Fprintln(out)
		if res.SetsSkipped > 0 {
			fmt.Fprintln(out, color.YellowString("  skipped %d invalid sets", res.SetsSkipped))
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include days since date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
