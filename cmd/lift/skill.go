// ABOUTME: Installs the lift skill for Claude Code.
// ABOUTME: Embeds the skill definition and writes it to ~/.claude/skills/lift/.
package main

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

//go:embed skill/SKILL.md
var skillFS embed.FS

var skillSkipConfirm bool

var installSkillCmd = &cobra.Command{
	Use:   "install-skill",
	Short: "Install Claude Code skill",
	Long: `Install the lift skill for Claude Code.

This copies the skill definition to ~/.claude/skills/lift/
so Claude Code can log workouts with lift commands.`,
	Args: cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		return installSkill(home, cmd.InOrStdin(), cmd.OutOrStdout(), skillSkipConfirm)
	},
}

// skillPath returns where the skill file is installed under home.
func skillPath(home string) string {
	return filepath.Join(home, ".claude", "skills", "lift", "SKILL.md")
}

func installSkill(home string, in io.Reader, out io.Writer, skipConfirm bool) error {
	dest := skillPath(home)

	fmt.Fprintln(out, "This installs the lift skill so Claude Code can:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "  • Log workouts by date")
	fmt.Fprintln(out, "  • Look up exercises in the catalog")
	fmt.Fprintln(out, "  • Show personal records and training calendars")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Destination:\n  %s\n\n", dest)

	if _, err := os.Stat(dest); err == nil {
		fmt.Fprintln(out, "Note: A skill file already exists and will be overwritten.")
		fmt.Fprintln(out)
	}

	if !skipConfirm {
		fmt.Fprint(out, "Install the lift skill? [y/N] ")
		response, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("failed to read response: %w", err)
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(out, "Installation canceled.")
			return nil
		}
	}

	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		return fmt.Errorf("failed to read embedded skill: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0750); err != nil {
		return fmt.Errorf("failed to create skill directory: %w", err)
	}
	if err := os.WriteFile(dest, content, 0600); err != nil {
		return fmt.Errorf("failed to write skill file: %w", err)
	}

	fmt.Fprintln(out, color.GreenString("✓ Installed lift skill"))
	return nil
}

func init() {
	installSkillCmd.Flags().BoolVarP(&skillSkipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(installSkillCmd)
}
