// ABOUTME: Integration tests for the lift CLI binary.
// ABOUTME: Builds cmd/lift and drives a full logging workflow against a temp database.
package test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func TestFullWorkflow(t *testing.T) {
	// Build the binary
	projectRoot, _ := filepath.Abs("..")
	liftBinary := filepath.Join(t.TempDir(), "lift")

	buildCmd := exec.Command("go", "build", "-o", liftBinary, "./cmd/lift")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build: %v\n%s", err, output)
	}

	// Use temp database and config
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")
	env := append(os.Environ(), "XDG_CONFIG_HOME="+filepath.Join(tmpDir, "config"), "NO_COLOR=1")

	run := func(args ...string) (string, error) {
		fullArgs := append([]string{"--db", dbPath}, args...)
		cmd := exec.Command(liftBinary, fullArgs...)
		cmd.Env = env
		output, err := cmd.CombinedOutput()
		return string(output), err
	}

	// Create the profile
	output, err := run("user", "create", "Ana", "--weight", "70", "--height", "175")
	if err != nil {
		t.Fatalf("Failed to create user: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Created profile for Ana") {
		t.Errorf("Expected 'Created profile for Ana' in output, got: %s", output)
	}

	// Add a custom exercise and find its id in the catalog
	output, err = run("exercise", "add", "Hip thrust", "--group", "legs")
	if err != nil {
		t.Fatalf("Failed to add exercise: %v\n%s", err, output)
	}
	output, err = run("exercise", "list", "--group", "legs")
	if err != nil {
		t.Fatalf("Failed to list exercises: %v\n%s", err, output)
	}
	var hipID string
	for _, line := range strings.Split(output, "\n") {
		if strings.HasSuffix(strings.TrimSpace(line), "Hip thrust") {
			hipID = strings.Fields(line)[0]
		}
	}
	if hipID == "" {
		t.Fatalf("Hip thrust not listed:\n%s", output)
	}

	// Log a day
	output, err = run("workout", "save", "2024-03-04", "--set", hipID+":10x80", "--set", hipID+":8x90")
	if err != nil {
		t.Fatalf("Failed to save workout: %v\n%s", err, output)
	}
	if !strings.Contains(output, "Saved 2 sets") {
		t.Errorf("Expected 'Saved 2 sets' in output, got: %s", output)
	}

	// Saving again replaces the day
	output, err = run("workout", "save", "2024-03-04", "--set", hipID+":12x70")
	if err != nil {
		t.Fatalf("Failed to resave workout: %v\n%s", err, output)
	}
	output, err = run("workout", "show", "2024-03-04")
	if err != nil {
		t.Fatalf("Failed to show workout: %v\n%s", err, output)
	}
	if !strings.Contains(output, "12 x 70 kg") || strings.Contains(output, "10 x 80 kg") {
		t.Errorf("Expected only the replacement set, got: %s", output)
	}

	// Calendar shows the day
	output, err = run("calendar", "week", "--date", "2024-03-04")
	if err != nil {
		t.Fatalf("Failed to show week: %v\n%s", err, output)
	}
	if !strings.Contains(output, "2024-03-04  trained") {
		t.Errorf("Expected trained Monday in week, got: %s", output)
	}

	// Export as JSON
	output, err = run("export", "json")
	if err != nil {
		t.Fatalf("Failed to export: %v\n%s", err, output)
	}
	if !strings.Contains(output, `"tool": "lift"`) {
		t.Errorf("Expected lift export header, got: %s", output)
	}
}
