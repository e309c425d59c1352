// ABOUTME: Shared helpers for storage tests.
// ABOUTME: Temp databases, catalog lookups, and quick workout builders.
package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/harperreed/lift/internal/logging"
	"github.com/harperreed/lift/internal/models"
)

// setupTestDB creates a bootstrapped test database in a temp directory.
func setupTestDB(t *testing.T) *DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "lift.db")
	db, err := Open(dbPath, WithLogger(logging.Discard()))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// exerciseID returns the id of a catalog exercise by name.
func exerciseID(t *testing.T, db *DB, name string) int64 {
	t.Helper()

	exercises, err := db.GetExercises(context.Background(), nil)
	if err != nil {
		t.Fatalf("GetExercises failed: %v", err)
	}
	for _, e := range exercises {
		if e.Name == name {
			return e.ID
		}
	}
	t.Fatalf("exercise %q not in catalog", name)
	return 0
}

// sets builds valid SetInputs from reps/weight pairs.
func sets(pairs ...float64) []models.SetInput {
	var out []models.SetInput
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, models.NewSet(int(pairs[i]), pairs[i+1]))
	}
	return out
}

// mustSave saves a workout and fails the test on error.
func mustSave(t *testing.T, db *DB, in models.WorkoutInput) *models.SaveResult {
	t.Helper()

	res, err := db.SaveWorkout(context.Background(), in)
	if err != nil {
		t.Fatalf("SaveWorkout(%s) failed: %v", in.Date, err)
	}
	return res
}

// countRows returns the row count of a table.
func countRows(t *testing.T, db *DB, table string) int {
	t.Helper()

	conn, err := db.Conn(context.Background())
	if err != nil {
		t.Fatalf("Conn failed: %v", err)
	}
	var n int
	if err := conn.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s failed: %v", table, err)
	}
	return n
}

// insertDetailRaw writes a set without any of SaveWorkout's checks.
// Tests use it to reproduce data left behind by older writers.
func (d *DB) insertDetailRaw(ctx context.Context, workoutID, exerciseID int64, setIndex, reps int, weight float64) (int64, error) {
	db, err := d.Conn(ctx)
	if err != nil {
		return 0, err
	}
	result, err := db.ExecContext(ctx, `
		INSERT INTO workout_details (workout_id, exercise_id, set_index, reps, weight)
		VALUES (?, ?, ?, ?, ?)
	`, workoutID, exerciseID, setIndex, reps, weight)
	if err != nil {
		return 0, fmt.Errorf("insert detail: %w", err)
	}
	return result.LastInsertId()
}
