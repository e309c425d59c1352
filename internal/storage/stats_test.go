// ABOUTME: Tests for read-side aggregation queries.
// ABOUTME: Workout-day membership and best-result selection.
package storage

import (
	"context"
	"reflect"
	"testing"

	"github.com/harperreed/lift/internal/models"
)

func TestGetWorkoutDays(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	squat := exerciseID(t, db, "Squat")

	for _, date := range []string{"2024-03-01", "2024-03-04", "2024-03-31", "2024-04-01"} {
		mustSave(t, db, models.WorkoutInput{
			Date:      date,
			Exercises: []models.ExerciseInput{{ExerciseID: squat, Sets: sets(5, 100)}},
		})
	}

	days, err := db.GetWorkoutDays(ctx, "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("GetWorkoutDays failed: %v", err)
	}
	want := []string{"2024-03-01", "2024-03-04", "2024-03-31"}
	if !reflect.DeepEqual(days, want) {
		t.Errorf("days = %v, want %v", days, want)
	}
}

func TestGetWorkoutDaysExcludesEmptyShells(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	squat := exerciseID(t, db, "Squat")

	// A non-empty exercise list whose sets are all invalid leaves a workout
	// row with no details.
	res := mustSave(t, db, models.WorkoutInput{
		Date: "2024-03-15",
		Exercises: []models.ExerciseInput{{ExerciseID: squat, Sets: []models.SetInput{
			{Reps: "0", Weight: "0"},
		}}},
	})
	if res.WorkoutID == 0 {
		t.Fatalf("expected a workout row, got %+v", res)
	}

	days, err := db.GetWorkoutDays(ctx, "2024-03-01", "2024-03-31")
	if err != nil {
		t.Fatalf("GetWorkoutDays failed: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("empty workout counted as a workout day: %v", days)
	}
}

func TestGetWorkoutDaysEmptyRange(t *testing.T) {
	db := setupTestDB(t)

	days, err := db.GetWorkoutDays(context.Background(), "2024-01-01", "2024-12-31")
	if err != nil {
		t.Fatalf("GetWorkoutDays failed: %v", err)
	}
	if days == nil || len(days) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", days)
	}
}

func TestGetBestResults(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	bench := exerciseID(t, db, "Bench press")
	dips := exerciseID(t, db, "Dips")

	mustSave(t, db, models.WorkoutInput{
		Date: "2024-03-01",
		Exercises: []models.ExerciseInput{
			{ExerciseID: bench, Sets: sets(8, 60, 5, 70, 10, 50)},
			{ExerciseID: dips, Sets: sets(10, 90)},
		},
	})
	mustSave(t, db, models.WorkoutInput{
		Date:      "2024-03-08",
		Exercises: []models.ExerciseInput{{ExerciseID: bench, Sets: sets(6, 72.5)}},
	})

	results, err := db.GetBestResults(ctx, bench)
	if err != nil {
		t.Fatalf("GetBestResults failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("results = %d, want 2", len(results))
	}
	if results[0].Date != "2024-03-08" || results[0].Weight != 72.5 || results[0].Reps != 6 {
		t.Errorf("newest result = %+v", results[0])
	}
	if results[1].Date != "2024-03-01" || results[1].Weight != 70 || results[1].Reps != 5 {
		t.Errorf("older result = %+v", results[1])
	}
}

func TestGetBestResultsTieBreak(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	dl := exerciseID(t, db, "Deadlift")

	res := mustSave(t, db, models.WorkoutInput{
		Date:      "2024-03-02",
		Exercises: []models.ExerciseInput{{ExerciseID: dl, Sets: sets(5, 140, 3, 140, 8, 120)}},
	})

	results, err := db.GetBestResults(ctx, dl)
	if err != nil {
		t.Fatalf("GetBestResults failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].Reps != 3 || results[0].Weight != 140 {
		t.Errorf("tie resolved to %+v, want the later 3x140 set", results[0])
	}

	details, _ := db.GetWorkoutDetails(ctx, res.WorkoutID)
	if results[0].DetailID != details[1].ID {
		t.Errorf("DetailID = %d, want %d", results[0].DetailID, details[1].ID)
	}
}

func TestGetBestResultsUnknownExercise(t *testing.T) {
	db := setupTestDB(t)

	results, err := db.GetBestResults(context.Background(), 9999)
	if err != nil {
		t.Fatalf("GetBestResults failed: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}
