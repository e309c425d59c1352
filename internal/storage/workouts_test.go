// ABOUTME: Tests for the workout save transaction and workout reads.
// ABOUTME: Replace semantics, empty-save deletion, set numbering, and rollback.
package storage

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/harperreed/lift/internal/logging"
	"github.com/harperreed/lift/internal/models"
)

func TestSaveWorkoutCreates(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	bench := exerciseID(t, db, "Bench press")

	res := mustSave(t, db, models.WorkoutInput{
		Date:      "2024-03-04",
		Name:      "Push day",
		Exercises: []models.ExerciseInput{{ExerciseID: bench, Sets: sets(8, 60, 6, 70, 4, 80)}},
	})
	if res.WorkoutID == 0 || res.Deleted {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.SetsSaved != 3 || res.SetsSkipped != 0 {
		t.Errorf("saved=%d skipped=%d, want 3/0", res.SetsSaved, res.SetsSkipped)
	}

	workouts, err := db.GetWorkoutsByDate(ctx, "2024-03-04")
	if err != nil {
		t.Fatalf("GetWorkoutsByDate failed: %v", err)
	}
	if len(workouts) != 1 {
		t.Fatalf("workouts = %d, want 1", len(workouts))
	}
	if workouts[0].Name != "Push day" || workouts[0].ID != res.WorkoutID {
		t.Errorf("unexpected workout %+v", workouts[0])
	}

	details, err := db.GetWorkoutDetails(ctx, res.WorkoutID)
	if err != nil {
		t.Fatalf("GetWorkoutDetails failed: %v", err)
	}
	if len(details) != 3 {
		t.Fatalf("details = %d, want 3", len(details))
	}
	for i, d := range details {
		if d.SetIndex != i+1 {
			t.Errorf("detail %d has set index %d", i, d.SetIndex)
		}
		if d.ExerciseName != "Bench press" || d.MuscleGroup != models.MuscleGroupPush {
			t.Errorf("detail %d not joined with exercise: %+v", i, d)
		}
	}
	if details[2].Reps != 4 || details[2].Weight != 80 {
		t.Errorf("third set = %dx%v, want 4x80", details[2].Reps, details[2].Weight)
	}
}

func TestSaveWorkoutDefaultName(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	mustSave(t, db, models.WorkoutInput{
		Date:      "2024-03-05",
		Exercises: []models.ExerciseInput{{ExerciseID: exerciseID(t, db, "Squat"), Sets: sets(5, 100)}},
	})

	workouts, _ := db.GetWorkoutsByDate(ctx, "2024-03-05")
	if len(workouts) != 1 || workouts[0].Name != "Workout 2024-03-05" {
		t.Errorf("unexpected workouts %+v", workouts)
	}
}

func TestSaveWorkoutReplacesNotMerges(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	a := exerciseID(t, db, "Bench press")
	b := exerciseID(t, db, "Dips")

	first := mustSave(t, db, models.WorkoutInput{
		Date: "2024-03-04",
		Exercises: []models.ExerciseInput{
			{ExerciseID: a, Sets: sets(8, 60, 8, 60, 8, 60)},
			{ExerciseID: b, Sets: sets(10, 10, 10, 10)},
		},
	})

	second := mustSave(t, db, models.WorkoutInput{
		Date:      "2024-03-04",
		Name:      "Renamed",
		Exercises: []models.ExerciseInput{{ExerciseID: a, Sets: sets(5, 80)}},
	})

	if second.WorkoutID != first.WorkoutID {
		t.Errorf("workout identity not reused: %d vs %d", second.WorkoutID, first.WorkoutID)
	}

	details, _ := db.GetWorkoutDetails(ctx, first.WorkoutID)
	if len(details) != 1 {
		t.Fatalf("details = %d, want 1", len(details))
	}
	if details[0].ExerciseID != a || details[0].Reps != 5 || details[0].Weight != 80 {
		t.Errorf("unexpected detail %+v", details[0])
	}

	workouts, _ := db.GetWorkoutsByDate(ctx, "2024-03-04")
	if len(workouts) != 1 || workouts[0].Name != "Renamed" {
		t.Errorf("unexpected workouts %+v", workouts)
	}
}

func TestSaveWorkoutEmptyDeletes(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	mustSave(t, db, models.WorkoutInput{
		Date:      "2024-03-04",
		Exercises: []models.ExerciseInput{{ExerciseID: exerciseID(t, db, "Squat"), Sets: sets(5, 100)}},
	})

	res := mustSave(t, db, models.WorkoutInput{Date: "2024-03-04"})
	if !res.Deleted || res.WorkoutID != 0 {
		t.Errorf("expected deletion result, got %+v", res)
	}

	workouts, err := db.GetWorkoutsByDate(ctx, "2024-03-04")
	if err != nil {
		t.Fatalf("GetWorkoutsByDate failed: %v", err)
	}
	if len(workouts) != 0 {
		t.Errorf("workouts = %d, want 0", len(workouts))
	}
	if n := countRows(t, db, "workout_details"); n != 0 {
		t.Errorf("details = %d, want 0", n)
	}
}

func TestSaveWorkoutEmptyWithoutExistingIsNoop(t *testing.T) {
	db := setupTestDB(t)

	res := mustSave(t, db, models.WorkoutInput{Date: "2024-03-04"})
	if !res.Deleted {
		t.Errorf("expected Deleted for empty save, got %+v", res)
	}
	if n := countRows(t, db, "workouts"); n != 0 {
		t.Errorf("workouts = %d, want 0", n)
	}
}

func TestSaveWorkoutEmptyRemovesLegacyDuplicates(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	conn, _ := db.Conn(ctx)

	for i := 0; i < 2; i++ {
		if _, err := conn.Exec(`INSERT INTO workouts (date, name) VALUES ('2024-01-01', 'dup')`); err != nil {
			t.Fatalf("insert workout: %v", err)
		}
	}

	mustSave(t, db, models.WorkoutInput{Date: "2024-01-01"})

	workouts, _ := db.GetWorkoutsByDate(ctx, "2024-01-01")
	if len(workouts) != 0 {
		t.Errorf("workouts = %d, want 0", len(workouts))
	}
}

func TestSaveWorkoutExerciseWithoutSetsIsDropped(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	a := exerciseID(t, db, "Pull-up")
	b := exerciseID(t, db, "Face pull")

	res := mustSave(t, db, models.WorkoutInput{
		Date: "2024-03-06",
		Exercises: []models.ExerciseInput{
			{ExerciseID: a, Sets: sets(8, 5)},
			{ExerciseID: b},
		},
	})

	details, _ := db.GetWorkoutDetails(ctx, res.WorkoutID)
	if len(details) != 1 || details[0].ExerciseID != a {
		t.Errorf("unexpected details %+v", details)
	}
}

func TestSaveWorkoutSetIndicesContiguous(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	row := exerciseID(t, db, "Barbell row")

	res := mustSave(t, db, models.WorkoutInput{
		Date: "2024-03-07",
		Exercises: []models.ExerciseInput{{ExerciseID: row, Sets: []models.SetInput{
			{Reps: "10", Weight: "50"},
			{Reps: "0", Weight: "50"},
			{Reps: "8", Weight: "55"},
			{Reps: "6", Weight: "60"},
		}}},
	})

	details, _ := db.GetWorkoutDetails(ctx, res.WorkoutID)
	if len(details) != 3 {
		t.Fatalf("details = %d, want 3", len(details))
	}
	for i, d := range details {
		if d.SetIndex != i+1 {
			t.Errorf("detail %d has set index %d, want %d", i, d.SetIndex, i+1)
		}
	}
	if details[1].Reps != 8 {
		t.Errorf("second kept set reps = %d, want 8", details[1].Reps)
	}
}

func TestSaveWorkoutMergesRepeatedExercise(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	squat := exerciseID(t, db, "Squat")
	bench := exerciseID(t, db, "Bench press")

	res := mustSave(t, db, models.WorkoutInput{
		Date: "2024-01-03",
		Exercises: []models.ExerciseInput{
			{ExerciseID: squat, Sets: sets(5, 100, 5, 105)},
			{ExerciseID: bench, Sets: sets(8, 60)},
			{ExerciseID: squat, Sets: sets(3, 120)},
		},
	})
	if res.SetsSaved != 4 {
		t.Errorf("sets saved = %d, want 4", res.SetsSaved)
	}
	if n := countRows(t, db, "workout_details"); n != res.SetsSaved {
		t.Errorf("stored rows = %d, reported saved = %d", n, res.SetsSaved)
	}

	details, err := db.GetWorkoutDetails(ctx, res.WorkoutID)
	if err != nil {
		t.Fatalf("GetWorkoutDetails failed: %v", err)
	}
	var squatSets []*models.WorkoutDetail
	for _, d := range details {
		if d.ExerciseID == squat {
			squatSets = append(squatSets, d)
		}
	}
	wantWeights := []float64{100, 105, 120}
	if len(squatSets) != len(wantWeights) {
		t.Fatalf("squat sets = %d, want %d", len(squatSets), len(wantWeights))
	}
	for i, d := range squatSets {
		if d.SetIndex != i+1 || d.Weight != wantWeights[i] {
			t.Errorf("squat set %d = index %d weight %v, want index %d weight %v",
				i, d.SetIndex, d.Weight, i+1, wantWeights[i])
		}
	}
}

func TestSaveWorkoutSkipsInvalidSets(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	logger, _ := logging.New(&buf, "warn", "storage")
	db := setupTestDB(t)
	WithLogger(logger)(db)

	lunge := exerciseID(t, db, "Lunge")
	res := mustSave(t, db, models.WorkoutInput{
		Date: "2024-03-08",
		Exercises: []models.ExerciseInput{{ExerciseID: lunge, Sets: []models.SetInput{
			{Reps: "12", Weight: "20"},
			{Reps: "0", Weight: "20"},
			{Reps: "12", Weight: "-5"},
			{Reps: "10", Weight: "22,5"},
		}}},
	})

	if res.SetsSaved != 2 || res.SetsSkipped != 2 {
		t.Errorf("saved=%d skipped=%d, want 2/2", res.SetsSaved, res.SetsSkipped)
	}
	details, _ := db.GetWorkoutDetails(ctx, res.WorkoutID)
	if len(details) != 2 {
		t.Fatalf("details = %d, want 2", len(details))
	}
	for _, d := range details {
		if d.Reps <= 0 || d.Weight <= 0 {
			t.Errorf("invalid set persisted: %+v", d)
		}
	}
	if details[1].Weight != 22.5 {
		t.Errorf("comma weight = %v, want 22.5", details[1].Weight)
	}
	if !strings.Contains(buf.String(), "skipping invalid set") {
		t.Errorf("expected skip to be logged, got %q", buf.String())
	}
}

func TestSaveWorkoutRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	squat := exerciseID(t, db, "Squat")

	first := mustSave(t, db, models.WorkoutInput{
		Date:      "2024-03-09",
		Name:      "Original",
		Exercises: []models.ExerciseInput{{ExerciseID: squat, Sets: sets(5, 100, 5, 100)}},
	})

	_, err := db.SaveWorkout(ctx, models.WorkoutInput{
		Date: "2024-03-09",
		Name: "Broken",
		Exercises: []models.ExerciseInput{
			{ExerciseID: squat, Sets: sets(1, 120)},
			{ExerciseID: 99999, Sets: sets(1, 1)},
		},
	})
	if !errors.Is(err, ErrTransaction) {
		t.Fatalf("expected ErrTransaction, got %v", err)
	}

	workouts, _ := db.GetWorkoutsByDate(ctx, "2024-03-09")
	if len(workouts) != 1 || workouts[0].Name != "Original" {
		t.Errorf("workout changed after rollback: %+v", workouts)
	}
	details, _ := db.GetWorkoutDetails(ctx, first.WorkoutID)
	if len(details) != 2 || details[0].Weight != 100 {
		t.Errorf("details changed after rollback: %+v", details)
	}
}

func TestSaveWorkoutRequiresDate(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.SaveWorkout(context.Background(), models.WorkoutInput{}); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSaveWorkoutDatesAreIndependent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	squat := exerciseID(t, db, "Squat")

	mustSave(t, db, models.WorkoutInput{Date: "2024-03-10", Exercises: []models.ExerciseInput{{ExerciseID: squat, Sets: sets(5, 100)}}})
	mustSave(t, db, models.WorkoutInput{Date: "2024-03-11", Exercises: []models.ExerciseInput{{ExerciseID: squat, Sets: sets(5, 105)}}})
	mustSave(t, db, models.WorkoutInput{Date: "2024-03-10"})

	if w, _ := db.GetWorkoutsByDate(ctx, "2024-03-11"); len(w) != 1 {
		t.Errorf("other date affected: %+v", w)
	}
}

func TestGetWorkoutDetailsOrdering(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	squat := exerciseID(t, db, "Squat")
	curl := exerciseID(t, db, "Leg curl")

	// Submit the higher id first to check ordering is by exercise id.
	first, second := squat, curl
	if first < second {
		first, second = second, first
	}
	res := mustSave(t, db, models.WorkoutInput{
		Date: "2024-03-12",
		Exercises: []models.ExerciseInput{
			{ExerciseID: first, Sets: sets(10, 30, 10, 30)},
			{ExerciseID: second, Sets: sets(5, 100, 5, 100)},
		},
	})

	details, _ := db.GetWorkoutDetails(ctx, res.WorkoutID)
	if len(details) != 4 {
		t.Fatalf("details = %d, want 4", len(details))
	}
	if details[0].ExerciseID != second || details[2].ExerciseID != first {
		t.Errorf("details not ordered by exercise id: %+v", details)
	}
	if details[0].SetIndex != 1 || details[1].SetIndex != 2 {
		t.Errorf("details not ordered by set index")
	}
}

func TestGetWorkoutDetailsUnknown(t *testing.T) {
	db := setupTestDB(t)

	details, err := db.GetWorkoutDetails(context.Background(), 424242)
	if err != nil {
		t.Fatalf("GetWorkoutDetails failed: %v", err)
	}
	if len(details) != 0 {
		t.Errorf("expected empty, got %d", len(details))
	}
}
