// ABOUTME: Workout save transaction and workout reads.
// ABOUTME: A save replaces the whole day: details are deleted and reinserted.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harperreed/lift/internal/models"
)

// SaveWorkout stores the complete state of one day's workout, replacing
// whatever was stored for that date, in a single transaction.
//
// Sets whose reps or weight are not positive are skipped rather than failing
// the save; SaveResult.SetsSkipped counts them. Kept sets are numbered 1..N
// in input order with no gaps, so a skipped set does not consume a number
// and later sets are not numbered by input position. Repeated entries
// for one exercise are merged in first-seen order before numbering.
// Exercises with no sets are dropped from the day. An input with no
// exercises at all removes the day's workout, and the result has Deleted set.
func (d *DB) SaveWorkout(ctx context.Context, in models.WorkoutInput) (*models.SaveResult, error) {
	if in.Date == "" {
		return nil, fmt.Errorf("workout date is required: %w", ErrInvalidInput)
	}
	name := in.Name
	if name == "" {
		name = models.DefaultWorkoutName(in.Date)
	}

	db, ctx, err := d.conn(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, d.txErr("begin save workout", err, "date", in.Date)
	}
	defer func() { _ = tx.Rollback() }()

	res := &models.SaveResult{}

	workoutID, found, err := firstWorkoutForDate(ctx, tx, in.Date)
	if err != nil {
		return nil, d.txErr("find workout", err, "date", in.Date)
	}

	if found {
		if err := clearDetails(ctx, tx, workoutID); err != nil {
			return nil, d.txErr("clear workout details", err, "date", in.Date, "workout_id", workoutID)
		}
	}

	if len(in.Exercises) == 0 {
		if found {
			if err := deleteWorkoutsForDate(ctx, tx, in.Date); err != nil {
				return nil, d.txErr("delete workout", err, "date", in.Date, "workout_id", workoutID)
			}
		}
		if err := tx.Commit(); err != nil {
			return nil, d.txErr("commit save workout", err, "date", in.Date)
		}
		res.Deleted = true
		d.logger.Info("workout removed", "date", in.Date, "existed", found)
		return res, nil
	}

	if found {
		if _, err := tx.ExecContext(ctx, `UPDATE workouts SET name = ? WHERE id = ?`, name, workoutID); err != nil {
			return nil, d.txErr("rename workout", err, "date", in.Date, "workout_id", workoutID)
		}
	} else {
		result, err := tx.ExecContext(ctx, `INSERT INTO workouts (date, name) VALUES (?, ?)`, in.Date, name)
		if err != nil {
			return nil, d.txErr("insert workout", err, "date", in.Date)
		}
		if workoutID, err = result.LastInsertId(); err != nil {
			return nil, d.txErr("insert workout", err, "date", in.Date)
		}
	}
	res.WorkoutID = workoutID

	for _, ex := range mergeExercises(in.Exercises) {
		setIndex := 0
		for i, set := range ex.Sets {
			reps, weight, ok := set.Parse()
			if !ok {
				res.SetsSkipped++
				d.logger.Warn("skipping invalid set",
					"date", in.Date, "exercise_id", ex.ExerciseID, "position", i+1,
					"reps", set.Reps, "weight", set.Weight)
				continue
			}
			setIndex++

			stale, err := tx.ExecContext(ctx, `
				DELETE FROM workout_details
				WHERE workout_id = ? AND exercise_id = ? AND set_index = ?
			`, workoutID, ex.ExerciseID, setIndex)
			if err != nil {
				return nil, d.txErr("delete stale set", err, "workout_id", workoutID, "exercise_id", ex.ExerciseID)
			}
			if n, _ := stale.RowsAffected(); n > 0 {
				d.logger.Warn("removed leftover set", "workout_id", workoutID,
					"exercise_id", ex.ExerciseID, "set", setIndex, "rows", n)
			}

			if _, err := tx.ExecContext(ctx, `
				INSERT INTO workout_details (workout_id, exercise_id, set_index, reps, weight)
				VALUES (?, ?, ?, ?, ?)
			`, workoutID, ex.ExerciseID, setIndex, reps, weight); err != nil {
				return nil, d.txErr("insert set", err, "workout_id", workoutID, "exercise_id", ex.ExerciseID, "set", setIndex)
			}
			res.SetsSaved++
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, d.txErr("commit save workout", err, "date", in.Date)
	}

	d.logger.Debug("workout saved", "date", in.Date, "workout_id", workoutID,
		"sets", res.SetsSaved, "skipped", res.SetsSkipped)
	return res, nil
}

// mergeExercises folds repeated exercise entries into the first one so each
// exercise's sets share one numbering.
func mergeExercises(exercises []models.ExerciseInput) []models.ExerciseInput {
	merged := make([]models.ExerciseInput, 0, len(exercises))
	index := make(map[int64]int, len(exercises))
	for _, ex := range exercises {
		i, seen := index[ex.ExerciseID]
		if !seen {
			index[ex.ExerciseID] = len(merged)
			merged = append(merged, models.ExerciseInput{ExerciseID: ex.ExerciseID})
			i = len(merged) - 1
		}
		merged[i].Sets = append(merged[i].Sets, ex.Sets...)
	}
	return merged
}

// GetWorkoutsByDate returns the workouts stored for date, oldest first.
func (d *DB) GetWorkoutsByDate(ctx context.Context, date string) ([]*models.Workout, error) {
	db, err := d.Conn(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, date, COALESCE(name, '')
		FROM workouts
		WHERE date = ?
		ORDER BY id ASC
	`, date)
	if err != nil {
		d.logger.Error("get workouts by date", "date", date, "err", err)
		return nil, fmt.Errorf("get workouts by date: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// ListWorkouts returns every workout ordered by date.
func (d *DB) ListWorkouts(ctx context.Context) ([]*models.Workout, error) {
	db, err := d.Conn(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id, date, COALESCE(name, '')
		FROM workouts
		ORDER BY date ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}
	defer rows.Close()

	return scanWorkouts(rows)
}

// GetWorkoutDetails returns a workout's sets joined with their exercise,
// ordered by exercise then set. Unknown workouts yield an empty slice.
func (d *DB) GetWorkoutDetails(ctx context.Context, workoutID int64) ([]*models.WorkoutDetail, error) {
	db, err := d.Conn(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT wd.id, wd.workout_id, wd.exercise_id, wd.set_index, wd.reps, wd.weight,
		       e.name, e.muscle_group
		FROM workout_details wd
		JOIN exercises e ON e.id = wd.exercise_id
		WHERE wd.workout_id = ?
		ORDER BY wd.exercise_id ASC, wd.set_index ASC
	`, workoutID)
	if err != nil {
		d.logger.Error("get workout details", "workout_id", workoutID, "err", err)
		return nil, fmt.Errorf("get workout details: %w", err)
	}
	defer rows.Close()

	details := []*models.WorkoutDetail{}
	for rows.Next() {
		var (
			wd    models.WorkoutDetail
			group string
		)
		if err := rows.Scan(&wd.ID, &wd.WorkoutID, &wd.ExerciseID, &wd.SetIndex,
			&wd.Reps, &wd.Weight, &wd.ExerciseName, &group); err != nil {
			return nil, fmt.Errorf("scan workout detail: %w", err)
		}
		wd.MuscleGroup = models.MuscleGroup(group)
		details = append(details, &wd)
	}
	return details, rows.Err()
}

func scanWorkouts(rows *sql.Rows) ([]*models.Workout, error) {
	workouts := []*models.Workout{}
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.Date, &w.Name); err != nil {
			return nil, fmt.Errorf("scan workout: %w", err)
		}
		workouts = append(workouts, &w)
	}
	return workouts, rows.Err()
}

func firstWorkoutForDate(ctx context.Context, tx *sql.Tx, date string) (int64, bool, error) {
	var id int64
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM workouts WHERE date = ? ORDER BY id ASC LIMIT 1`, date).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return id, true, nil
}

// clearDetails deletes a workout's sets and checks that none survived.
func clearDetails(ctx context.Context, tx *sql.Tx, workoutID int64) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM workout_details WHERE workout_id = ?`, workoutID); err != nil {
		return err
	}
	var left int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM workout_details WHERE workout_id = ?`, workoutID).Scan(&left); err != nil {
		return err
	}
	if left != 0 {
		return fmt.Errorf("%d details remain for workout %d after delete", left, workoutID)
	}
	return nil
}

// deleteWorkoutsForDate removes every workout row for date, with their sets,
// and checks that none survived.
func deleteWorkoutsForDate(ctx context.Context, tx *sql.Tx, date string) error {
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM workout_details
		WHERE workout_id IN (SELECT id FROM workouts WHERE date = ?)
	`, date); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM workouts WHERE date = ?`, date); err != nil {
		return err
	}
	var left int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM workouts WHERE date = ?`, date).Scan(&left); err != nil {
		return err
	}
	if left != 0 {
		return fmt.Errorf("%d workouts still present for %s after delete", left, date)
	}
	return nil
}

// txErr logs a failed transactional step and wraps it in ErrTransaction.
func (d *DB) txErr(step string, err error, keyvals ...interface{}) error {
	d.logger.Error(step, append(keyvals, "err", err)...)
	return fmt.Errorf("%s: %w: %w", step, ErrTransaction, err)
}
