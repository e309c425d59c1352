// ABOUTME: Maintenance routine for duplicate workout sets.
// ABOUTME: Keeps the newest row of each (workout, exercise, set) group.
package storage

import (
	"context"

	"github.com/harperreed/lift/internal/models"
)

type duplicateGroup struct {
	workoutID  int64
	exerciseID int64
	setIndex   int
	count      int
	keepID     int64
}

// CleanupDuplicateWorkoutDetails collapses every group of sets that share a
// workout, exercise, and set index down to the row with the highest id.
// Running it again right after is a no-op.
func (d *DB) CleanupDuplicateWorkoutDetails(ctx context.Context) (*models.RepairResult, error) {
	db, ctx, err := d.conn(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, d.txErr("begin repair", err)
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, `
		SELECT workout_id, exercise_id, set_index, COUNT(*), MAX(id)
		FROM workout_details
		GROUP BY workout_id, exercise_id, set_index
		HAVING COUNT(*) > 1
	`)
	if err != nil {
		return nil, d.txErr("find duplicate sets", err)
	}

	var groups []duplicateGroup
	for rows.Next() {
		var g duplicateGroup
		if err := rows.Scan(&g.workoutID, &g.exerciseID, &g.setIndex, &g.count, &g.keepID); err != nil {
			rows.Close()
			return nil, d.txErr("scan duplicate sets", err)
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, d.txErr("find duplicate sets", err)
	}
	rows.Close()

	res := &models.RepairResult{Groups: len(groups)}
	for _, g := range groups {
		result, err := tx.ExecContext(ctx, `
			DELETE FROM workout_details
			WHERE workout_id = ? AND exercise_id = ? AND set_index = ? AND id < ?
		`, g.workoutID, g.exerciseID, g.setIndex, g.keepID)
		if err != nil {
			return nil, d.txErr("delete duplicate sets", err, "workout_id", g.workoutID, "exercise_id", g.exerciseID)
		}
		n, err := result.RowsAffected()
		if err != nil {
			return nil, d.txErr("delete duplicate sets", err)
		}
		res.Removed += n
		d.logger.Info("collapsed duplicate set", "workout_id", g.workoutID,
			"exercise_id", g.exerciseID, "set", g.setIndex, "kept", g.keepID, "removed", n)
	}

	if err := tx.Commit(); err != nil {
		return nil, d.txErr("commit repair", err)
	}

	if res.Groups > 0 {
		d.logger.Warn("repaired duplicate sets", "groups", res.Groups, "removed", res.Removed)
	}
	return res, nil
}
