// ABOUTME: Read-side aggregation over workout history.
// ABOUTME: Dates with workouts in a range, and best set per exercise per day.
package storage

import (
	"context"
	"fmt"

	"github.com/harperreed/lift/internal/models"
)

// GetWorkoutDays returns the distinct dates in [start, end] that have at
// least one set stored, ascending. Workouts without sets do not count.
func (d *DB) GetWorkoutDays(ctx context.Context, start, end string) ([]string, error) {
	db, err := d.Conn(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		SELECT w.date
		FROM workouts w
		INNER JOIN workout_details wd ON wd.workout_id = w.id
		WHERE w.date BETWEEN ? AND ?
		GROUP BY w.date
		HAVING COUNT(wd.id) > 0
		ORDER BY w.date ASC
	`, start, end)
	if err != nil {
		d.logger.Error("get workout days", "start", start, "end", end, "err", err)
		return nil, fmt.Errorf("get workout days: %w", err)
	}
	defer rows.Close()

	days := []string{}
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("scan workout day: %w", err)
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

// GetBestResults returns, for each date the exercise was trained, the
// heaviest set and its reps. Equal weights on a date resolve to the most
// recently inserted set. Newest date first.
func (d *DB) GetBestResults(ctx context.Context, exerciseID int64) ([]*models.BestResult, error) {
	db, err := d.Conn(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, `
		WITH daily AS (
			SELECT wd.id, w.date, wd.weight, wd.reps,
			       ROW_NUMBER() OVER (
			           PARTITION BY w.date
			           ORDER BY wd.weight DESC, wd.id DESC
			       ) AS rn
			FROM workout_details wd
			JOIN workouts w ON w.id = wd.workout_id
			WHERE wd.exercise_id = ?
		)
		SELECT id, date, weight, reps
		FROM daily
		WHERE rn = 1
		ORDER BY date DESC
	`, exerciseID)
	if err != nil {
		d.logger.Error("get best results", "exercise_id", exerciseID, "err", err)
		return nil, fmt.Errorf("get best results: %w", err)
	}
	defer rows.Close()

	results := []*models.BestResult{}
	for rows.Next() {
		var r models.BestResult
		if err := rows.Scan(&r.DetailID, &r.Date, &r.Weight, &r.Reps); err != nil {
			return nil, fmt.Errorf("scan best result: %w", err)
		}
		results = append(results, &r)
	}
	return results, rows.Err()
}
