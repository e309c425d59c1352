// ABOUTME: Exercise catalog reads and writes.
// ABOUTME: Listing is ordered by name with an optional muscle group filter.
package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/harperreed/lift/internal/models"
)

// GetExercises lists the catalog ordered by name, optionally filtered by group.
func (d *DB) GetExercises(ctx context.Context, group *models.MuscleGroup) ([]*models.Exercise, error) {
	db, err := d.Conn(ctx)
	if err != nil {
		return nil, err
	}

	query := `SELECT DISTINCT id, name, muscle_group, video FROM exercises`
	var args []interface{}
	if group != nil {
		if !models.IsValidMuscleGroup(string(*group)) {
			return nil, fmt.Errorf("invalid muscle group %q: %w", *group, ErrInvalidInput)
		}
		query += ` WHERE muscle_group = ?`
		args = append(args, string(*group))
	}
	query += ` ORDER BY name ASC, id ASC`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		d.logger.Error("list exercises", "err", err)
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	exercises := []*models.Exercise{}
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

// GetExercise returns one exercise, or nil when the id is unknown.
func (d *DB) GetExercise(ctx context.Context, id int64) (*models.Exercise, error) {
	db, err := d.Conn(ctx)
	if err != nil {
		return nil, err
	}

	row := db.QueryRowContext(ctx, `SELECT id, name, muscle_group, video FROM exercises WHERE id = ?`, id)
	e, err := scanExercise(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return e, err
}

// CreateExercise adds an exercise to the catalog. Names need not be unique.
func (d *DB) CreateExercise(ctx context.Context, e *models.Exercise) (int64, error) {
	if e == nil || e.Name == "" {
		return 0, fmt.Errorf("exercise name is required: %w", ErrInvalidInput)
	}
	if !models.IsValidMuscleGroup(string(e.MuscleGroup)) {
		return 0, fmt.Errorf("invalid muscle group %q: %w", e.MuscleGroup, ErrInvalidInput)
	}

	db, err := d.Conn(ctx)
	if err != nil {
		return 0, err
	}

	result, err := db.ExecContext(ctx,
		`INSERT INTO exercises (name, muscle_group, video) VALUES (?, ?, ?)`,
		e.Name, string(e.MuscleGroup), e.Video)
	if err != nil {
		d.logger.Error("create exercise", "name", e.Name, "err", err)
		if isConstraintErr(err) {
			return 0, fmt.Errorf("create exercise: %w: %w", ErrConstraintViolation, err)
		}
		return 0, fmt.Errorf("create exercise: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create exercise: %w", err)
	}
	e.ID = id
	return id, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanExercise(s scanner) (*models.Exercise, error) {
	var (
		e     models.Exercise
		group string
		video sql.NullString
	)
	if err := s.Scan(&e.ID, &e.Name, &group, &video); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan exercise: %w", err)
	}
	e.MuscleGroup = models.MuscleGroup(group)
	if video.Valid {
		e.Video = &video.String
	}
	return &e, nil
}
