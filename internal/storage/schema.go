// ABOUTME: SQLite schema definition and one-time bootstrap.
// ABOUTME: The app_control table records whether seeding already happened.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// SchemaVersion is written to app_control on bootstrap.
const SchemaVersion = 1

const (
	controlInitDone      = "init_done"
	controlSchemaVersion = "schema_version"
	controlStoreID       = "store_id"
)

const controlSchema = `
CREATE TABLE IF NOT EXISTS app_control (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

const schema = `
DROP TABLE IF EXISTS workout_details;
DROP TABLE IF EXISTS workouts;
DROP TABLE IF EXISTS exercises;
DROP TABLE IF EXISTS users;

CREATE TABLE users (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	name TEXT NOT NULL,
	weight REAL,
	height REAL,
	age INTEGER,
	sex TEXT CHECK (sex IS NULL OR sex IN ('male', 'female')),
	image_uri TEXT
);

CREATE TABLE exercises (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	muscle_group TEXT NOT NULL CHECK (muscle_group IN ('push', 'pull', 'legs')),
	video TEXT
);

CREATE TABLE workouts (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	name TEXT
);

CREATE TABLE workout_details (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	workout_id INTEGER NOT NULL,
	exercise_id INTEGER NOT NULL,
	set_index INTEGER NOT NULL CHECK (set_index >= 1),
	reps INTEGER NOT NULL CHECK (reps > 0),
	weight REAL NOT NULL CHECK (weight > 0),
	FOREIGN KEY (workout_id) REFERENCES workouts(id) ON DELETE CASCADE,
	FOREIGN KEY (exercise_id) REFERENCES exercises(id)
);

CREATE INDEX idx_exercises_group ON exercises(muscle_group);
CREATE INDEX idx_workouts_date ON workouts(date);
CREATE INDEX idx_details_workout ON workout_details(workout_id);
CREATE INDEX idx_details_exercise ON workout_details(exercise_id);
CREATE INDEX idx_details_set ON workout_details(workout_id, exercise_id, set_index);
`

// bootstrap creates the tables and seeds the catalog unless the control
// marker says this file was already initialized.
func (d *DB) bootstrap(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, controlSchema); err != nil {
		return fmt.Errorf("create control table: %w", err)
	}

	done, err := readControl(ctx, db, controlInitDone)
	if err != nil {
		return err
	}
	if done == "true" {
		d.logger.Debug("database already initialized", "path", d.dbPath)
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin bootstrap: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO exercises (name, muscle_group, video) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare seed: %w", err)
	}
	defer stmt.Close()
	for _, e := range seedCatalog {
		if _, err := stmt.ExecContext(ctx, e.Name, string(e.MuscleGroup), e.Video); err != nil {
			return fmt.Errorf("seed exercise %q: %w", e.Name, err)
		}
	}

	control := map[string]string{
		controlInitDone:      "true",
		controlSchemaVersion: strconv.Itoa(SchemaVersion),
		controlStoreID:       uuid.New().String(),
	}
	for k, v := range control {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO app_control (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO UPDATE SET value = excluded.value`, k, v); err != nil {
			return fmt.Errorf("write control %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit bootstrap: %w", err)
	}

	d.logger.Info("database initialized", "path", d.dbPath, "exercises", len(seedCatalog))
	return nil
}

func readControl(ctx context.Context, q interface {
	QueryRowContext(context.Context, string, ...any) *sql.Row
}, key string) (string, error) {
	var value string
	err := q.QueryRowContext(ctx, `SELECT value FROM app_control WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read control %s: %w", key, err)
	}
	return value, nil
}

// StoreID returns the identifier generated when this database file was
// bootstrapped. It changes after every Reset.
func (d *DB) StoreID(ctx context.Context) (string, error) {
	db, err := d.Conn(ctx)
	if err != nil {
		return "", err
	}
	return readControl(ctx, db, controlStoreID)
}

// SchemaVersion returns the version recorded at bootstrap.
func (d *DB) SchemaVersion(ctx context.Context) (int, error) {
	db, err := d.Conn(ctx)
	if err != nil {
		return 0, err
	}
	v, err := readControl(ctx, db, controlSchemaVersion)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(v)
}
