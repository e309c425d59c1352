// ABOUTME: Repository interface for the workout store.
// ABOUTME: Consumers depend on this contract rather than on *DB.
package storage

import (
	"context"
	"database/sql"

	"github.com/harperreed/lift/internal/models"
)

// Repository defines the storage interface for the training log.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Profile operations
	GetUser(ctx context.Context) (*models.User, error)
	CheckUserExists(ctx context.Context) (bool, error)
	CreateUser(ctx context.Context, u *models.User) (int64, error)
	UpdateUser(ctx context.Context, u *models.User) error
	DeleteUser(ctx context.Context) error

	// Catalog operations
	GetExercises(ctx context.Context, group *models.MuscleGroup) ([]*models.Exercise, error)
	GetExercise(ctx context.Context, id int64) (*models.Exercise, error)
	CreateExercise(ctx context.Context, e *models.Exercise) (int64, error)

	// Workout operations
	SaveWorkout(ctx context.Context, in models.WorkoutInput) (*models.SaveResult, error)
	GetWorkoutsByDate(ctx context.Context, date string) ([]*models.Workout, error)
	GetWorkoutDetails(ctx context.Context, workoutID int64) ([]*models.WorkoutDetail, error)
	CleanupDuplicateWorkoutDetails(ctx context.Context) (*models.RepairResult, error)

	// Aggregation
	GetWorkoutDays(ctx context.Context, start, end string) ([]string, error)
	GetBestResults(ctx context.Context, exerciseID int64) ([]*models.BestResult, error)

	// Export/Import
	GetAllData(ctx context.Context) (*ExportData, error)
	ImportData(ctx context.Context, data *ExportData) (*ImportResult, error)

	// Lifecycle
	Conn(ctx context.Context) (*sql.DB, error)
	Init(ctx context.Context) error
	Reset(ctx context.Context) error
	StoreID(ctx context.Context) (string, error)
	Close() error
}

var _ Repository = (*DB)(nil)
