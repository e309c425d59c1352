// ABOUTME: Profile operations for the single app user.
// ABOUTME: At most one row exists; deleting the user wipes the whole store.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/harperreed/lift/internal/models"
)

// GetUser returns the profile, or nil when none has been created.
func (d *DB) GetUser(ctx context.Context) (*models.User, error) {
	db, err := d.Conn(ctx)
	if err != nil {
		return nil, err
	}

	var (
		u        models.User
		weight   sql.NullFloat64
		height   sql.NullFloat64
		age      sql.NullInt64
		sex      sql.NullString
		imageURI sql.NullString
	)
	err = db.QueryRowContext(ctx, `
		SELECT id, name, weight, height, age, sex, image_uri
		FROM users
		WHERE id = ?
	`, models.UserID).Scan(&u.ID, &u.Name, &weight, &height, &age, &sex, &imageURI)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		d.logger.Error("get user", "err", err)
		return nil, fmt.Errorf("get user: %w", err)
	}

	if weight.Valid {
		u.Weight = &weight.Float64
	}
	if height.Valid {
		u.Height = &height.Float64
	}
	if age.Valid {
		a := int(age.Int64)
		u.Age = &a
	}
	if sex.Valid {
		s := models.Sex(sex.String)
		u.Sex = &s
	}
	if imageURI.Valid {
		u.ImageURI = &imageURI.String
	}
	return &u, nil
}

// CheckUserExists reports whether a profile has been created.
func (d *DB) CheckUserExists(ctx context.Context) (bool, error) {
	db, err := d.Conn(ctx)
	if err != nil {
		return false, err
	}
	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		d.logger.Error("count users", "err", err)
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return n > 0, nil
}

// CreateUser inserts the profile. A second profile is rejected with ErrUserExists.
func (d *DB) CreateUser(ctx context.Context, u *models.User) (int64, error) {
	if err := validateUser(u); err != nil {
		return 0, err
	}

	db, ctx, err := d.conn(ctx)
	if err != nil {
		return 0, err
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin create user: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var n int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		d.logger.Warn("create user rejected", "reason", "profile exists")
		return 0, ErrUserExists
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (id, name, weight, height, age, sex, image_uri)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, models.UserID, u.Name, u.Weight, u.Height, u.Age, sexValue(u.Sex), u.ImageURI)
	if err != nil {
		if isConstraintErr(err) {
			return 0, fmt.Errorf("create user: %w", ErrUserExists)
		}
		d.logger.Error("create user", "err", err)
		return 0, fmt.Errorf("create user: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit create user: %w", err)
	}

	u.ID = models.UserID
	return models.UserID, nil
}

// UpdateUser replaces every profile field. Without a profile it does nothing.
func (d *DB) UpdateUser(ctx context.Context, u *models.User) error {
	if err := validateUser(u); err != nil {
		return err
	}

	db, err := d.Conn(ctx)
	if err != nil {
		return err
	}

	result, err := db.ExecContext(ctx, `
		UPDATE users
		SET name = ?, weight = ?, height = ?, age = ?, sex = ?, image_uri = ?
		WHERE id = ?
	`, u.Name, u.Weight, u.Height, u.Age, sexValue(u.Sex), u.ImageURI, models.UserID)
	if err != nil {
		d.logger.Error("update user", "err", err)
		return fmt.Errorf("update user: %w", err)
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		d.logger.Debug("update user matched no profile")
	}
	return nil
}

// DeleteUser wipes the store. With a single user, deleting the account and a
// factory reset are the same thing.
func (d *DB) DeleteUser(ctx context.Context) error {
	if err := d.Reset(ctx); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func validateUser(u *models.User) error {
	if u == nil || u.Name == "" {
		return fmt.Errorf("user name is required: %w", ErrInvalidInput)
	}
	if u.Sex != nil && !models.IsValidSex(string(*u.Sex)) {
		return fmt.Errorf("invalid sex %q: %w", *u.Sex, ErrInvalidInput)
	}
	return nil
}

func sexValue(s *models.Sex) any {
	if s == nil {
		return nil
	}
	return string(*s)
}
