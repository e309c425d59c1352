// ABOUTME: Error taxonomy for the workout store.
// ABOUTME: Sentinels for init, constraint, transaction, and input failures.
package storage

import (
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrInitialization means the database could not be opened or bootstrapped.
	ErrInitialization = errors.New("database initialization failed")

	// ErrConstraintViolation means a write broke a store invariant.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrUserExists is returned when creating a second profile.
	ErrUserExists = fmt.Errorf("user already exists: %w", ErrConstraintViolation)

	// ErrTransaction means a save or repair was rolled back.
	ErrTransaction = errors.New("transaction failed")

	// ErrInvalidInput means the request itself was malformed.
	ErrInvalidInput = errors.New("invalid input")
)

// isConstraintErr reports whether err is an SQLite constraint failure.
func isConstraintErr(err error) bool {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}
	return false
}
