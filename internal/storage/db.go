// ABOUTME: SQLite connection lifecycle for the workout store.
// ABOUTME: Lazy single-flight bootstrap, reset-by-delete, and XDG default paths.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/singleflight"

	"github.com/harperreed/lift/internal/logging"

	_ "modernc.org/sqlite"
)

// DB owns the SQLite handle for one database file.
// The handle is opened and bootstrapped on first use.
type DB struct {
	dbPath string
	logger *log.Logger

	mu    sync.Mutex
	db    *sql.DB
	group singleflight.Group
}

// Option configures a DB.
type Option func(*DB)

// WithLogger sets the logger used for store diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(d *DB) {
		if l != nil {
			d.logger = l
		}
	}
}

// New returns a store for dbPath without touching the filesystem.
func New(dbPath string, opts ...Option) *DB {
	d := &DB{
		dbPath: dbPath,
		logger: logging.Default("storage"),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Open returns a store for dbPath and bootstraps it immediately.
func Open(dbPath string, opts ...Option) (*DB, error) {
	d := New(dbPath, opts...)
	if err := d.Init(context.Background()); err != nil {
		return nil, err
	}
	return d, nil
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "lift")
}

// DefaultDBPath returns the default database path following XDG spec.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "lift.db")
}

// Path returns the database file path.
func (d *DB) Path() string {
	return d.dbPath
}

// Conn returns the shared handle, bootstrapping the file on first call.
// Concurrent first callers wait on a single bootstrap.
func (d *DB) Conn(ctx context.Context) (*sql.DB, error) {
	d.mu.Lock()
	db := d.db
	d.mu.Unlock()
	if db != nil {
		return db, nil
	}

	ch := d.group.DoChan("open", func() (interface{}, error) {
		d.mu.Lock()
		if d.db != nil {
			db := d.db
			d.mu.Unlock()
			return db, nil
		}
		d.mu.Unlock()

		// Bootstrap must not be abandoned halfway by one caller's cancellation.
		db, err := d.open(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		d.mu.Lock()
		d.db = db
		d.mu.Unlock()
		return db, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*sql.DB), nil
	}
}

// Init bootstraps the database if that has not happened yet.
func (d *DB) Init(ctx context.Context) error {
	_, err := d.Conn(ctx)
	return err
}

// Reset closes the handle, deletes the database file, and bootstraps
// a fresh one. All data is lost and the catalog returns to the seed set.
func (d *DB) Reset(ctx context.Context) error {
	d.mu.Lock()
	if d.db != nil {
		if err := d.db.Close(); err != nil {
			d.logger.Warn("close before reset", "err", err)
		}
		d.db = nil
	}
	for _, suffix := range []string{"", "-wal", "-shm"} {
		if err := os.Remove(d.dbPath + suffix); err != nil && !errors.Is(err, os.ErrNotExist) {
			d.mu.Unlock()
			d.logger.Error("remove database file", "path", d.dbPath+suffix, "err", err)
			return fmt.Errorf("remove database file: %w: %w", ErrInitialization, err)
		}
	}
	d.mu.Unlock()

	d.logger.Info("database reset", "path", d.dbPath)
	return d.Init(ctx)
}

// Close releases the handle without touching stored data.
// A later call to Conn reopens the file.
func (d *DB) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.db == nil {
		return nil
	}
	err := d.db.Close()
	d.db = nil
	return err
}

// open creates the file if needed, applies pragmas, and runs bootstrap.
func (d *DB) open(ctx context.Context) (*sql.DB, error) {
	dir := filepath.Dir(d.dbPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		d.logger.Error("create data directory", "dir", dir, "err", err)
		return nil, fmt.Errorf("create data directory: %w: %w", ErrInitialization, err)
	}

	db, err := sql.Open("sqlite", d.dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w: %w", ErrInitialization, err)
	}
	// Pragmas are per connection, so keep exactly one.
	db.SetMaxOpenConns(1)

	if err := configurePragmas(ctx, db); err != nil {
		_ = db.Close()
		d.logger.Error("configure pragmas", "path", d.dbPath, "err", err)
		return nil, fmt.Errorf("configure pragmas: %w: %w", ErrInitialization, err)
	}

	if err := os.Chmod(d.dbPath, 0600); err != nil && !os.IsNotExist(err) {
		_ = db.Close()
		return nil, fmt.Errorf("set database permissions: %w: %w", ErrInitialization, err)
	}

	if err := d.bootstrap(ctx, db); err != nil {
		_ = db.Close()
		d.logger.Error("bootstrap database", "path", d.dbPath, "err", err)
		return nil, fmt.Errorf("bootstrap database: %w: %w", ErrInitialization, err)
	}

	return db, nil
}

// configurePragmas enables WAL and foreign keys on every open.
func configurePragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			return fmt.Errorf("execute %s: %w", pragma, err)
		}
	}
	return nil
}

// conn is Conn plus a context detached from caller cancellation, for
// operations that must run to commit or rollback once started.
func (d *DB) conn(ctx context.Context) (*sql.DB, context.Context, error) {
	db, err := d.Conn(ctx)
	if err != nil {
		return nil, nil, err
	}
	return db, context.WithoutCancel(ctx), nil
}
