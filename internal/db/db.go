package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"
)

var errNotInitialized = errors.New("database not initialized")

// DB wraps a database connection
type DB struct {
	*sql.DB
}

// NewDB creates a new database connection
func NewDB() (*DB, error) {
	return Open(getEnvOrDefault("DB_PATH", "wthr.db"))
}

// Open opens (creating if needed) the SQLite database at path
func Open(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite has a single writer; one connection also keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)

	// Verify connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &DB{db}, nil
}

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`)
	return err
}

// Get returns the value stored under key and whether it exists
func (db *DB) Get(ctx context.Context, key string) (string, bool, error) {
	if db == nil || db.DB == nil {
		return "", false, errNotInitialized
	}

	var value string
	err := db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value
func (db *DB) Set(ctx context.Context, key, value string) error {
	if db == nil || db.DB == nil {
		return errNotInitialized
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value)
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

// Delete removes key; deleting a missing key is not an error
func (db *DB) Delete(ctx context.Context, key string) error {
	if db == nil || db.DB == nil {
		return errNotInitialized
	}

	if _, err := db.ExecContext(ctx, "DELETE FROM kv WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete %q: %w", key, err)
	}
	return nil
}

// Ping verifies the connection is alive
func (db *DB) Ping(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return errNotInitialized
	}
	return db.PingContext(ctx)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
