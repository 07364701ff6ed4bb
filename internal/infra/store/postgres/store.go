package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// Store persists the registry snapshot in a single-row key/value table.
// Incremental persistence is deliberately not attempted; the registry always
// rewrites the whole blob.
type Store struct {
	DB  *sql.DB
	key string
}

func NewStore(db *sql.DB, key string) *Store {
	return &Store{DB: db, key: key}
}

// Migrate creates the snapshots table if missing.
func (s *Store) Migrate(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS snapshots (
			key        TEXT PRIMARY KEY,
			data       TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`
	if _, err := s.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create snapshots table: %w", err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context) (string, error) {
	var data string
	err := s.DB.QueryRowContext(ctx,
		`SELECT data FROM snapshots WHERE key = $1`, s.key,
	).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil // no snapshot yet
		}
		return "", fmt.Errorf("failed to read snapshot: %w", err)
	}
	return data, nil
}

func (s *Store) Set(ctx context.Context, data string) error {
	query := `
		INSERT INTO snapshots (key, data, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET data = EXCLUDED.data, updated_at = NOW()
	`
	if _, err := s.DB.ExecContext(ctx, query, s.key, data); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	return nil
}

func (s *Store) Remove(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, `DELETE FROM snapshots WHERE key = $1`, s.key); err != nil {
		return fmt.Errorf("failed to remove snapshot: %w", err)
	}
	return nil
}

// Connect opens the pool and tests it with a ping.
func Connect(connString string) (*sql.DB, error) {
	db, err := sql.Open("postgres", connString)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return db, nil
}
