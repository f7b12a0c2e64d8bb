package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SQLStore keeps values in the kv_entries table. Works with the sqlite and
// pgx drivers; the schema comes from internal/db migrations.
type SQLStore struct {
	db *sqlx.DB
}

func NewSQLStore(db *sqlx.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value string
	query := `SELECT value FROM kv_entries WHERE id = $1`

	err := s.db.GetContext(ctx, &value, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", key, err)
	}

	return []byte(value), nil
}

func (s *SQLStore) Set(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO kv_entries (id, value, updated_at)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (id) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`

	_, err := s.db.ExecContext(ctx, query, key, string(value), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}

	return nil
}

func (s *SQLStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
