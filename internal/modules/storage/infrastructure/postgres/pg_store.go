package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/saransh1220/artistly/internal/modules/storage/domain"
)

const (
	keyLockQuery     = `SELECT pg_advisory_xact_lock(hashtext($1))`
	selectValueQuery = `SELECT value FROM kv_store WHERE key = $1`
	lockValueQuery   = `SELECT value FROM kv_store WHERE key = $1 FOR UPDATE`
	upsertQuery      = `INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`
	deleteQuery = `DELETE FROM kv_store WHERE key = $1`
)

type PgStore struct {
	db *sqlx.DB
}

func NewPgStore(db *sqlx.DB) *PgStore {
	return &PgStore{db: db}
}

func (s *PgStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.GetContext(ctx, &value, selectValueQuery, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", key, err)
	}
	return value, nil
}

func (s *PgStore) Set(ctx context.Context, key string, value []byte) error {
	if _, err := s.db.ExecContext(ctx, upsertQuery, key, value); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *PgStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, deleteQuery, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Update serializes writers of one key with a transaction-scoped advisory lock,
// which also covers keys that have no row yet, then locks the row itself.
func (s *PgStore) Update(ctx context.Context, key string, fn func([]byte) ([]byte, error)) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, keyLockQuery, key); err != nil {
		return fmt.Errorf("lock key %s: %w", key, err)
	}

	var current []byte
	err = tx.GetContext(ctx, &current, lockValueQuery, key)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("lock %s: %w", key, err)
	}

	next, err := fn(current)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, upsertQuery, key, next); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
