package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/saransh1220/artistly/internal/modules/storage/domain"
	"github.com/saransh1220/artistly/internal/modules/storage/infrastructure/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPgStore_Get(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	store := postgres.NewPgStore(db)
	ctx := context.Background()

	mock.ExpectQuery(`SELECT value FROM kv_store WHERE key = \$1`).
		WithArgs("artistly_artists").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`[]`)))
	got, err := store.Get(ctx, "artistly_artists")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))

	mock.ExpectQuery(`SELECT value FROM kv_store`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)
	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrKeyNotFound)

	mock.ExpectQuery(`SELECT value FROM kv_store`).
		WithArgs("broken").
		WillReturnError(errors.New("conn reset"))
	_, err = store.Get(ctx, "broken")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrKeyNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgStore_SetAndDelete(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	store := postgres.NewPgStore(db)
	ctx := context.Background()

	mock.ExpectExec(`INSERT INTO kv_store \(key, value, updated_at\)`).
		WithArgs("artistly_user", []byte(`{}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, store.Set(ctx, "artistly_user", []byte(`{}`)))

	mock.ExpectExec(`DELETE FROM kv_store WHERE key = \$1`).
		WithArgs("artistly_user").
		WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, store.Delete(ctx, "artistly_user"))

	mock.ExpectExec(`DELETE FROM kv_store`).
		WithArgs("x").
		WillReturnError(errors.New("db down"))
	assert.Error(t, store.Delete(ctx, "x"))

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgStore_Update(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	store := postgres.NewPgStore(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(hashtext\(\$1\)\)`).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT value FROM kv_store WHERE key = \$1 FOR UPDATE`).
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("a")))
	mock.ExpectExec(`INSERT INTO kv_store`).
		WithArgs("k", []byte("ab")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.Update(ctx, "k", func(current []byte) ([]byte, error) {
		return append(current, 'b'), nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgStore_UpdateAbsentKey(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	store := postgres.NewPgStore(db)

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(hashtext\(\$1\)\)`).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`FOR UPDATE`).WithArgs("k").WillReturnError(sql.ErrNoRows)
	mock.ExpectExec(`INSERT INTO kv_store`).
		WithArgs("k", []byte("new")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.Update(context.Background(), "k", func(current []byte) ([]byte, error) {
		assert.Nil(t, current)
		return []byte("new"), nil
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgStore_UpdateRollsBackOnError(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	store := postgres.NewPgStore(db)
	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(hashtext\(\$1\)\)`).
		WithArgs("k").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`FOR UPDATE`).
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("a")))
	mock.ExpectRollback()

	err := store.Update(context.Background(), "k", func([]byte) ([]byte, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgStore_UpdateAbsentKeyTakesKeyLockFirst(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	store := postgres.NewPgStore(db)
	called := false

	mock.ExpectBegin()
	mock.ExpectExec(`pg_advisory_xact_lock`).
		WithArgs("artistly_bookings").
		WillReturnError(errors.New("lock timeout"))
	mock.ExpectRollback()

	err := store.Update(context.Background(), "artistly_bookings", func(b []byte) ([]byte, error) {
		called = true
		return b, nil
	})
	assert.ErrorContains(t, err, "lock key artistly_bookings")
	assert.False(t, called)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPgStore_UpdateBeginFails(t *testing.T) {
	db, mock, cleanup := newMockDB(t)
	defer cleanup()
	store := postgres.NewPgStore(db)

	mock.ExpectBegin().WillReturnError(errors.New("no conn"))
	err := store.Update(context.Background(), "k", func(b []byte) ([]byte, error) { return b, nil })
	assert.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
