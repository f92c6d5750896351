package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/scana-dk/scana/internal/common"
	"github.com/scana-dk/scana/internal/dbx"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLiteStorage implements Storage over a single key/value table using a
// DBTX (either *sql.DB or *sql.Tx). Per-key atomicity follows from every
// mutation being a single upsert or delete statement.
type SQLiteStorage struct {
	db dbx.DBTX
}

// NewSQLiteStorage returns a SQLiteStorage bound to the given DBTX.
func NewSQLiteStorage(db dbx.DBTX) *SQLiteStorage {
	return &SQLiteStorage{db: db}
}

func (s *SQLiteStorage) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM storage WHERE key = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: get storage[%s]: %v", classify(err), key, err)
	}
	return value, nil
}

func (s *SQLiteStorage) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO storage (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("%w: set storage[%s]: %v", classify(err), key, err)
	}
	return nil
}

func (s *SQLiteStorage) Remove(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM storage WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("%w: remove storage[%s]: %v", classify(err), key, err)
	}
	return nil
}

func (s *SQLiteStorage) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM storage`)
	if err != nil {
		return fmt.Errorf("%w: clear storage: %v", classify(err), err)
	}
	return nil
}

// classify maps a driver failure onto the storage error taxonomy.
// A full database is the only condition reported as ErrStorageFull;
// everything else is ErrStorageUnavailable.
func classify(err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code() == sqlite3.SQLITE_FULL {
		return common.ErrStorageFull
	}
	return common.ErrStorageUnavailable
}
