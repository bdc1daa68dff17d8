package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/placementdesk/internal/dbx"
)

// SQLiteRepository implements Repository over the "collections" table.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a repository bound to db, which may be a
// *sql.DB or a *sql.Tx.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM collections WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get collection[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO collections (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set collection[%s]: %w", key, err)
	}
	return nil
}

// SeedIfAbsent runs in a single transaction when the repository is bound to
// a *sql.DB, so a first start either stores every default or none.
func (r *SQLiteRepository) SeedIfAbsent(ctx context.Context, values map[string][]byte) (int, error) {
	if b, ok := r.db.(dbx.TxBeginner); ok {
		var written int
		err := dbx.WithTx(ctx, b, nil, func(ctx context.Context, tx dbx.DBTX) error {
			n, err := NewSQLiteRepository(tx).SeedIfAbsent(ctx, values)
			written = n
			return err
		})
		if err != nil {
			return 0, err
		}
		return written, nil
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	written := 0
	for _, key := range keys {
		res, err := r.db.ExecContext(ctx,
			`INSERT INTO collections (key, value) VALUES (?, ?) ON CONFLICT(key) DO NOTHING`,
			key, values[key])
		if err != nil {
			return 0, fmt.Errorf("failed to seed collection[%s]: %w", key, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("failed to get rows affected: %w", err)
		}
		written += int(n)
	}
	return written, nil
}
