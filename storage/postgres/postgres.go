package postgres

import (
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/dealerdesk/dealerdesk.go/storage"
)

// Store implements storage.Store on top of bun/Postgres.
type Store struct {
	DB *bun.DB
}

func NewStore(db *bun.DB) *Store {
	return &Store{DB: db}
}

var _ storage.Store = (*Store)(nil)

// wrapErr maps driver errors onto the storage sentinels.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ErrNotFound
	}
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
		return storage.ErrDuplicate
	}
	return err
}

func affectedOrNotFound(res sql.Result, err error) error {
	if err != nil {
		return wrapErr(err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return storage.ErrNotFound
	}
	return nil
}
