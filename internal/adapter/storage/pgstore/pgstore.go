// Package pgstore is the PostgreSQL Storage implementation, for deployments
// that outgrow the in-memory store. Identifier assignment is delegated to
// the database (serial columns, RETURNING id) and Atomic maps to a real
// transaction.
package pgstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/leporo/sqlf"
	"github.com/r3labs/diff"

	"github.com/mmsswimming/go_academy_backend/internal/adapter/storage"
)

type PgStorage struct {
	db storage.DBContext
}

func New(db storage.DBContext) *PgStorage {
	return &PgStorage{db: db}
}

func (s *PgStorage) Atomic(ctx context.Context, fn func(storage.Storage) error) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return storage.InternalError(err)
	}

	if err := fn(&PgStorage{db: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			err = errors.Join(err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return storage.InternalError(err)
	}
	return nil
}

func violatesConstraint(err error, constraintName string) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) &&
		pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) &&
		pgErr.ConstraintName == constraintName
}

// makeUpdateQuery turns a diff changelog into SET clauses. Diff tags on the
// domain structs are the column names, so each top-level change maps to one
// column.
func makeUpdateQuery(stmt *sqlf.Stmt, updates diff.Changelog) *sqlf.Stmt {
	for _, upd := range updates {
		if len(upd.Path) > 1 {
			panic("cannot process updates in nested structures")
		}
		stmt = stmt.Set(upd.Path[0], upd.To)
	}
	return stmt
}

func assertUpdated(res sql.Result, err error, notUpdatedErr error) error {
	if err != nil {
		return storage.InternalError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storage.InternalError(err)
	}

	if affected == 0 {
		return notUpdatedErr
	}
	return nil
}

// String slices (coach certifications, specialties) live in jsonb columns.
func encodeStrings(v []string) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func decodeStrings(v sql.NullString) []string {
	if !v.Valid || v.String == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(v.String), &out); err != nil {
		return nil
	}
	return out
}
