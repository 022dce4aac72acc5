package pgstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/leporo/sqlf"

	"github.com/mmsswimming/go_academy_backend/internal/adapter/storage"
	"github.com/mmsswimming/go_academy_backend/internal/domain/user"
)

func (s *PgStorage) CreateUser(ctx context.Context, u *user.User) (*user.User, error) {
	stored := *u

	q := sqlf.InsertInto("users").
		Set("email", u.Email).
		Set("password_hash", u.PasswordHash).
		Set("role", u.Role).
		Set("created_at", u.CreatedAt).
		Returning("id").To(&stored.ID)

	if err := q.QueryRowAndClose(ctx, s.db); err != nil {
		if violatesConstraint(err, "users_email_key") {
			return nil, user.ErrEmailDuplicate
		}
		return nil, storage.InternalError(err)
	}
	return &stored, nil
}

func (s *PgStorage) getUser(ctx context.Context, whereClause string, whereArgs ...any) (*user.User, error) {
	var u user.User

	q := sqlf.From("users").
		Where(whereClause, whereArgs...).
		Select("id").To(&u.ID).
		Select("email").To(&u.Email).
		Select("password_hash").To(&u.PasswordHash).
		Select("role").To(&u.Role).
		Select("created_at").To(&u.CreatedAt).
		Limit(1)

	if err := q.QueryRowAndClose(ctx, s.db); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, storage.InternalError(err)
	}
	return &u, nil
}

func (s *PgStorage) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.getUser(ctx, "email = ?", email)
}

func (s *PgStorage) GetUserByID(ctx context.Context, id int) (*user.User, error) {
	return s.getUser(ctx, "id = ?", id)
}
