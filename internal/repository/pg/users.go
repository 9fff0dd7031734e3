package pg

import (
	"context"
	"database/sql"
	"errors"

	"github.com/ibeloyar/memestore/internal/model"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

func (r *Repository) GetUserByLogin(ctx context.Context, login string) *model.User {
	var user model.User

	err := r.executeWithRetry(func(db *sql.DB) error {
		row := db.QueryRowContext(ctx,
			`SELECT id, login, password, created_at FROM users WHERE login = $1`, login)

		return row.Scan(&user.ID, &user.Login, &user.Password, &user.CreatedAt)
	})
	if err != nil {
		return nil
	}

	return &user
}

func (r *Repository) CreateUser(ctx context.Context, user model.User) (int64, error) {
	var id int64

	err := r.executeWithRetry(func(db *sql.DB) error {
		row := db.QueryRowContext(ctx,
			`INSERT INTO users (login, password) VALUES ($1, $2) RETURNING id`,
			user.Login, user.Password)

		return row.Scan(&id)
	})
	if err != nil {
		if isUniqueViolation(err) {
			return 0, model.ErrUserAlreadyExist
		}
		return 0, err
	}

	return id, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == ErrIsExistCode
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == ErrIsExistCode
	}

	return false
}
