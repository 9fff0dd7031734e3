package pg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

type ErrorClassification int

const (
	NonRetriable ErrorClassification = iota
	Retriable

	ErrIsExistCode = "23505"
)

type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetriable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyByCode(pgErr.Code)
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return classifyByCode(string(pqErr.Code))
	}

	// unknown errors are not retried
	return NonRetriable
}

func classifyByCode(code string) ErrorClassification {
	// PostgreSQL error codes: https://www.postgresql.org/docs/current/errcodes-appendix.html

	switch code {
	// class 08 - connection exceptions
	case "08000", "08001", "08003", "08004", "08006", "08007":
		return Retriable

	// class 40 - transaction rollback
	case "40000", "40001", "40P01":
		return Retriable

	// class 57 - operator intervention
	case "57P03":
		return Retriable
	}

	// class 22 - data exceptions
	switch code {
	case "22000", "22004":
		return NonRetriable
	}

	// class 23 - integrity constraint violations
	switch code {
	case "23000", "23001", "23502", "23503", ErrIsExistCode, "23514":
		return NonRetriable
	}

	// class 42 - syntax errors
	switch code {
	case "42601", "42P01", "42703", "42P02", "42P03":
		return NonRetriable
	}

	return NonRetriable
}
