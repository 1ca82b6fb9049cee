package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// PgCode returns the SQLSTATE of err when it wraps a *pgconn.PgError.
func PgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsPgCode reports whether err carries the given SQLSTATE.
func IsPgCode(err error, code string) bool {
	return code != "" && PgCode(err) == code
}
