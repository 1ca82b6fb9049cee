package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks input rejected before it reaches the store.
	ErrValidation = errors.New("validation failed")
)

// PostgreSQL SQLSTATE codes the repositories classify.
const (
	PgUniqueViolation     = "23505"
	PgForeignKeyViolation = "23503"
	PgCheckViolation      = "23514"
)
