package db

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/unchin/unchin/internal/shared"
)

func TestPgCodeUnwrapsPgError(t *testing.T) {
	err := fmt.Errorf("insert customer: %w", &pgconn.PgError{Code: shared.PgUniqueViolation})

	assert.Equal(t, shared.PgUniqueViolation, PgCode(err))
	assert.True(t, IsPgCode(err, shared.PgUniqueViolation))
	assert.False(t, IsPgCode(err, shared.PgForeignKeyViolation))
}

func TestPgCodeIgnoresOtherErrors(t *testing.T) {
	assert.Equal(t, "", PgCode(errors.New("boom")))
	assert.False(t, IsPgCode(nil, ""))
}
