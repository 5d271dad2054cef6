package errors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// TranslateStoreError maps database driver errors onto the domain taxonomy.
// Unique-constraint violations are detected by SQLSTATE, which the postgres
// driver always carries; no message matching is needed.
func TranslateStoreError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return WrapError(ErrNotFound, err)
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return WrapError(ErrConflict, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return WrapError(ErrConflict, err)
	}

	return WrapError(ErrUnexpected, err)
}
