package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolationCode is the PostgreSQL SQLSTATE for a unique constraint
// violation.
const uniqueViolationCode = "23505"

// translate maps a raw GORM/pgx error to the repository's sentinel error
// taxonomy. Any error that is neither a not-found nor a unique violation is
// returned unwrapped for the caller to fmt.Errorf-wrap with call-site
// context.
func translate(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrConflict
	}
	return err
}
