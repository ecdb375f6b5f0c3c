package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresError returns the SQLSTATE code of err when it is a PostgreSQL
// driver error, or an empty string otherwise.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// classifyWriteError maps a failed INSERT/UPDATE to a store sentinel.
// A unique violation becomes onDuplicate. Check, not-null and bad-data
// violations (including text with a NUL byte) become [ErrInvalidEntry]. Anything else is wrapped in [ErrExecutingStatement].
//
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func classifyWriteError(err error, onDuplicate error) error {
	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return onDuplicate
	case pgerrcode.CheckViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.StringDataRightTruncationDataException,
		pgerrcode.NumericValueOutOfRange,
		pgerrcode.CharacterNotInRepertoire,
		pgerrcode.UntranslatableCharacter:
		return fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	case pgerrcode.ForeignKeyViolation:
		return ErrNoUserWasFound
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}
