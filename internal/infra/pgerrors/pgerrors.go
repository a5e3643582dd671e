package pgerrors

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Classify names the kind of a store failure for logs. It never decides the response status.
func Classify(err error) string {
	if errors.Is(err, sql.ErrNoRows) {
		return "no rows"
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "non-postgres error"
	}
	switch {
	case pgErr.Code == pgerrcode.UndefinedTable:
		return "undefined table"
	case pgerrcode.IsConnectionException(pgErr.Code):
		return "connection exception"
	case pgerrcode.IsIntegrityConstraintViolation(pgErr.Code):
		return "integrity constraint violation"
	case pgerrcode.IsDataException(pgErr.Code):
		return "data exception"
	case pgerrcode.IsInsufficientResources(pgErr.Code):
		return "insufficient resources"
	default:
		return "postgres error " + pgErr.Code
	}
}
