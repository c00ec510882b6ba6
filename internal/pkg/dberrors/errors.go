package dberrors

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind is a coarse classification of a storage error.
type Kind string

const (
	KindNone       Kind = ""
	KindConnection Kind = "connection"
	KindIntegrity  Kind = "integrity"
	KindData       Kind = "data"
	KindOther      Kind = "other"
)

// SQLSTATE class prefixes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	classConnectionException = "08"
	classDataException       = "22"
	classIntegrityViolation  = "23"
	classInsufficientRes     = "53"
	classOperatorIntervened  = "57"
)

// Classify maps err onto a Kind. It returns KindNone for a nil error.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case strings.HasPrefix(pgErr.Code, classIntegrityViolation):
			return KindIntegrity
		case strings.HasPrefix(pgErr.Code, classDataException):
			return KindData
		case strings.HasPrefix(pgErr.Code, classConnectionException),
			strings.HasPrefix(pgErr.Code, classInsufficientRes),
			strings.HasPrefix(pgErr.Code, classOperatorIntervened):
			return KindConnection
		}
		return KindOther
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) ||
		errors.Is(err, context.DeadlineExceeded) {
		return KindConnection
	}

	return KindOther
}

// IsDatabaseError reports whether err originates from the database driver.
func IsDatabaseError(err error) bool {
	var pgErr *pgconn.PgError
	var connErr *pgconn.ConnectError
	return errors.As(err, &pgErr) || errors.As(err, &connErr) || pgconn.Timeout(err)
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505" && pgErr.ConstraintName == constraintName
}
