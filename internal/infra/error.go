package infra

import (
	"context"
	"errors"
	"net"

	"car-rental/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type RepositoryErrorKind string

type RepositoryError struct {
	Kind RepositoryErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e RepositoryError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr wraps a storage error. Without an explicit kind the kind is derived
// from the underlying error.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := classify(err)
	if len(kind) > 0 {
		k = kind[0]
	}
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return RepositoryError{Kind: k, msg: msg, err: err}
}

func NewRepoErr(kind RepositoryErrorKind, msg string) error {
	return RepositoryError{Kind: kind, msg: msg}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	KindConflict           RepositoryErrorKind = "CONFLICT"
	KindUnavailable        RepositoryErrorKind = "UNAVAILABLE"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
	pgErrCodeExclusionViolation  = "23P01"
)

func classify(err error) RepositoryErrorKind {
	if err == nil {
		return KindDBFailure
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return KindNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return KindDuplicateKey
		case pgErrCodeForeignKeyViolation:
			return KindForeignKeyViolated
		case pgErrCodeExclusionViolation:
			return KindConflict
		}
		// class 08: connection exception
		if len(pgErr.Code) == 5 && pgErr.Code[:2] == "08" {
			return KindUnavailable
		}
		return KindDBFailure
	}
	var netErr net.Error
	if errors.As(err, &netErr) || pgconn.Timeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return KindUnavailable
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return KindUnavailable
	}
	return KindDBFailure
}
