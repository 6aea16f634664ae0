// Copyright (c) 2026 Oshidora. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/nakatsuka-k/oshidora-sub000/internal/platform/apperr"
)

// PostgreSQL SQLSTATE codes for integrity violations.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
)

// sqliteConstraint is the primary SQLITE_CONSTRAINT result code.
const sqliteConstraint = 19

// coder is implemented by driver errors that expose a numeric result code
// (modernc.org/sqlite's *sqlite.Error).
type coder interface {
	Code() int
}

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// action names the operation, e.g. "statement 42".
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. PostgreSQL integrity violations
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgForeignKeyViolation, pgNotNullViolation:
			return &apperr.AppError{
				Code:       "CONFLICT",
				Message:    fmt.Sprintf("%s: constraint %s violated", action, pgErr.ConstraintName),
				HTTPStatus: apperr.Conflict("").HTTPStatus,
				Cause:      err,
			}
		}
	}

	// 2. SQLite constraint failures (extended codes keep the primary code in the low byte)
	var sqliteErr coder
	if errors.As(err, &sqliteErr) && sqliteErr.Code()&0xff == sqliteConstraint {
		return &apperr.AppError{
			Code:       "CONFLICT",
			Message:    action + ": " + err.Error(),
			HTTPStatus: apperr.Conflict("").HTTPStatus,
			Cause:      err,
		}
	}

	// 3. Anything else is a storage failure
	return apperr.Storage(action+" failed", err)
}
