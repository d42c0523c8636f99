// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

// Package dberr classifies pgx errors into [apperr.AppError] values so store
// callers never see SQLSTATE codes.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/englishproject/englishteacher-api/internal/platform/apperr"
	"github.com/englishproject/englishteacher-api/internal/platform/database/schema"
)

// conflictMessages names the client message for each known unique constraint.
var conflictMessages = map[string]string{
	schema.Teachers.EmailKey: "Email already registered",
}

// Wrap classifies err for the operation named by action.
//
//   - pgx.ErrNoRows: 404.
//   - unique violation: 409, with a constraint-specific message when known.
//   - anything else: 500 with action prefixed to the cause.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Resource").WithCause(err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		message, known := conflictMessages[pgErr.ConstraintName]
		if !known {
			message = "Resource already exists"
		}
		return apperr.Conflict(message).WithCause(err)
	}

	return apperr.Internal(fmt.Errorf("%s: %w", action, err))
}

// IsUniqueViolation reports whether err carries SQLSTATE 23505.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
