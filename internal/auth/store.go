// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

package auth

import (
	"context"
)

// IdentityStore defines the data access contract for teacher identities.
//
// Every lookup is an exact, case-sensitive match on the stored email.
// Implementations must be safe for concurrent use.
type IdentityStore interface {
	// FindByEmail returns the teacher with the given email.
	//
	// Returns [ErrIdentityNotFound] if no teacher is registered with it.
	FindByEmail(ctx context.Context, email string) (*Teacher, error)

	// Exists reports whether a teacher with the given email is registered.
	Exists(ctx context.Context, email string) (bool, error)

	// Count returns the number of registered teachers.
	Count(ctx context.Context) (int64, error)

	// Create persists a new teacher and fills in ID and timestamps.
	//
	// A duplicate email returns an [apperr.AppError] with code CONFLICT.
	Create(ctx context.Context, teacher *Teacher) error
}
