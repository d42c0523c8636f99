// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/englishproject/englishteacher-api/internal/platform/database/schema"
	"github.com/englishproject/englishteacher-api/internal/platform/dberr"
)

// DB is the subset of [pgxpool.Pool] used by [PostgresIdentityStore].
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresIdentityStore implements [IdentityStore] on the teachers table.
type PostgresIdentityStore struct {
	db DB
}

// NewPostgresIdentityStore creates a new PostgreSQL implementation of the IdentityStore.
func NewPostgresIdentityStore(db DB) *PostgresIdentityStore {
	return &PostgresIdentityStore{db: db}
}

var teacherTable = schema.Teachers

var findTeacherByEmailQuery = fmt.Sprintf(`
	SELECT %s, %s, %s, COALESCE(%s, ''), %s, COALESCE(%s, ''),
	       COALESCE(%s, ''), %s, COALESCE(%s, ''),
	       COALESCE(%s, ''), %s, %s, %s
	FROM %s
	WHERE %s = $1`,
	teacherTable.ID, teacherTable.Name, teacherTable.LastName, teacherTable.Description, teacherTable.Email, teacherTable.Phone,
	teacherTable.ProfileImageURL, teacherTable.YearsOfExperience, teacherTable.Qualifications,
	teacherTable.Specialties, teacherTable.PasswordHash, teacherTable.CreatedAt, teacherTable.UpdatedAt,
	teacherTable.Table,
	teacherTable.Email,
)

// FindByEmail retrieves a teacher by exact email.
func (store *PostgresIdentityStore) FindByEmail(ctx context.Context, email string) (*Teacher, error) {
	teacher := &Teacher{}
	err := store.db.QueryRow(ctx, findTeacherByEmailQuery, email).Scan(
		&teacher.ID,
		&teacher.Name,
		&teacher.LastName,
		&teacher.Description,
		&teacher.Email,
		&teacher.Phone,
		&teacher.ProfileImageURL,
		&teacher.YearsOfExperience,
		&teacher.Qualifications,
		&teacher.Specialties,
		&teacher.PasswordHash,
		&teacher.CreatedAt,
		&teacher.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrIdentityNotFound
		}
		return nil, fmt.Errorf("auth: find teacher by email: %w", err)
	}

	return teacher, nil
}

var teacherExistsQuery = fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, teacherTable.Table, teacherTable.Email)

// Exists reports whether a teacher with the exact email is registered.
func (store *PostgresIdentityStore) Exists(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := store.db.QueryRow(ctx, teacherExistsQuery, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("auth: check teacher exists: %w", err)
	}
	return exists, nil
}

var countTeachersQuery = fmt.Sprintf(`SELECT COUNT(*) FROM %s`, teacherTable.Table)

// Count returns the number of teacherTable.
func (store *PostgresIdentityStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := store.db.QueryRow(ctx, countTeachersQuery).Scan(&count); err != nil {
		return 0, fmt.Errorf("auth: count teachers: %w", err)
	}
	return count, nil
}

var createTeacherQuery = fmt.Sprintf(`
	INSERT INTO %s (
		%s, %s, %s, %s, %s, %s,
		%s, %s, %s, %s
	) VALUES ($1, $2, NULLIF($3, ''), $4, NULLIF($5, ''), NULLIF($6, ''), $7, NULLIF($8, ''), NULLIF($9, ''), $10)
	RETURNING %s, %s, %s`,
	teacherTable.Table,
	teacherTable.Name, teacherTable.LastName, teacherTable.Description, teacherTable.Email, teacherTable.Phone, teacherTable.ProfileImageURL,
	teacherTable.YearsOfExperience, teacherTable.Qualifications, teacherTable.Specialties, teacherTable.PasswordHash,
	teacherTable.ID, teacherTable.CreatedAt, teacherTable.UpdatedAt,
)

// Create inserts a teacher and fills in the generated ID and timestamps.
func (store *PostgresIdentityStore) Create(ctx context.Context, teacher *Teacher) error {
	err := store.db.QueryRow(ctx, createTeacherQuery,
		teacher.Name,
		teacher.LastName,
		teacher.Description,
		teacher.Email,
		teacher.Phone,
		teacher.ProfileImageURL,
		teacher.YearsOfExperience,
		teacher.Qualifications,
		teacher.Specialties,
		teacher.PasswordHash,
	).Scan(&teacher.ID, &teacher.CreatedAt, &teacher.UpdatedAt)

	if err != nil {
		return dberr.Wrap(err, "create teacher")
	}

	return nil
}
