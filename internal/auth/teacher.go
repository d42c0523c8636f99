// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

// Package auth owns teacher identities and the credential use cases built on
// them: login, email presence checks, token inspection and the first-run
// admin seed.
package auth

import (
	"time"
)

// Teacher is the identity record of a teacher account.
//
// # Rules
//   - Email is unique and is the token subject. Lookups are exact and case-sensitive.
//   - PasswordHash is a bcrypt hash produced by the service, never a plaintext.
type Teacher struct {
	ID                int64     `json:"id"`
	Name              string    `json:"name"`
	LastName          string    `json:"last_name"`
	Description       string    `json:"description,omitempty"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone,omitempty"`
	ProfileImageURL   string    `json:"profile_image_url,omitempty"`
	YearsOfExperience int       `json:"years_of_experience"`
	Qualifications    string    `json:"qualifications,omitempty"`
	Specialties       string    `json:"specialties,omitempty"`
	PasswordHash      string    `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
