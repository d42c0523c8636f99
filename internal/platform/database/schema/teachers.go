// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

// Package schema names the tables and columns the stores query, so a column
// rename touches one place.
package schema

// TeachersTable represents the 'teachers' table
type TeachersTable struct {
	Table             string
	ID                string
	Name              string
	LastName          string
	Description       string
	Email             string
	Phone             string
	ProfileImageURL   string
	YearsOfExperience string
	Qualifications    string
	Specialties       string
	PasswordHash      string
	CreatedAt         string
	UpdatedAt         string

	// EmailKey is the unique constraint on Email.
	EmailKey string
}

// Teachers is the schema definition for teachers
var Teachers = TeachersTable{
	Table:             "teachers",
	ID:                "id",
	Name:              "name",
	LastName:          "last_name",
	Description:       "description",
	Email:             "email",
	Phone:             "phone",
	ProfileImageURL:   "profile_image_url",
	YearsOfExperience: "years_of_experience",
	Qualifications:    "qualifications",
	Specialties:       "specialties",
	PasswordHash:      "password_hash",
	CreatedAt:         "created_at",
	UpdatedAt:         "updated_at",
	EmailKey:          "teachers_email_key",
}

// Columns returns all column names in table order
func (t TeachersTable) Columns() []string {
	return []string{
		t.ID, t.Name, t.LastName, t.Description, t.Email, t.Phone,
		t.ProfileImageURL, t.YearsOfExperience, t.Qualifications, t.Specialties,
		t.PasswordHash, t.CreatedAt, t.UpdatedAt,
	}
}
