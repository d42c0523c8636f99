// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

package auth

// Request field names, shared by validation errors and JSON payloads.
const (
	fieldEmail    = "email"
	fieldPassword = "password"
	fieldName     = "name"
	fieldToken    = "token"
)

// Client-facing messages.
const (
	msgInvalidCredentials = "Invalid credentials"
	msgEmailRegistered    = "Email already registered"
	msgEmailAvailable     = "Email available"
	msgTokenMissing       = "Token not provided"
	msgTokenValid         = "Token valid"
	msgTokenInvalid       = "Token invalid or expired"
	msgProfileRetrieved   = "Admin profile retrieved"
)
