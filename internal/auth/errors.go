// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

package auth

import "errors"

var (
	// ErrCredentialInvalid is returned for an unknown email and for a wrong
	// password alike, so callers cannot tell the two apart.
	ErrCredentialInvalid = errors.New("auth: invalid credentials")

	// ErrIdentityNotFound is returned by an [IdentityStore] when no teacher has the email.
	ErrIdentityNotFound = errors.New("auth: identity not found")
)
