// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

package sec

import "errors"

// Token failures. [TokenService] never returns anything else for an
// expected failure mode, so callers can branch with [errors.Is].
var (
	ErrTokenMalformed  = errors.New("sec: token malformed")
	ErrTokenExpired    = errors.New("sec: token expired")
	ErrSubjectMismatch = errors.New("sec: token subject mismatch")

	// Startup failures. These abort the process.
	ErrKeyTooShort  = errors.New("sec: signing key must be at least 32 bytes")
	ErrKeyMissing   = errors.New("sec: no signing key configured")
	ErrKeyAmbiguous = errors.New("sec: signing key configured both inline and by path")
)
