// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher produces and checks bcrypt credential hashes.
//
// The salt is embedded in the hash string, so the output is self-contained
// and can be stored as a single column. A PasswordHasher holds no mutable
// state and is safe for concurrent use.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher using the given bcrypt work factor.
// Costs outside the range bcrypt accepts fall back to [bcrypt.DefaultCost].
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Hash hashes a plain-text password using the bcrypt algorithm.
//
// Passwords longer than 72 bytes are rejected rather than truncated.
func (hasher *PasswordHasher) Hash(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), hasher.cost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// MaxPasswordBytes is the longest input bcrypt hashes without truncation.
const MaxPasswordBytes = 72

// Verify compares a plain-text password with a stored hash in constant time.
//
// A malformed or truncated hash reports false instead of an error so callers
// cannot learn anything about the stored format. Candidates longer than
// [MaxPasswordBytes] never match: bcrypt only reads the first 72 bytes, and
// [PasswordHasher.Hash] refuses to store anything longer.
func (hasher *PasswordHasher) Verify(plainTextPassword, existingHash string) bool {
	if len(plainTextPassword) > MaxPasswordBytes {
		return false
	}

	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}

// Cost returns the bcrypt work factor used by [PasswordHasher.Hash].
func (hasher *PasswordHasher) Cost() int {
	return hasher.cost
}
