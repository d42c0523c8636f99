// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/englishproject/englishteacher-api/internal/platform/constants"
	"github.com/englishproject/englishteacher-api/internal/platform/dberr"
	"github.com/englishproject/englishteacher-api/internal/platform/sec"
	"github.com/englishproject/englishteacher-api/internal/platform/validate"
)

// CredentialHasher is the subset of [sec.PasswordHasher] used by the service.
type CredentialHasher interface {
	Hash(plainTextPassword string) (string, error)
	Verify(plainTextPassword, existingHash string) bool
}

// TokenProvider is the subset of [sec.TokenService] used by the service.
type TokenProvider interface {
	Issue(subject string, timeToLive time.Duration) (string, error)
	Inspect(token string) (*sec.TokenClaims, error)
	DefaultTTL() time.Duration
}

// Service implements the credential use cases.
//
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	identities IdentityStore
	hasher     CredentialHasher
	tokens     TokenProvider

	// decoyHash is verified against when the email is unknown so both
	// failure paths pay the same bcrypt cost.
	decoyHash func() string
}

// fallbackDecoyHash is a well-formed cost-10 bcrypt hash used when the
// hasher cannot produce a decoy, so unknown emails still pay a full comparison.
const fallbackDecoyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// NewService constructs a new [Service] with its dependencies.
func NewService(identities IdentityStore, hasher CredentialHasher, tokens TokenProvider) *Service {
	return &Service{
		identities: identities,
		hasher:     hasher,
		tokens:     tokens,
		decoyHash: sync.OnceValue(func() string {
			hash, err := hasher.Hash("decoy-password-never-matches")
			if err != nil {
				return fallbackDecoyHash
			}
			return hash
		}),
	}
}

// Authenticate returns the teacher whose email and password match.
//
// # Returns
//   - [ErrCredentialInvalid] for an unknown email or a wrong password.
//   - A wrapped store error when the lookup itself fails.
func (service *Service) Authenticate(ctx context.Context, email, password string) (*Teacher, error) {
	teacher, err := service.identities.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrIdentityNotFound) {
			service.hasher.Verify(password, service.decoyHash())
			return nil, ErrCredentialInvalid
		}
		return nil, fmt.Errorf("auth_service_lookup_failed: %w", err)
	}

	if !service.hasher.Verify(password, teacher.PasswordHash) {
		return nil, ErrCredentialInvalid
	}

	return teacher, nil
}

// Exists reports whether a teacher with exactly this email is registered.
func (service *Service) Exists(ctx context.Context, email string) (bool, error) {
	exists, err := service.identities.Exists(ctx, email)
	if err != nil {
		return false, fmt.Errorf("auth_service_exists_failed: %w", err)
	}
	return exists, nil
}

// LoginResult is a successful login: an access token and the teacher it names.
type LoginResult struct {
	Token     string   `json:"token"`
	TokenType string   `json:"token_type"`
	ExpiresIn int64    `json:"expires_in"`
	Teacher   *Teacher `json:"teacher"`
}

// Login authenticates the teacher and issues an access token for the default window.
func (service *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	teacher, err := service.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	timeToLive := service.tokens.DefaultTTL()
	token, err := service.tokens.Issue(teacher.Email, timeToLive)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	return &LoginResult{
		Token:     token,
		TokenType: constants.TokenType,
		ExpiresIn: int64(timeToLive / time.Second),
		Teacher:   teacher,
	}, nil
}

// TokenStatus is the outcome of [Service.InspectToken].
type TokenStatus struct {
	Valid   bool
	Email   string
	Expired bool
}

// InspectToken reports whether a token verifies and has not expired.
//
// The identity store is not consulted: a token for a deleted teacher still
// inspects as valid until it expires.
func (service *Service) InspectToken(token string) TokenStatus {
	claims, err := service.tokens.Inspect(token)
	if err != nil {
		return TokenStatus{Expired: errors.Is(err, sec.ErrTokenExpired)}
	}
	return TokenStatus{Valid: true, Email: claims.Subject}
}

// AdminSeed describes the teacher created on first start.
type AdminSeed struct {
	Email    string
	Password string
	Name     string
	LastName string
}

// EnsureAdmin creates the seed teacher when the identity store is empty.
//
// It returns true only when this call created the teacher. An empty seed
// email disables seeding. A concurrent instance winning the insert race is
// treated as already seeded.
func (service *Service) EnsureAdmin(ctx context.Context, seed AdminSeed) (bool, error) {
	if seed.Email == "" {
		return false, nil
	}

	validator := &validate.Validator{}
	if err := validator.
		Email(fieldEmail, seed.Email).
		Password(fieldPassword, seed.Password).
		Required(fieldName, seed.Name).
		Err(); err != nil {
		return false, err
	}

	count, err := service.identities.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("auth_service_count_failed: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	passwordHash, err := service.hasher.Hash(seed.Password)
	if err != nil {
		return false, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	teacher := &Teacher{
		Name:         seed.Name,
		LastName:     seed.LastName,
		Email:        seed.Email,
		PasswordHash: passwordHash,
	}

	if err := service.identities.Create(ctx, teacher); err != nil {
		if dberr.IsUniqueViolation(err) {
			return false, nil
		}
		return false, fmt.Errorf("auth_service_seed_failed: %w", err)
	}

	return true, nil
}
