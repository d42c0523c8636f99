// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// auth service and the authentication middleware through small interfaces.
//
// # Tokens
//
// Access tokens are stateless HS256 JWTs carrying a single identity claim
// (sub) plus iat/exp. There is no revocation list: expiry is the only way a
// token stops being valid.
package sec

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// MinKeyLength is the minimum HMAC key size in bytes (256 bits for HS256).
	MinKeyLength = 32

	// DefaultTokenTTL is the validity window used when no TTL is requested.
	DefaultTokenTTL = 1800 * time.Second
)

// TokenClaims represents the payload embedded inside an access token.
//
// Only the registered claims are used: sub holds the teacher's email and
// iat/exp are Unix-epoch seconds.
type TokenClaims struct {
	jwt.RegisteredClaims
}

// TokenService handles generation and verification of JWT tokens using HS256.
//
// The signing key is loaded once at startup and never changes for the
// lifetime of the process. All methods are safe for concurrent use.
type TokenService struct {
	key        []byte
	defaultTTL time.Duration
	now        func() time.Time
}

// TokenOption customizes a [TokenService].
type TokenOption func(*TokenService)

// WithClock replaces the wall clock used for iat/exp and expiry checks.
func WithClock(now func() time.Time) TokenOption {
	return func(service *TokenService) {
		if now != nil {
			service.now = now
		}
	}
}

// NewTokenService creates a new TokenService.
//
// A key shorter than [MinKeyLength] returns [ErrKeyTooShort]. A non-positive
// defaultTTL falls back to [DefaultTokenTTL].
func NewTokenService(key []byte, defaultTTL time.Duration, options ...TokenOption) (*TokenService, error) {
	if len(key) < MinKeyLength {
		return nil, ErrKeyTooShort
	}

	if defaultTTL <= 0 {
		defaultTTL = DefaultTokenTTL
	}

	service := &TokenService{
		key:        bytes.Clone(key),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}

	for _, option := range options {
		option(service)
	}

	return service, nil
}

// LoadSigningKey resolves the HMAC key from exactly one source: the inline
// secret or the file at path. Surrounding whitespace in the file is ignored.
func LoadSigningKey(secret, path string) ([]byte, error) {
	switch {
	case secret != "" && path != "":
		return nil, ErrKeyAmbiguous
	case secret != "":
		return []byte(secret), nil
	case path != "":
		keyData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("sec: failed to read signing key from %s: %w", path, err)
		}
		return bytes.TrimSpace(keyData), nil
	default:
		return nil, ErrKeyMissing
	}
}

// DefaultTTL returns the configured validity window.
func (service *TokenService) DefaultTTL() time.Duration {
	return service.defaultTTL
}

// Issue creates a signed access token for subject.
//
// A non-positive timeToLive uses the configured default window.
func (service *TokenService) Issue(subject string, timeToLive time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("sec: token subject is required")
	}

	if timeToLive <= 0 {
		timeToLive = service.defaultTTL
	}

	currentTime := service.now()
	claims := TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.key)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Inspect fully verifies a token and returns its claims.
//
// # Returns
//   - [ErrTokenExpired] when the signature is valid but exp is not strictly in the future.
//   - [ErrTokenMalformed] for everything else: bad encoding, wrong algorithm,
//     bad signature, or a missing sub/iat/exp claim.
func (service *TokenService) Inspect(tokenString string) (*TokenClaims, error) {
	claims, err := service.parse(tokenString, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}

	if claims.Subject == "" || claims.IssuedAt == nil {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}

// Validate reports whether the token is authentic and not yet expired.
func (service *TokenService) Validate(tokenString string) bool {
	_, err := service.Inspect(tokenString)
	return err == nil
}

// CheckSubject verifies the token and requires its subject to equal
// expectedSubject exactly. It returns [ErrSubjectMismatch] when the token is
// otherwise valid but was issued to someone else.
func (service *TokenService) CheckSubject(tokenString, expectedSubject string) error {
	claims, err := service.Inspect(tokenString)
	if err != nil {
		return err
	}

	if claims.Subject != expectedSubject {
		return ErrSubjectMismatch
	}

	return nil
}

// ValidateForSubject reports whether the token is valid and was issued to
// expectedSubject (case-sensitive).
func (service *TokenService) ValidateForSubject(tokenString, expectedSubject string) bool {
	return service.CheckSubject(tokenString, expectedSubject) == nil
}

// ExtractSubject returns the sub claim without checking expiry.
//
// The signature is still verified. Any parse or signature failure, or an
// empty subject, returns [ErrTokenMalformed].
func (service *TokenService) ExtractSubject(tokenString string) (string, error) {
	claims, err := service.parse(tokenString, jwt.WithoutClaimsValidation())
	if err != nil {
		return "", err
	}

	if claims.Subject == "" {
		return "", ErrTokenMalformed
	}

	return claims.Subject, nil
}

// parse verifies the signature with the pinned algorithm and maps library
// errors onto the package taxonomy.
func (service *TokenService) parse(tokenString string, options ...jwt.ParserOption) (*TokenClaims, error) {
	parserOptions := append([]jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(service.now),
	}, options...)

	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, service.keyFunc, parserOptions...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}

func (service *TokenService) keyFunc(token *jwt.Token) (any, error) {
	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
	}
	return service.key, nil
}
