// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

package sec_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/englishproject/englishteacher-api/internal/platform/sec"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

// fixedClock is a settable clock shared by a TokenService under test.
type fixedClock struct {
	current time.Time
}

func (clock *fixedClock) now() time.Time { return clock.current }

func (clock *fixedClock) advance(d time.Duration) { clock.current = clock.current.Add(d) }

func newTestService(t *testing.T) (*sec.TokenService, *fixedClock) {
	t.Helper()

	clock := &fixedClock{current: time.Unix(1_700_000_000, 0)}
	service, err := sec.NewTokenService(testKey, 0, sec.WithClock(clock.now))
	require.NoError(t, err)

	return service, clock
}

// tamperSignature flips the first character of the signature segment.
func tamperSignature(t *testing.T, token string) string {
	t.Helper()

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	signature := []byte(parts[2])
	if signature[0] == 'A' {
		signature[0] = 'B'
	} else {
		signature[0] = 'A'
	}
	parts[2] = string(signature)

	return strings.Join(parts, ".")
}

/*
TestNewTokenService_KeyLength verifies that short HMAC keys are refused at startup.
*/
func TestNewTokenService_KeyLength(t *testing.T) {
	_, err := sec.NewTokenService([]byte("too-short"), time.Minute)
	assert.ErrorIs(t, err, sec.ErrKeyTooShort)

	service, err := sec.NewTokenService(testKey, 0)
	require.NoError(t, err)
	assert.Equal(t, sec.DefaultTokenTTL, service.DefaultTTL())
}

/*
TestTokenService_IssueAndValidate checks the happy path right after issuance.
*/
func TestTokenService_IssueAndValidate(t *testing.T) {
	service, _ := newTestService(t)

	subjects := []string{"t@x.com", "Paz.Valdez@EnglishTeacher.com", "a"}
	for _, subject := range subjects {
		t.Run(subject, func(t *testing.T) {
			token, err := service.Issue(subject, 100*time.Second)
			require.NoError(t, err)

			assert.Len(t, strings.Split(token, "."), 3)
			assert.True(t, service.Validate(token))
			assert.True(t, service.ValidateForSubject(token, subject))

			extracted, err := service.ExtractSubject(token)
			require.NoError(t, err)
			assert.Equal(t, subject, extracted)
		})
	}
}

/*
TestTokenService_Claims verifies the wire claims: sub, iat and exp as epoch seconds.
*/
func TestTokenService_Claims(t *testing.T) {
	service, clock := newTestService(t)

	token, err := service.Issue("t@x.com", 0)
	require.NoError(t, err)

	claims, err := service.Inspect(token)
	require.NoError(t, err)

	assert.Equal(t, "t@x.com", claims.Subject)
	assert.Equal(t, clock.current.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, clock.current.Add(sec.DefaultTokenTTL).Unix(), claims.ExpiresAt.Unix())
}

/*
TestTokenService_ExpiryBoundary checks that a 1s token is valid at t+0 and
invalid at the exp instant and after.
*/
func TestTokenService_ExpiryBoundary(t *testing.T) {
	service, clock := newTestService(t)

	token, err := service.Issue("t@x.com", time.Second)
	require.NoError(t, err)
	assert.True(t, service.Validate(token))

	// Exactly at exp: no leeway.
	clock.advance(time.Second)
	assert.False(t, service.Validate(token))

	clock.advance(time.Second)
	assert.False(t, service.Validate(token))
	assert.False(t, service.ValidateForSubject(token, "t@x.com"))

	_, err = service.Inspect(token)
	assert.ErrorIs(t, err, sec.ErrTokenExpired)

	// The subject is still readable after expiry.
	subject, err := service.ExtractSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "t@x.com", subject)
}

/*
TestTokenService_SubjectMismatch verifies that a valid token for one subject
is rejected for another, including case differences.
*/
func TestTokenService_SubjectMismatch(t *testing.T) {
	service, _ := newTestService(t)

	token, err := service.Issue("a@x.com", 100*time.Second)
	require.NoError(t, err)

	assert.True(t, service.Validate(token))
	assert.False(t, service.ValidateForSubject(token, "b@x.com"))
	assert.False(t, service.ValidateForSubject(token, "A@x.com"))
	assert.ErrorIs(t, service.CheckSubject(token, "b@x.com"), sec.ErrSubjectMismatch)
}

/*
TestTokenService_Tampering verifies that signature and payload alterations are detected.
*/
func TestTokenService_Tampering(t *testing.T) {
	service, _ := newTestService(t)

	token, err := service.Issue("a@x.com", 100*time.Second)
	require.NoError(t, err)

	t.Run("altered_signature", func(t *testing.T) {
		tampered := tamperSignature(t, token)

		assert.False(t, service.Validate(tampered))

		_, err := service.ExtractSubject(tampered)
		assert.ErrorIs(t, err, sec.ErrTokenMalformed)
	})

	t.Run("swapped_payload", func(t *testing.T) {
		other, err := service.Issue("b@x.com", 100*time.Second)
		require.NoError(t, err)

		tokenParts := strings.Split(token, ".")
		otherParts := strings.Split(other, ".")
		forged := strings.Join([]string{tokenParts[0], otherParts[1], tokenParts[2]}, ".")

		assert.False(t, service.Validate(forged))
		_, err = service.ExtractSubject(forged)
		assert.ErrorIs(t, err, sec.ErrTokenMalformed)
	})

	t.Run("other_key", func(t *testing.T) {
		otherService, err := sec.NewTokenService([]byte("ffffffffffffffffffffffffffffffff"), 0)
		require.NoError(t, err)

		assert.False(t, otherService.Validate(token))
		_, err = otherService.Inspect(token)
		assert.ErrorIs(t, err, sec.ErrTokenMalformed)
	})
}

/*
TestTokenService_RejectsForeignAlgorithms verifies that only HS256 is accepted.
*/
func TestTokenService_RejectsForeignAlgorithms(t *testing.T) {
	service, clock := newTestService(t)

	claims := jwt.RegisteredClaims{
		Subject:   "a@x.com",
		IssuedAt:  jwt.NewNumericDate(clock.current),
		ExpiresAt: jwt.NewNumericDate(clock.current.Add(time.Hour)),
	}

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	hs512Token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testKey)
	require.NoError(t, err)

	for name, token := range map[string]string{"none": noneToken, "hs512": hs512Token} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, service.Validate(token))
			_, err := service.ExtractSubject(token)
			assert.ErrorIs(t, err, sec.ErrTokenMalformed)
		})
	}
}

/*
TestTokenService_MissingClaims verifies that a signed token without sub, iat
or exp never validates.
*/
func TestTokenService_MissingClaims(t *testing.T) {
	service, clock := newTestService(t)

	tests := []struct {
		name   string
		claims jwt.RegisteredClaims
	}{
		{"missing_sub", jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(clock.current),
			ExpiresAt: jwt.NewNumericDate(clock.current.Add(time.Hour)),
		}},
		{"missing_iat", jwt.RegisteredClaims{
			Subject:   "a@x.com",
			ExpiresAt: jwt.NewNumericDate(clock.current.Add(time.Hour)),
		}},
		{"missing_exp", jwt.RegisteredClaims{
			Subject:  "a@x.com",
			IssuedAt: jwt.NewNumericDate(clock.current),
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tt.claims).SignedString(testKey)
			require.NoError(t, err)

			assert.False(t, service.Validate(token))
			_, err = service.Inspect(token)
			assert.ErrorIs(t, err, sec.ErrTokenMalformed)
		})
	}
}

/*
TestTokenService_Garbage verifies that unparseable input fails without panicking.
*/
func TestTokenService_Garbage(t *testing.T) {
	service, _ := newTestService(t)

	inputs := []string{"", "abc", "a.b.c", "a.b", "....", "Bearer x.y.z"}
	for _, input := range inputs {
		assert.False(t, service.Validate(input))
		assert.False(t, service.ValidateForSubject(input, "a@x.com"))

		_, err := service.ExtractSubject(input)
		assert.ErrorIs(t, err, sec.ErrTokenMalformed)
	}
}

/*
TestTokenService_IssueRequiresSubject verifies that an empty subject cannot be signed.
*/
func TestTokenService_IssueRequiresSubject(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.Issue("", time.Minute)
	assert.Error(t, err)
}

/*
TestLoadSigningKey covers the inline, file and misconfigured key sources.
*/
func TestLoadSigningKey(t *testing.T) {
	keyPath := filepath.Join(t.TempDir(), "jwt.key")
	require.NoError(t, os.WriteFile(keyPath, append(testKey, '\n'), 0o600))

	key, err := sec.LoadSigningKey("inline-secret", "")
	require.NoError(t, err)
	assert.Equal(t, []byte("inline-secret"), key)

	key, err = sec.LoadSigningKey("", keyPath)
	require.NoError(t, err)
	assert.Equal(t, testKey, key)

	_, err = sec.LoadSigningKey("", "")
	assert.ErrorIs(t, err, sec.ErrKeyMissing)

	_, err = sec.LoadSigningKey("inline-secret", keyPath)
	assert.ErrorIs(t, err, sec.ErrKeyAmbiguous)

	_, err = sec.LoadSigningKey("", filepath.Join(t.TempDir(), "missing.key"))
	assert.Error(t, err)
}
