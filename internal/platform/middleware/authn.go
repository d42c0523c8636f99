// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/englishproject/englishteacher-api/internal/platform/apperr"
	"github.com/englishproject/englishteacher-api/internal/platform/constants"
	"github.com/englishproject/englishteacher-api/internal/platform/ctxutil"
	"github.com/englishproject/englishteacher-api/internal/platform/respond"
	"github.com/englishproject/englishteacher-api/internal/platform/sec"
)

// Gate outcomes, one per evaluated request.
const (
	OutcomeAnonymous        = "anonymous"
	OutcomeMalformed        = "malformed"
	OutcomePreauthenticated = "preauthenticated"
	OutcomeInvalid          = "invalid"
	OutcomeUnknownIdentity  = "unknown_identity"
	OutcomeLookupError      = "lookup_error"
	OutcomeAuthenticated    = "authenticated"
)

// TokenVerifier is the subset of [sec.TokenService] the gate depends on.
type TokenVerifier interface {
	ExtractSubject(token string) (string, error)
	ValidateForSubject(token, expectedSubject string) bool
}

// IdentityChecker reports whether a token subject still names a known teacher.
type IdentityChecker interface {
	Exists(ctx context.Context, email string) (bool, error)
}

// OutcomeRecorder receives the outcome of every gate evaluation.
type OutcomeRecorder interface {
	RecordAuthOutcome(outcome string)
}

type discardRecorder struct{}

func (discardRecorder) RecordAuthOutcome(string) {}

// Authenticate resolves the request principal from a bearer token.
//
// # Flow
//  1. No 'Authorization: Bearer <token>' header: the request stays anonymous.
//  2. Read the subject from the token. Failure is logged and ignored.
//  3. A principal already in the context is kept as is.
//  4. The token must verify and expire in the future for that subject.
//  5. The subject must exist in the identity store.
//  6. Attach [sec.Principal] to the request context.
//
// The gate never writes a response and always calls next. Rejecting anonymous
// requests is the job of [RequireAuth].
func Authenticate(verifier TokenVerifier, identities IdentityChecker, recorder OutcomeRecorder) func(http.Handler) http.Handler {
	if recorder == nil {
		recorder = discardRecorder{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx, outcome := resolvePrincipal(request, verifier, identities)
			recorder.RecordAuthOutcome(outcome)

			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

func resolvePrincipal(request *http.Request, verifier TokenVerifier, identities IdentityChecker) (context.Context, string) {
	ctx := request.Context()
	logger := ctxutil.GetLogger(ctx)

	// ── 1. Bearer extraction ─────────────────────────────────────────────
	token, found := strings.CutPrefix(request.Header.Get(constants.HeaderAuthorization), constants.BearerPrefix)
	if !found {
		return ctx, OutcomeAnonymous
	}

	// ── 2. Subject extraction ────────────────────────────────────────────
	subject, err := verifier.ExtractSubject(token)
	if err != nil {
		logger.WarnContext(ctx, "auth_token_unreadable", slog.Any("error", err))
		return ctx, OutcomeMalformed
	}

	// ── 3. Already authenticated ─────────────────────────────────────────
	if ctxutil.GetPrincipal(ctx) != nil {
		return ctx, OutcomePreauthenticated
	}

	// ── 4. Full verification ─────────────────────────────────────────────
	if !verifier.ValidateForSubject(token, subject) {
		logger.DebugContext(ctx, "auth_token_invalid")
		return ctx, OutcomeInvalid
	}

	// ── 5. Identity lookup ───────────────────────────────────────────────
	exists, err := identities.Exists(ctx, subject)
	if err != nil {
		logger.ErrorContext(ctx, "auth_identity_lookup_failed", slog.Any("error", err))
		return ctx, OutcomeLookupError
	}
	if !exists {
		logger.WarnContext(ctx, "auth_identity_unknown")
		return ctx, OutcomeUnknownIdentity
	}

	// ── 6. Context injection ─────────────────────────────────────────────
	ctx = ctxutil.WithPrincipal(ctx, &sec.Principal{Email: subject})
	ctx = ctxutil.WithLogger(ctx, logger.With(slog.String("teacher_email", subject)))

	return ctx, OutcomeAuthenticated
}

// RequireAuth blocks requests that are not authenticated.
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetPrincipal(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
