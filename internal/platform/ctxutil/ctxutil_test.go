// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/englishproject/englishteacher-api/internal/platform/ctxutil"
	"github.com/englishproject/englishteacher-api/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	requestID := "test-request-id"

	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, requestID)
	assert.Equal(t, requestID, ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies that a custom logger can be stored in context.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_Principal verifies that the principal is request scoped: a
derived context sees it, the parent does not.
*/
func TestContext_Principal(t *testing.T) {
	parent := context.Background()

	assert.Nil(t, ctxutil.GetPrincipal(parent))

	child := ctxutil.WithPrincipal(parent, &sec.Principal{Email: "t@x.com"})
	principal := ctxutil.GetPrincipal(child)

	require.NotNil(t, principal)
	assert.Equal(t, "t@x.com", principal.Email)
	assert.Nil(t, ctxutil.GetPrincipal(parent))
}
