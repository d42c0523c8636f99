// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

package respond_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/englishproject/englishteacher-api/internal/platform/apperr"
	"github.com/englishproject/englishteacher-api/internal/platform/respond"
)

/*
TestOK verifies the success envelope.
*/
func TestOK(t *testing.T) {
	recorder := httptest.NewRecorder()
	respond.OK(recorder, map[string]bool{"exists": true})

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"exists":true}}`, recorder.Body.String())
}

/*
TestError verifies the status, envelope and headers produced for each error class.
*/
func TestError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantHeader string
	}{
		{"unauthorized", apperr.Unauthorized("Invalid credentials"), http.StatusUnauthorized, "UNAUTHORIZED", "WWW-Authenticate"},
		{"validation", apperr.ValidationError("Invalid input", apperr.FieldError{Field: "email", Message: "is required"}), http.StatusBadRequest, "VALIDATION_ERROR", ""},
		{"rate_limited", apperr.RateLimited(1), http.StatusTooManyRequests, "RATE_LIMITED", "Retry-After"},
		{"plain_error", errors.New("db exploded"), http.StatusInternalServerError, "INTERNAL_ERROR", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, "/", nil)

			respond.Error(recorder, request, tt.err)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var envelope respond.ErrorEnvelope
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
			assert.Equal(t, tt.wantCode, envelope.Code)
			assert.NotContains(t, envelope.Error, "db exploded")

			if tt.wantHeader != "" {
				assert.NotEmpty(t, recorder.Header().Get(tt.wantHeader))
			}
		})
	}
}
