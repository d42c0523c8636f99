// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It centralizes body decoding and access to the authenticated principal so
handlers share the same error handling.
*/
package requestutil

import (
	"encoding/json"
	"net/http"

	"github.com/englishproject/englishteacher-api/internal/platform/apperr"
	"github.com/englishproject/englishteacher-api/internal/platform/ctxutil"
	"github.com/englishproject/englishteacher-api/internal/platform/sec"
	"github.com/englishproject/englishteacher-api/internal/platform/validate"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	request.Body = http.MaxBytesReader(writer, request.Body, maxBodyBytes)
	if err := json.NewDecoder(request.Body).Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
RequiredPrincipal ensures the request is authenticated and returns the principal.

Returns:
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredPrincipal(request *http.Request) (*sec.Principal, error) {
	principal := ctxutil.GetPrincipal(request.Context())
	if principal == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return principal, nil
}
