// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

package auth

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/englishproject/englishteacher-api/internal/platform/apperr"
	"github.com/englishproject/englishteacher-api/internal/platform/ctxutil"
	"github.com/englishproject/englishteacher-api/internal/platform/metrics"
	"github.com/englishproject/englishteacher-api/internal/platform/middleware"
	requestutil "github.com/englishproject/englishteacher-api/internal/platform/request"
	"github.com/englishproject/englishteacher-api/internal/platform/respond"
	"github.com/englishproject/englishteacher-api/internal/platform/validate"
)

// LoginRecorder receives the result of every login attempt.
type LoginRecorder interface {
	RecordLogin(result string)
}

type discardLogins struct{}

func (discardLogins) RecordLogin(string) {}

// Handler implements the authentication HTTP endpoints.
type Handler struct {
	authService *Service
	logins      LoginRecorder
}

// NewHandler constructs a new [Handler]. A nil recorder disables login metrics.
func NewHandler(service *Service, logins LoginRecorder) *Handler {
	if logins == nil {
		logins = discardLogins{}
	}
	return &Handler{authService: service, logins: logins}
}

// Routes returns the public authentication routes.
//
// # Endpoints
//   - POST /login          : Verifies credentials and returns an access token.
//   - POST /check-email    : Reports whether an email is registered.
//   - POST /validate-token : Reports whether a token verifies and is unexpired.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)
	router.Post("/check-email", handler.checkEmail)
	router.Post("/validate-token", handler.validateToken)

	return router
}

// AdminRoutes returns the routes that require an authenticated teacher.
//
// # Endpoints
//   - GET /profile : Returns the authenticated teacher's email.
func (handler *Handler) AdminRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/profile", handler.profile)

	return router
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// login handles POST /api/auth/login.
//
// Unknown email and wrong password produce the same 401 body.
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if err := validator.Required(fieldEmail, input.Email).Required(fieldPassword, input.Password).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.authService.Login(request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, ErrCredentialInvalid) {
			handler.logins.RecordLogin(metrics.LoginRejected)
			respond.Error(writer, request, apperr.Unauthorized(msgInvalidCredentials))
			return
		}
		handler.logins.RecordLogin(metrics.LoginFailed)
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	handler.logins.RecordLogin(metrics.LoginSucceeded)
	ctxutil.GetLogger(request.Context()).InfoContext(request.Context(), "teacher_logged_in",
		slog.Int64("teacher_id", result.Teacher.ID),
	)

	respond.OK(writer, result)
}

type checkEmailRequest struct {
	Email string `json:"email"`
}

type checkEmailResponse struct {
	Exists  bool   `json:"exists"`
	Message string `json:"message"`
}

// checkEmail handles POST /api/auth/check-email.
func (handler *Handler) checkEmail(writer http.ResponseWriter, request *http.Request) {
	var input checkEmailRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	validator := &validate.Validator{}
	if err := validator.Required(fieldEmail, input.Email).Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	exists, err := handler.authService.Exists(request.Context(), input.Email)
	if err != nil {
		respond.Error(writer, request, apperr.Internal(err))
		return
	}

	message := msgEmailAvailable
	if exists {
		message = msgEmailRegistered
	}

	respond.OK(writer, checkEmailResponse{Exists: exists, Message: message})
}

type validateTokenRequest struct {
	Token string `json:"token"`
}

type validateTokenResponse struct {
	Valid   bool   `json:"valid"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message"`
}

// validateToken handles POST /api/auth/validate-token.
func (handler *Handler) validateToken(writer http.ResponseWriter, request *http.Request) {
	var input validateTokenRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if strings.TrimSpace(input.Token) == "" {
		respond.Error(writer, request, apperr.ValidationError(msgTokenMissing, apperr.FieldError{
			Field:   fieldToken,
			Message: "This field is required",
		}))
		return
	}

	status := handler.authService.InspectToken(input.Token)
	if !status.Valid {
		ctxutil.GetLogger(request.Context()).DebugContext(request.Context(), "token_inspection_failed",
			slog.Bool("expired", status.Expired),
		)
		respond.OK(writer, validateTokenResponse{Message: msgTokenInvalid})
		return
	}

	respond.OK(writer, validateTokenResponse{Valid: true, Email: status.Email, Message: msgTokenValid})
}

type profileResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// profile handles GET /api/teachers/admin/profile.
func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	principal, err := requestutil.RequiredPrincipal(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, profileResponse{Email: principal.Email, Message: msgProfileRetrieved})
}
