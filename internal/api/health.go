// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

package api

import (
	"log/slog"
	"net/http"

	"github.com/englishproject/englishteacher-api/internal/platform/constants"
	"github.com/englishproject/englishteacher-api/internal/platform/postgres"
	"github.com/englishproject/englishteacher-api/internal/platform/respond"
)

// HealthDependencies holds the dependency checkers for the /ready endpoint.
type HealthDependencies struct {
	// Database is pinged on every readiness check. Nil skips the check.
	Database postgres.Pinger
}

type healthHandler struct {
	dependencies HealthDependencies
	logger       *slog.Logger
}

type checkResult struct {
	Name  string `json:"name"`
	IsOK  bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NewHealthHandlers creates the /health and /ready http.HandlerFuncs.
func NewHealthHandlers(deps HealthDependencies, logger *slog.Logger) (liveness, readiness http.HandlerFunc) {
	handler := &healthHandler{dependencies: deps, logger: logger}
	return handler.liveness, handler.readiness
}

// liveness handles GET /health.
func (handler *healthHandler) liveness(writer http.ResponseWriter, _ *http.Request) {
	respond.OK(writer, map[string]string{constants.FieldStatus: "ok"})
}

// readiness handles GET /ready.
func (handler *healthHandler) readiness(writer http.ResponseWriter, request *http.Request) {
	results := make([]checkResult, 0, 1)
	isSystemReady := true

	if handler.dependencies.Database != nil {
		result := checkResult{Name: "postgres", IsOK: true}
		if err := postgres.Ping(request.Context(), handler.dependencies.Database); err != nil {
			result.IsOK = false
			result.Error = err.Error()
			isSystemReady = false
			handler.logger.Error("readiness_check_failed", slog.String("dependency", "postgres"), slog.Any("error", err))
		}
		results = append(results, result)
	}

	payload := map[string]any{constants.FieldStatus: "ready", constants.FieldChecks: results}
	if !isSystemReady {
		payload[constants.FieldStatus] = "degraded"
		respond.JSON(writer, http.StatusServiceUnavailable, respond.SuccessEnvelope{Data: payload})
		return
	}

	respond.OK(writer, payload)
}
