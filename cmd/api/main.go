// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

// Command api is the entry point for the English Teacher HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Run database migrations (idempotent).
//  5. Load the signing key and build the security services.
//  6. Seed the admin teacher when the identity table is empty.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/englishproject/englishteacher-api/internal/api"
	"github.com/englishproject/englishteacher-api/internal/auth"
	"github.com/englishproject/englishteacher-api/internal/platform/config"
	"github.com/englishproject/englishteacher-api/internal/platform/constants"
	"github.com/englishproject/englishteacher-api/internal/platform/metrics"
	"github.com/englishproject/englishteacher-api/internal/platform/migration"
	pgstore "github.com/englishproject/englishteacher-api/internal/platform/postgres"
	"github.com/englishproject/englishteacher-api/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	log := newLogger(slog.LevelInfo)
	slog.SetDefault(log)

	log.Info("service_initializing", slog.String(constants.FieldVersion, constants.AppVersion))

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		log = newLogger(slog.LevelDebug)
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	startupCtx, startupCancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing_postgres_pool")
		pool.Close()
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 5. Security ───────────────────────────────────────────────────────
	signingKey, err := sec.LoadSigningKey(cfg.Security.JWTSecret, cfg.Security.JWTSecretPath)
	must(log, err, "load signing key")

	tokens, err := sec.NewTokenService(signingKey, cfg.Security.TokenTTL())
	must(log, err, "initialize token service")

	hasher := sec.NewPasswordHasher(cfg.Security.BcryptCost)

	// ── 6. Domain Wiring ──────────────────────────────────────────────────
	identities := auth.NewPostgresIdentityStore(pool)
	authService := auth.NewService(identities, hasher, tokens)
	appMetrics := metrics.New()

	seedAdmin(startupCtx, log, cfg, authService)

	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{Database: pool}, log)

	// ── 7. HTTP Server ────────────────────────────────────────────────────
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log,
		api.Gate{Tokens: tokens, Identities: authService, Outcomes: appMetrics},
		api.Handlers{
			Liveness:  liveness,
			Readiness: readiness,
			Auth:      auth.NewHandler(authService, appMetrics),
			Metrics:   appMetrics.Handler(),
		})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case sig := <-quit:
		log.Info("shutdown_signal_received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server_startup_error", slog.Any("error", err))
	}

	log.Info("shutting_down_server", slog.Duration("timeout", constants.ShutdownTimeout))

	if err := server.Shutdown(constants.ShutdownTimeout); err != nil {
		log.Error("shutdown_error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server_stopped_cleanly")
}

func newLogger(level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String(constants.FieldApp, constants.AppName))
}

// seedAdmin creates the configured admin teacher on an empty database.
// Development falls back to a well-known password so a fresh checkout can log in.
func seedAdmin(ctx context.Context, log *slog.Logger, cfg *config.Config, service *auth.Service) {
	seed := auth.AdminSeed{
		Email:    cfg.Admin.Email,
		Password: cfg.Admin.Password,
		Name:     cfg.Admin.Name,
		LastName: cfg.Admin.LastName,
	}
	if seed.Password == "" && cfg.IsDevelopment() {
		seed.Password = constants.DefaultAdminPassword
	}

	created, err := service.EnsureAdmin(ctx, seed)
	must(log, err, "seed admin teacher")

	if created {
		log.Info("admin_teacher_seeded", slog.String("email", seed.Email))
	}
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is limited to startup wiring. After startup, all errors are returned
// and handled explicitly.
func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("startup_failure",
			slog.String("step", step),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
