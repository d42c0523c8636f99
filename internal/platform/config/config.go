// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Once loaded, configuration is read-only and passed to components through
their constructors. No global variables hold it.
*/
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// DefaultCORSOrigins are the origin patterns allowed when CORS_ORIGINS is unset.
var DefaultCORSOrigins = []string{"http://localhost:*", "https://*.railway.app"}

// # Configuration Schema

// Config holds all runtime configuration for the API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	Security SecurityConfig

	// Admin seed applied to an empty identity store at startup.
	Admin AdminConfig `envPrefix:"ADMIN_"`

	// Cross-Origin Resource Sharing: "*" or a comma-separated list of origin patterns.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`
}

// SecurityConfig groups the token and password hashing settings.
type SecurityConfig struct {
	// Exactly one of JWTSecret and JWTSecretPath must be set.
	JWTSecret            string `env:"JWT_SECRET"`
	JWTSecretPath        string `env:"JWT_SECRET_PATH"`
	JWTExpirationSeconds int    `env:"JWT_EXPIRATION_SECONDS" envDefault:"1800"`
	BcryptCost           int    `env:"BCRYPT_COST"            envDefault:"10"`
}

// AdminConfig describes the teacher seeded when no identity exists yet.
type AdminConfig struct {
	Email    string `env:"EMAIL"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME"      envDefault:"Admin"`
	LastName string `env:"LAST_NAME" envDefault:"Teacher"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct and validates it.
func Load() (*Config, error) {
	cfg := &Config{}

	// Fails if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadSecurity parses only the security settings. It is used by operator
// commands that sign or inspect tokens without touching the database.
func LoadSecurity() (*SecurityConfig, error) {
	cfg := &SecurityConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints the struct tags cannot express.
func (c *Config) Validate() error {
	if err := c.Security.Validate(); err != nil {
		return err
	}

	if c.IsProduction() && c.Admin.Email != "" && c.Admin.Password == "" {
		return errors.New("config: ADMIN_PASSWORD is required when ADMIN_EMAIL is set in production")
	}

	return nil
}

// Validate enforces a single signing key source and a positive token lifetime.
func (s *SecurityConfig) Validate() error {
	if s.JWTSecret != "" && s.JWTSecretPath != "" {
		return errors.New("config: set only one of JWT_SECRET and JWT_SECRET_PATH")
	}
	if s.JWTSecret == "" && s.JWTSecretPath == "" {
		return errors.New("config: one of JWT_SECRET or JWT_SECRET_PATH is required")
	}
	if s.JWTExpirationSeconds <= 0 {
		return fmt.Errorf("config: JWT_EXPIRATION_SECONDS must be positive, got %d", s.JWTExpirationSeconds)
	}
	return nil
}

// TokenTTL returns the configured access token lifetime.
func (s *SecurityConfig) TokenTTL() time.Duration {
	return time.Duration(s.JWTExpirationSeconds) * time.Second
}

// AllowedOrigins returns the trimmed CORS origin patterns, falling back to
// [DefaultCORSOrigins] when none are configured.
func (c *Config) AllowedOrigins() []string {
	origins := make([]string, 0, len(c.CORSOrigins))
	for _, origin := range c.CORSOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	if len(origins) == 0 {
		return DefaultCORSOrigins
	}
	return origins
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
