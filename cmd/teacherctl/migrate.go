// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

package main

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/englishproject/englishteacher-api/internal/platform/migration"
)

// migrateConfig is the subset of the server configuration the migrate
// commands need. No signing key is read.
type migrateConfig struct {
	DatabaseURL   string `env:"DATABASE_URL,required,notEmpty"`
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`
}

func loadMigrateConfig() (migrateConfig, error) {
	var cfg migrateConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func commandLogger(cmd *cobra.Command) *slog.Logger {
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
}

// NewMigrateCmd creates the migrate command group.
func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
		Long:  `Apply, roll back, or report SQL migrations from MIGRATION_PATH against DATABASE_URL.`,
	}

	cmd.AddCommand(newMigrateUpCmd())
	cmd.AddCommand(newMigrateDownCmd())
	cmd.AddCommand(newMigrateStatusCmd())

	return cmd
}

func newMigrateUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadMigrateConfig()
			if err != nil {
				return err
			}
			if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, commandLogger(cmd)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations completed successfully")
			return nil
		},
	}
}

func newMigrateDownCmd() *cobra.Command {
	var steps int

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back applied migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps <= 0 {
				return fmt.Errorf("--steps must be positive, got %d", steps)
			}
			cfg, err := loadMigrateConfig()
			if err != nil {
				return err
			}
			if err := migration.RunDown(cfg.DatabaseURL, cfg.MigrationPath, steps, commandLogger(cmd)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %d migration(s)\n", steps)
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	return cmd
}

func newMigrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the applied schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadMigrateConfig()
			if err != nil {
				return err
			}

			status, err := migration.CurrentStatus(cfg.DatabaseURL, cfg.MigrationPath, commandLogger(cmd))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatStatus(status))
			return nil
		},
	}
}

func formatStatus(status migration.Status) string {
	switch {
	case status.Empty:
		return "version: none (no migrations applied)"
	case status.Dirty:
		return fmt.Sprintf("version: %d (dirty)", status.Version)
	default:
		return fmt.Sprintf("version: %d", status.Version)
	}
}
