// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/englishproject/englishteacher-api/internal/platform/config"
	"github.com/englishproject/englishteacher-api/internal/platform/sec"
)

// NewHashPasswordCmd creates the hash-password subcommand.
func NewHashPasswordCmd() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print the bcrypt hash of a password",
		Long: `Print the bcrypt hash of a password. Without an argument the password
is read from the first line of standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := passwordFromInput(cmd, args)
			if err != nil {
				return err
			}

			hash, err := sec.NewPasswordHasher(cost).Hash(password)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt work factor")
	return cmd
}

func passwordFromInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return "", errors.New("no password given")
	}

	password := strings.TrimRight(scanner.Text(), "\r")
	if password == "" {
		return "", errors.New("no password given")
	}
	return password, nil
}

// NewIssueTokenCmd creates the issue-token subcommand.
func NewIssueTokenCmd() *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "issue-token <email>",
		Short: "Sign an access token for a teacher email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := tokenServiceFromEnv()
			if err != nil {
				return err
			}

			token, err := tokens.Issue(args[0], ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default JWT_EXPIRATION_SECONDS)")
	return cmd
}

// NewInspectTokenCmd creates the inspect-token subcommand.
func NewInspectTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect-token <token>",
		Short: "Verify a token and print its subject and expiry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := tokenServiceFromEnv()
			if err != nil {
				return err
			}

			token := strings.TrimPrefix(strings.TrimSpace(args[0]), "Bearer ")

			claims, err := tokens.Inspect(token)
			switch {
			case errors.Is(err, sec.ErrTokenExpired):
				subject, _ := tokens.ExtractSubject(token)
				fmt.Fprintf(cmd.OutOrStdout(), "status: expired\nsubject: %s\n", subject)
				return err
			case err != nil:
				fmt.Fprintln(cmd.OutOrStdout(), "status: malformed")
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "status: valid\nsubject: %s\nissued_at: %s\nexpires_at: %s\n",
				claims.Subject,
				claims.IssuedAt.UTC().Format(time.RFC3339),
				claims.ExpiresAt.UTC().Format(time.RFC3339),
			)
			return nil
		},
	}
}

func tokenServiceFromEnv() (*sec.TokenService, error) {
	security, err := config.LoadSecurity()
	if err != nil {
		return nil, err
	}

	key, err := sec.LoadSigningKey(security.JWTSecret, security.JWTSecretPath)
	if err != nil {
		return nil, err
	}

	return sec.NewTokenService(key, security.TokenTTL())
}
