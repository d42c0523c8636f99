// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/englishproject/englishteacher-api/internal/platform/migration"
	"github.com/englishproject/englishteacher-api/internal/platform/sec"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func setSecurityEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("JWT_SECRET_PATH", "")
	t.Setenv("JWT_EXPIRATION_SECONDS", "1800")
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), err
}

/*
TestHashPassword covers the argument and stdin input modes.
*/
func TestHashPassword(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{"argument", "", []string{"hash-password", "--cost", "4", "s3cret"}},
		{"stdin", "s3cret\n", []string{"hash-password", "--cost", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)

			hash := strings.TrimSpace(out)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, 4, cost)
		})
	}

	_, err := execute(t, "", "hash-password")
	assert.Error(t, err)
}

/*
TestIssueAndInspectToken verifies that a CLI-issued token is accepted by the
server's token service and reported as valid.
*/
func TestIssueAndInspectToken(t *testing.T) {
	setSecurityEnv(t)

	out, err := execute(t, "", "issue-token", "admin@englishteacher.com")
	require.NoError(t, err)
	token := strings.TrimSpace(out)

	tokens, err := sec.NewTokenService([]byte(testSecret), 0)
	require.NoError(t, err)
	assert.True(t, tokens.ValidateForSubject(token, "admin@englishteacher.com"))

	out, err = execute(t, "", "inspect-token", "Bearer "+token)
	require.NoError(t, err)
	assert.Contains(t, out, "status: valid")
	assert.Contains(t, out, "subject: admin@englishteacher.com")
}

/*
TestInspectToken_Failures checks the expired and malformed reports.
*/
func TestInspectToken_Failures(t *testing.T) {
	setSecurityEnv(t)

	// A nanosecond lifetime truncates to an exp that is already in the past.
	out, err := execute(t, "", "issue-token", "--ttl", "1ns", "t@x.com")
	require.NoError(t, err)

	out, err = execute(t, "", "inspect-token", strings.TrimSpace(out))
	assert.ErrorIs(t, err, sec.ErrTokenExpired)
	assert.Contains(t, out, "status: expired")
	assert.Contains(t, out, "subject: t@x.com")

	out, err = execute(t, "", "inspect-token", "not.a.token")
	assert.ErrorIs(t, err, sec.ErrTokenMalformed)
	assert.Contains(t, out, "status: malformed")
}

/*
TestTokenCommands_RequireKey verifies that a missing signing key is reported.
*/
func TestTokenCommands_RequireKey(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_SECRET_PATH", "")

	_, err := execute(t, "", "issue-token", "t@x.com")
	assert.Error(t, err)
}

/*
TestMigrate_ArgumentErrors checks failures that happen before any connection.
*/
func TestMigrate_ArgumentErrors(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := execute(t, "", "migrate", "up")
	assert.Error(t, err)

	_, err = execute(t, "", "migrate", "status")
	assert.Error(t, err)

	_, err = execute(t, "", "migrate", "down", "--steps", "0")
	assert.ErrorContains(t, err, "--steps must be positive")
}

/*
TestFormatStatus covers the three schema states.
*/
func TestFormatStatus(t *testing.T) {
	assert.Equal(t, "version: none (no migrations applied)", formatStatus(migration.Status{Empty: true}))
	assert.Equal(t, "version: 3 (dirty)", formatStatus(migration.Status{Version: 3, Dirty: true}))
	assert.Equal(t, "version: 1", formatStatus(migration.Status{Version: 1}))
}
