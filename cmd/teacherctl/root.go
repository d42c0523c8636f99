// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

package main

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the teacherctl CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teacherctl",
		Short: "Operator tool for the English Teacher API",
		Long: `teacherctl hashes passwords, issues and inspects access tokens, and
manages the database schema. Token commands read JWT_SECRET or JWT_SECRET_PATH
from the environment, like the API server does.`,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewHashPasswordCmd())
	cmd.AddCommand(NewIssueTokenCmd())
	cmd.AddCommand(NewInspectTokenCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}
