// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

// Command teacherctl is the operator tool for the English Teacher API:
// password hashing for manual seeding, token issuance and inspection, and
// schema migrations.
package main

import (
	"os"

	"github.com/englishproject/englishteacher-api/internal/platform/constants"
)

func main() {
	cmd := NewRootCmd()
	cmd.Version = constants.AppVersion

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
