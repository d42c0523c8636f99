// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

package schema_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/englishproject/englishteacher-api/internal/platform/database/schema"
)

/*
TestTeachers_MatchesMigration verifies that every column named here is created
by the initial migration.
*/
func TestTeachers_MatchesMigration(t *testing.T) {
	migration, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "data", "migrations", "000001_create_teachers.up.sql"))
	require.NoError(t, err)

	ddl := string(migration)
	assert.Contains(t, ddl, "CREATE TABLE IF NOT EXISTS "+schema.Teachers.Table)

	for _, column := range schema.Teachers.Columns() {
		assert.True(t, strings.Contains(ddl, "\n    "+column+" "), "column %q missing from migration", column)
	}
}
