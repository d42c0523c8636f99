// Copyright (c) 2026 EnglishTeacher API. All rights reserved.
// Author: EnglishTeacher API maintainers

package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/englishproject/englishteacher-api/internal/platform/postgres"
)

/*
TestPing verifies success and failure propagation against a mocked pool.
*/
func TestPing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectPing()
	assert.NoError(t, postgres.Ping(context.Background(), mock))

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	err = postgres.Ping(context.Background(), mock)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	assert.NoError(t, mock.ExpectationsWereMet())
}
