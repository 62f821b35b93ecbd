package main

import (
	"context"
	"testing"

	"homestead-architect/internal/platform/logger"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrate_AppliesSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS properties`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, runMigrate(context.Background(), db, logger.Nop()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunMigrate_HonorsCallerCancellation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = runMigrate(ctx, db, logger.Nop())
	assert.ErrorIs(t, err, context.Canceled)
	// no llega a ejecutar nada contra la base
	assert.NoError(t, mock.ExpectationsWereMet())
}
