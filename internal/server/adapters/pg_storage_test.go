package adapters

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/matthiasBT/usercrud/internal/server/entities"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquire(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	logger, _ := test.NewNullLogger()
	storage := NewPGStorage(logger, sqlx.NewDb(db, "sqlmock"), 2)

	conn, err := storage.Acquire(context.Background())
	require.NoError(t, err)
	require.NotNil(t, conn)
	require.NoError(t, conn.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcquireCancelled(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	storage := NewPGStorage(logger, sqlx.NewDb(db, "sqlmock"), 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	conn, err := storage.Acquire(ctx)
	assert.Nil(t, conn)
	assert.True(t, errors.Is(err, entities.ErrPoolUnavailable))
	assert.True(t, errors.Is(err, context.Canceled))
	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)
}
