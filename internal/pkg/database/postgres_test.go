package database

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/cabdispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	dsn := DSN(models.DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		Username: "dispatch",
		Password: "pw",
		Database: "realtime",
		SSLMode:  "disable",
	})

	assert.Equal(t, "postgres://dispatch:pw@localhost:5432/realtime?sslmode=disable", dsn)
}

func TestPostgresClient_PingAndClose(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)

	client := NewPostgresClientFromDB(sqlx.NewDb(mockDB, "pgx"))
	assert.NotNil(t, client.GetDB())

	mock.ExpectPing()
	mock.ExpectPing().WillReturnError(errors.New("db down"))
	mock.ExpectClose()

	assert.NoError(t, client.Ping(context.Background()))
	assert.Error(t, client.Ping(context.Background()))
	assert.NoError(t, client.Close())

	assert.NoError(t, mock.ExpectationsWereMet())
}
