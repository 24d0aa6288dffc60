package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailByUserID(t *testing.T) {
	database, dbmock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	dbmock.ExpectQuery("SELECT email FROM users").
		WithArgs("u3").
		WillReturnRows(sqlmock.NewRows([]string{"email"}).AddRow("c@d.com"))

	accounts := NewAccountDirectory(database)
	email, err := accounts.EmailByUserID(context.Background(), "u3")

	require.NoError(t, err)
	assert.Equal(t, "c@d.com", email)
}

func TestEmailByUserID_UnknownUser(t *testing.T) {
	database, dbmock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	dbmock.ExpectQuery("SELECT email FROM users").
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	accounts := NewAccountDirectory(database)
	email, err := accounts.EmailByUserID(context.Background(), "nobody")

	require.NoError(t, err)
	assert.Equal(t, "", email)
}

func TestEmailByUserID_QueryError(t *testing.T) {
	database, dbmock, err := sqlmock.New()
	require.NoError(t, err)
	defer database.Close()

	dbmock.ExpectQuery("SELECT email FROM users").
		WithArgs("u3").
		WillReturnError(errors.New("connection refused"))

	accounts := NewAccountDirectory(database)
	_, err = accounts.EmailByUserID(context.Background(), "u3")

	assert.Error(t, err)
}
