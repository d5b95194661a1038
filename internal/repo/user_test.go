package repo

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/webstore/internal/models"
)

func TestInMemoryUserRepository(t *testing.T) {
	r := NewInMemoryUserRepository()

	created, err := r.CreateUser(models.User{Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)

	_, err = r.CreateUser(models.User{Username: "alice"})
	assert.ErrorIs(t, err, ErrDuplicatedValueUnique)

	found, err := r.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "hash", found.PasswordHash)

	_, err = r.GetByUsername("bob")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestPostgresUserRepository_CreateDuplicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("alice", "hash", sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err = NewPostgresUserRepository(db).CreateUser(models.User{Username: "alice", PasswordHash: "hash"})
	assert.ErrorIs(t, err, ErrDuplicatedValueUnique)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresUserRepository_GetByUsername_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM users WHERE username = \$1`).
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at", "updated_at"}))

	_, err = NewPostgresUserRepository(db).GetByUsername("ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
