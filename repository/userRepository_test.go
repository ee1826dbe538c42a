package repository

import (
	"context"
	"database/sql"
	"testing"

	customerrors "backend/customErrors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

const (
	insertQuery = "INSERT INTO users"
	selectQuery = "SELECT id, email, password_hash, is_active, first_name, last_name FROM users"
	emailString = "john@example.com"
	hashString  = "$2a$10$fakehashfakehashfakehash"
)

var userColumns = []string{"id", "email", "password_hash", "is_active", "first_name", "last_name"}

func setupMockRepo(t *testing.T) (*sql.DB, sqlmock.Sqlmock, UserRepository) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	repo := NewUserRepository(db)
	return db, mock, repo
}

func strPtr(s string) *string {
	return &s
}

func TestCreateUser(t *testing.T) {
	db, mock, repo := setupMockRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "is_active"}).AddRow(1, true)
	mock.ExpectQuery(insertQuery).
		WithArgs(emailString, hashString, "John", nil).
		WillReturnRows(rows)

	user, err := repo.CreateUser(context.Background(), emailString, hashString, strPtr("John"), nil)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, emailString, user.Email)
	assert.True(t, user.IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	db, mock, repo := setupMockRepo(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs(emailString, hashString, nil, nil).
		WillReturnError(&pq.Error{Code: "23505"})

	user, err := repo.CreateUser(context.Background(), emailString, hashString, nil, nil)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, customerrors.ErrUserAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUserDbError(t *testing.T) {
	db, mock, repo := setupMockRepo(t)
	defer db.Close()

	mock.ExpectQuery(insertQuery).
		WithArgs(emailString, hashString, nil, nil).
		WillReturnError(sql.ErrConnDone)

	user, err := repo.CreateUser(context.Background(), emailString, hashString, nil, nil)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestGetUserByEmail(t *testing.T) {
	db, mock, repo := setupMockRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(userColumns).
		AddRow(1, emailString, hashString, true, "John", nil)
	mock.ExpectQuery(selectQuery).WithArgs(emailString).WillReturnRows(rows)

	user, err := repo.GetUserByEmail(context.Background(), emailString)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, emailString, user.Email)
	assert.Equal(t, hashString, user.PasswordHash)
	assert.Equal(t, "John", *user.FirstName)
	assert.Nil(t, user.LastName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmailNotFound(t *testing.T) {
	db, mock, repo := setupMockRepo(t)
	defer db.Close()

	mock.ExpectQuery(selectQuery).WithArgs(emailString).WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByEmail(context.Background(), emailString)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, customerrors.ErrUserNotFound)
}

func TestGetUserByID(t *testing.T) {
	db, mock, repo := setupMockRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows(userColumns).
		AddRow(7, emailString, hashString, false, nil, nil)
	mock.ExpectQuery(selectQuery).WithArgs(int64(7)).WillReturnRows(rows)

	user, err := repo.GetUserByID(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.False(t, user.IsActive)
	assert.Nil(t, user.FirstName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByIDNotFound(t *testing.T) {
	db, mock, repo := setupMockRepo(t)
	defer db.Close()

	mock.ExpectQuery(selectQuery).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

	user, err := repo.GetUserByID(context.Background(), 99)

	assert.Nil(t, user)
	assert.ErrorIs(t, err, customerrors.ErrUserNotFound)
}
