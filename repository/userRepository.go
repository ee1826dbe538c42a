package repository

import (
	"context"
	"database/sql"
	"errors"

	customerrors "backend/customErrors"
	"backend/models"

	"github.com/lib/pq"
)

const uniqueViolation = pq.ErrorCode("23505")

type UserRepository interface {
	CreateUser(ctx context.Context, email, passwordHash string, firstName, lastName *string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
}

type UserRepositoryImpl struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

// CreateUser inserts the record in a single statement and relies on the
// unique index on email as the authoritative duplicate signal, so two
// concurrent signups with the same email cannot both succeed.
func (r *UserRepositoryImpl) CreateUser(ctx context.Context, email, passwordHash string, firstName, lastName *string) (*models.User, error) {
	query := `
        INSERT INTO users (email, password_hash, first_name, last_name)
        VALUES ($1, $2, $3, $4)
        RETURNING id, is_active
    `

	user := &models.User{
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
	}

	err := r.db.QueryRowContext(ctx, query, email, passwordHash, firstName, lastName).
		Scan(&user.ID, &user.IsActive)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, customerrors.ErrUserAlreadyExists
		}
		return nil, err
	}

	return user, nil
}

func (r *UserRepositoryImpl) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
        SELECT id, email, password_hash, is_active, first_name, last_name
        FROM users
        WHERE email = $1
    `

	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *UserRepositoryImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `
        SELECT id, email, password_hash, is_active, first_name, last_name
        FROM users
        WHERE id = $1
    `

	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepositoryImpl) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.IsActive,
		&user.FirstName,
		&user.LastName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customerrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}
